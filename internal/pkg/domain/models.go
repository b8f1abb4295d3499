package domain

// Category is a node in the marketplace category forest. Ids are numeric
// strings assigned by the store.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsRoot   bool   `json:"isRoot"`
	ParentID string `json:"parentId,omitempty"`
	Href     string `json:"href"`
}

// CategoryRef is the compact category representation sent to the store as
// part of an offering.
type CategoryRef struct {
	ID       string `json:"id"`
	Href     string `json:"href"`
	ParentID string `json:"parentId,omitempty"`
}

type Catalog struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Href string `json:"href"`
}

// Dataset is the catalog record that gets published to the marketplace.
// The publisher reads it and only ever writes AcquireURL back.
type Dataset struct {
	ID         string
	Title      string
	Version    string
	Notes      string
	Type       string
	Private    bool
	Owner      string
	AcquireURL string
}

// OfferingInput holds the commercial metadata submitted through the
// publish form. It lives for one request only.
type OfferingInput struct {
	PkgID              string
	Name               string
	Description        string
	LicenseTitle       string
	LicenseDescription string
	Version            string
	IsOpen             bool
	Categories         []CategoryRef
	Catalog            string
	Price              float64
	ImageBase64        string
}

// ProductRef is the compact reference to a product specification in the
// store, used when an offering is bound to it.
type ProductRef struct {
	ID      string `json:"id"`
	Href    string `json:"href"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SelectOption is the value/text pair the publish form's select fields
// are rendered from.
type SelectOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}
