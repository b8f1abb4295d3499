package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/diwise/store-publisher/internal/pkg/domain"
)

const (
	lifecycleLaunched = "Launched"
	lifecycleActive   = "Active"

	assetTypeDataset = "Dataset"
)

type characteristic struct {
	Configurable bool   `json:"configurable"`
	Name         string `json:"name"`
	Value        string `json:"value"`
}

type relatedParty struct {
	ID   string `json:"id"`
	Href string `json:"href"`
	Role string `json:"role"`
}

type attachment struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type productSpecification struct {
	ProductNumber                    string           `json:"productNumber"`
	Version                          string           `json:"version"`
	Name                             string           `json:"name"`
	Description                      string           `json:"description"`
	IsBundle                         bool             `json:"isBundle"`
	Brand                            string           `json:"brand"`
	LifecycleStatus                  string           `json:"lifecycleStatus"`
	ValidFor                         struct{}         `json:"validFor"`
	RelatedParty                     []relatedParty   `json:"relatedParty"`
	Attachment                       []attachment     `json:"attachment"`
	BundleProductSpecification       []any            `json:"bundleProductSpecification"`
	ProductSpecificationRelationship []any            `json:"productSpecificationRelationShip"`
	ServiceSpecification             []any            `json:"serviceSpecification"`
	ResourceSpecification            []any            `json:"resourceSpecification"`
	ProductSpecCharacteristic        []characteristic `json:"productSpecCharacteristic"`
}

type offeringPrice struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PriceType   string      `json:"priceType"`
	Price       priceAmount `json:"price"`
}

type priceAmount struct {
	TaxIncludedAmount float64 `json:"taxIncludedAmount"`
	DutyFreeAmount    string  `json:"dutyFreeAmount"`
	TaxRate           string  `json:"taxRate"`
	CurrencyCode      string  `json:"currencyCode"`
}

type productOffering struct {
	Name                 string               `json:"name"`
	Version              string               `json:"version"`
	LifecycleStatus      string               `json:"lifecycleStatus"`
	ProductSpecification domain.ProductRef    `json:"productSpecification"`
	Category             []domain.CategoryRef `json:"category"`
	ProductOfferingPrice []offeringPrice      `json:"productOfferingPrice"`
}

func datasetURL(siteURL, datasetID string) string {
	return fmt.Sprintf("%s/dataset/%s", siteURL, datasetID)
}

func buildProduct(dataset domain.Dataset, user, imageURL, siteURL, storeURL string) productSpecification {
	return productSpecification{
		ProductNumber:   dataset.ID,
		Version:         dataset.Version,
		Name:            dataset.Title,
		Description:     dataset.Notes,
		IsBundle:        false,
		Brand:           user,
		LifecycleStatus: lifecycleLaunched,
		RelatedParty: []relatedParty{{
			ID:   user,
			Href: fmt.Sprintf("%s/DSPartyManagement/api/partyManagement/v2/individual/%s", storeURL, user),
			Role: "Owner",
		}},
		Attachment: []attachment{{
			Type: "Picture",
			URL:  imageURL,
		}},
		BundleProductSpecification:       []any{},
		ProductSpecificationRelationship: []any{},
		ServiceSpecification:             []any{},
		ResourceSpecification:            []any{},
		ProductSpecCharacteristic: []characteristic{
			{Name: "Media Type", Value: dataset.Type},
			{Name: "Asset Type", Value: assetTypeDataset},
			{Name: "Location", Value: datasetURL(siteURL, dataset.ID)},
		},
	}
}

func buildOffering(input domain.OfferingInput, product domain.ProductRef) productOffering {
	offering := productOffering{
		Name:                 input.Name,
		Version:              input.Version,
		LifecycleStatus:      lifecycleLaunched,
		ProductSpecification: product,
		Category:             input.Categories,
		ProductOfferingPrice: []offeringPrice{},
	}

	if offering.Category == nil {
		offering.Category = []domain.CategoryRef{}
	}

	if input.Price != 0.0 {
		offering.ProductOfferingPrice = []offeringPrice{{
			Name:        "One time fee",
			Description: fmt.Sprintf("One time fee of %s EUR", formatPrice(input.Price)),
			PriceType:   "one time",
			Price: priceAmount{
				TaxIncludedAmount: input.Price,
				DutyFreeAmount:    formatPrice(input.Price - input.Price*0.20),
				TaxRate:           "20",
				CurrencyCode:      "EUR",
			},
		}}
	}

	return offering
}

// formatPrice renders an amount with the shortest decimal representation
// that roundtrips, e.g. 0.8 => "0.8" and 8 => "8".
func formatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

var consecutiveDots = regexp.MustCompile(`\.{2,}`)

// ValidateVersion normalizes loosely typed user input into a dotted
// numeric-ish version string. This is best effort sanitization, not
// semantic version validation. The rules apply once, in fixed order.
func ValidateVersion(raw string) string {
	version := raw

	if version == "" {
		version = "1.0"
	}

	if strings.HasSuffix(version, ".") {
		version += "0"
	}

	version = consecutiveDots.ReplaceAllString(version, ".")

	if strings.HasPrefix(version, ".") {
		version = "1" + version
	}

	return version
}
