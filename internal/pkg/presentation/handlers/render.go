package handlers

import (
	"html/template"
	"io"
)

// FormRenderer renders a named view with the given page context. The
// hosting application may bring its own implementation to match its
// look and feel.
//
//go:generate moq -rm -out renderer_mock.go . FormRenderer
type FormRenderer interface {
	Render(w io.Writer, name string, page PublishPage) error
}

func NewFormRenderer() (FormRenderer, error) {
	templates, err := template.New("publish").Parse(publishTemplate)
	if err != nil {
		return nil, err
	}

	return &htmlRenderer{templates: templates}, nil
}

type htmlRenderer struct {
	templates *template.Template
}

func (r *htmlRenderer) Render(w io.Writer, name string, page PublishPage) error {
	return r.templates.ExecuteTemplate(w, name, page)
}

const publishTemplate string = `<!DOCTYPE html>
<html>
<head><title>Publish {{.Dataset.Title}}</title></head>
<body>
<h1>Publish dataset in the store</h1>
{{if .Published}}
<p class="flash-success">Offering <a href="{{.Published.URL}}" target="_blank">{{.Published.Name}}</a> published correctly.</p>
{{end}}
{{range $field, $messages := .Errors}}
{{range $messages}}<p class="error" data-field="{{$field}}">{{.}}</p>{{end}}
{{end}}
<form method="post" enctype="multipart/form-data">
  <input type="hidden" name="pkg_id" value="{{.Dataset.ID}}"/>
  <label>Name <input type="text" name="name" value="{{with .Offering}}{{.Name}}{{end}}"/></label>
  <label>Description <textarea name="description">{{with .Offering}}{{.Description}}{{end}}</textarea></label>
  <label>License title <input type="text" name="license_title" value="{{with .Offering}}{{.LicenseTitle}}{{end}}"/></label>
  <label>License description <textarea name="license_description">{{with .Offering}}{{.LicenseDescription}}{{end}}</textarea></label>
  <label>Version <input type="text" name="version" value="{{with .Offering}}{{.Version}}{{end}}"/></label>
  <label>Open offering <input type="checkbox" name="open"{{with .Offering}}{{if .IsOpen}} checked{{end}}{{end}}/></label>
  <label>Categories
    <select name="categories" multiple>
    {{range .Categories}}<option value="{{.Value}}">{{.Text}}</option>{{end}}
    </select>
  </label>
  <label>Catalog
    <select name="catalogs">
    {{range .Catalogs}}<option value="{{.Value}}">{{.Text}}</option>{{end}}
    </select>
  </label>
  <label>Price (EUR) <input type="text" name="price" value="{{with .Offering}}{{if .Price}}{{.Price}}{{end}}{{end}}"/></label>
  <label>Image <input type="file" name="image_upload"/></label>
  <button type="submit">Publish</button>
</form>
</body>
</html>
`
