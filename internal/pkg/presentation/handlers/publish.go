package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/store-publisher/internal/pkg/application/services/categories"
	"github.com/diwise/store-publisher/internal/pkg/application/services/store"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/repositories/database"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("store-publisher/api/publish")

const maxImageUploadSize = 10 << 20

// PublishPage is the template context for the publish form. Offering is
// non nil after a submission so the user's input survives a failed
// attempt.
type PublishPage struct {
	Dataset    *domain.Dataset
	Categories []domain.SelectOption
	Catalogs   []domain.SelectOption
	Offering   *domain.OfferingInput
	Errors     map[string][]string
	Published  *PublishedOffering
}

type PublishedOffering struct {
	Name string
	URL  string
}

// NewPublishHandler serves the publish form on GET and drives the full
// publish workflow on POST. Registered for both methods on
// /dataset/{id}/publish.
func NewPublishHandler(logger zerolog.Logger, datasets database.Datastore, categorySvc categories.CategoryService, storeSvc store.StoreService, tokens auth.TokenSource, renderer FormRenderer, defaultImageB64 string) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "publish-dataset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		datasetID := chi.URLParam(r, "id")
		user := tokens.User()

		dataset, err := datasets.GetDataset(ctx, datasetID, user)
		if err != nil {
			if errors.Is(err, database.ErrNotAuthorized) {
				log.Warn().Msgf("user %s not authorized to publish %s in the store", user, datasetID)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if errors.Is(err, database.ErrNoSuchDataset) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msgf("failed to fetch dataset %s", datasetID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		formErrors := &errorList{}

		orderedCategories, index, catErr := categorySvc.Categories(ctx)
		if catErr != nil {
			log.Warn().Err(catErr).Msg("categories couldnt be loaded")
			formErrors.Add("Category", "categories couldnt be loaded")
		}

		catalogs, catalogErr := categorySvc.Catalogs(ctx)
		if catalogErr != nil {
			log.Warn().Err(catalogErr).Msg("catalogs couldnt be loaded")
			formErrors.Add("Catalog", "catalogs couldnt be loaded")
		}

		page := PublishPage{
			Dataset:    dataset,
			Categories: categoryOptions(orderedCategories),
			Catalogs:   catalogOptions(catalogs),
		}

		if r.Method == http.MethodPost {
			input, parseErr := parseOfferingInput(r, index, defaultImageB64, formErrors, log)
			if parseErr != nil {
				err = parseErr
				log.Error().Err(err).Msg("bad request")
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			page.Offering = input

			validateOffering(dataset, input, r.FormValue("version"), formErrors, log)

			if formErrors.Empty() {
				offeringURL, createErr := storeSvc.CreateOffering(ctx, *dataset, *input)
				if createErr != nil {
					formErrors.Add("Store", createErr.Error())
				} else {
					page.Published = &PublishedOffering{Name: input.Name, URL: offeringURL}
				}
			}
		}

		page.Errors = formErrors.Map()

		w.Header().Add("Content-Type", "text/html")
		if renderErr := renderer.Render(w, "publish", page); renderErr != nil {
			err = renderErr
			log.Error().Err(err).Msg("failed to render publish form")
		}
	})
}

func parseOfferingInput(r *http.Request, index categories.CategoryIndex, defaultImageB64 string, formErrors *errorList, log zerolog.Logger) (*domain.OfferingInput, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
			return nil, fmt.Errorf("failed to parse multipart form: %s", err.Error())
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form: %s", err.Error())
	}

	input := &domain.OfferingInput{
		PkgID:              r.FormValue("pkg_id"),
		Name:               r.FormValue("name"),
		Description:        r.FormValue("description"),
		LicenseTitle:       r.FormValue("license_title"),
		LicenseDescription: r.FormValue("license_description"),
		Catalog:            r.FormValue("catalogs"),
	}

	if version := r.FormValue("version"); version != "" {
		input.Version = store.ValidateVersion(version)
	}

	_, input.IsOpen = r.Form["open"]

	expanded, err := categories.ExpandAncestors(index, r.Form["categories"])
	if err != nil {
		return nil, err
	}
	input.Categories = expanded

	input.ImageBase64 = defaultImageB64

	if file, _, fileErr := r.FormFile("image_upload"); fileErr == nil {
		defer file.Close()

		contents, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read uploaded image: %s", readErr.Error())
		}

		input.ImageBase64 = base64.StdEncoding.EncodeToString(contents)
	}

	if price := r.FormValue("price"); price != "" {
		value, convErr := strconv.ParseFloat(price, 64)
		if convErr != nil {
			log.Warn().Msgf("%s is not a valid price", price)
			formErrors.Add("Price", fmt.Sprintf("\"%s\" is not a valid number", price))
		} else {
			input.Price = value
		}
	}

	return input, nil
}

func validateOffering(dataset *domain.Dataset, input *domain.OfferingInput, rawVersion string, formErrors *errorList, log zerolog.Logger) {
	required := []struct {
		field string
		value string
	}{
		{"pkg_id", input.PkgID},
		{"name", input.Name},
		{"version", rawVersion},
	}

	for _, f := range required {
		if f.value == "" {
			log.Warn().Msgf("field %s was not provided", f.field)
			formErrors.Add(capitalize(f.field), "This field is required to publish the offering")
		}
	}

	if dataset.Private && input.IsOpen {
		log.Warn().Msg("user tried to create an open offering for a private dataset")
		formErrors.Add("Open", "Private datasets cannot be offered as open offerings")
	}

	if !dataset.Private && input.Price != 0.0 && !formErrors.Has("Price") {
		log.Warn().Msg("user tried to create a paid offering for a public dataset")
		formErrors.Add("Price", "You cannot set a price on a dataset that is public since everyone can access it")
	}
}

func capitalize(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func categoryOptions(categories []domain.Category) []domain.SelectOption {
	options := make([]domain.SelectOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, domain.SelectOption{Value: c.ID, Text: c.Name})
	}
	return options
}

func catalogOptions(catalogs []domain.Catalog) []domain.SelectOption {
	options := make([]domain.SelectOption, 0, len(catalogs))
	for _, c := range catalogs {
		options = append(options, domain.SelectOption{Value: c.ID, Text: c.Name})
	}
	return options
}
