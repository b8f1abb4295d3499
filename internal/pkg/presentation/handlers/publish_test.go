package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/diwise/store-publisher/internal/pkg/application/services/categories"
	"github.com/diwise/store-publisher/internal/pkg/application/services/store"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/repositories/database"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestGetRendersTheFormWithCategoriesAndCatalogs(t *testing.T) {
	is, f := testFixture(t)

	resp := f.do(t, http.MethodGet, nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(f.renderer.RenderCalls()), 1)

	page := f.renderer.RenderCalls()[0].Page
	is.Equal(page.Dataset.ID, "abc123")
	is.Equal(len(page.Categories), 2)
	is.Equal(page.Categories[0].Text, "Open Data")
	is.Equal(len(page.Catalogs), 1)
	is.True(page.Offering == nil)
}

func TestUnknownDatasetGives404(t *testing.T) {
	is, f := testFixture(t)
	f.datasets.GetDatasetFunc = func(ctx context.Context, datasetID, user string) (*domain.Dataset, error) {
		return nil, database.ErrNoSuchDataset
	}

	resp := f.do(t, http.MethodGet, nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
	is.Equal(len(f.renderer.RenderCalls()), 0)
}

func TestOtherOwnersDatasetGives401(t *testing.T) {
	is, f := testFixture(t)
	f.datasets.GetDatasetFunc = func(ctx context.Context, datasetID, user string) (*domain.Dataset, error) {
		return nil, database.ErrNotAuthorized
	}

	resp := f.do(t, http.MethodGet, nil)

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestPublishingAValidFormCreatesTheOffering(t *testing.T) {
	is, f := testFixture(t)

	resp := f.do(t, http.MethodPost, validForm())

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(len(f.store.CreateOfferingCalls()), 1)

	call := f.store.CreateOfferingCalls()[0]
	is.Equal(call.Input.Name, "Test Dataset")
	is.Equal(call.Input.Version, "1.0")
	is.True(call.Input.IsOpen)

	page := f.lastPage()
	is.True(page.Published != nil)
	is.Equal(page.Published.URL, "http://store/productOffering/77")
	is.Equal(len(page.Errors), 0)
}

func TestSelectedCategoriesAreExpandedToTheirAncestors(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form["categories"] = []string{"5"}

	f.do(t, http.MethodPost, form)

	is.Equal(len(f.store.CreateOfferingCalls()), 1)
	is.Equal(len(f.store.CreateOfferingCalls()[0].Input.Categories), 2) // the parent rides along
}

func TestMissingNameBlocksPublishing(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form.Del("name")

	f.do(t, http.MethodPost, form)

	is.Equal(len(f.store.CreateOfferingCalls()), 0)

	page := f.lastPage()
	is.Equal(len(page.Errors), 1)
	is.Equal(page.Errors["Name"][0], "This field is required to publish the offering")
}

func TestMissingVersionBlocksPublishing(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form.Del("version")

	f.do(t, http.MethodPost, form)

	is.Equal(len(f.store.CreateOfferingCalls()), 0)
	is.Equal(len(f.lastPage().Errors["Version"]), 1)
}

func TestPrivateDatasetsCannotBeOpenOfferings(t *testing.T) {
	is, f := testFixture(t)
	f.datasets.GetDatasetFunc = func(ctx context.Context, datasetID, user string) (*domain.Dataset, error) {
		return &domain.Dataset{ID: "abc123", Title: "Test Dataset", Private: true, Owner: "someuser"}, nil
	}

	f.do(t, http.MethodPost, validForm())

	is.Equal(len(f.store.CreateOfferingCalls()), 0)
	is.Equal(f.lastPage().Errors["Open"][0], "Private datasets cannot be offered as open offerings")
}

func TestPublicDatasetsCannotHaveAPrice(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form.Del("open")
	form.Set("price", "1.0")

	f.do(t, http.MethodPost, form)

	is.Equal(len(f.store.CreateOfferingCalls()), 0)
	is.Equal(f.lastPage().Errors["Price"][0], "You cannot set a price on a dataset that is public since everyone can access it")
}

func TestGarbagePricesAreReportedAsSuch(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form.Set("price", "a lot")

	f.do(t, http.MethodPost, form)

	is.Equal(len(f.store.CreateOfferingCalls()), 0)
	is.Equal(f.lastPage().Errors["Price"][0], "\"a lot\" is not a valid number")
}

func TestUnknownCategorySelectionIsABadRequest(t *testing.T) {
	is, f := testFixture(t)

	form := validForm()
	form["categories"] = []string{"42"}

	resp := f.do(t, http.MethodPost, form)

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(f.store.CreateOfferingCalls()), 0)
}

func TestStoreFailuresAreShownToTheUser(t *testing.T) {
	is, f := testFixture(t)
	f.store.CreateOfferingFunc = func(ctx context.Context, dataset domain.Dataset, input domain.OfferingInput) (string, error) {
		return "", &store.StoreError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	}

	resp := f.do(t, http.MethodPost, validForm())

	is.Equal(resp.StatusCode, http.StatusOK) // the form is re-rendered with the error
	is.Equal(f.lastPage().Errors["Store"][0], "boom")
	is.True(f.lastPage().Published == nil)
}

type fixture struct {
	datasets    *database.DatastoreMock
	categorySvc *categories.CategoryServiceMock
	store       *store.StoreServiceMock
	renderer    *FormRendererMock
	router      *chi.Mux
}

func testFixture(t *testing.T) (*is.I, *fixture) {
	is := is.New(t)

	f := &fixture{
		datasets: &database.DatastoreMock{
			GetDatasetFunc: func(ctx context.Context, datasetID, user string) (*domain.Dataset, error) {
				return &domain.Dataset{ID: "abc123", Title: "Test Dataset", Owner: "someuser"}, nil
			},
		},
		categorySvc: &categories.CategoryServiceMock{
			CategoriesFunc: func(ctx context.Context) ([]domain.Category, categories.CategoryIndex, error) {
				ordered := []domain.Category{
					{ID: "1", Name: "Open Data", IsRoot: true, Href: "http://store/category/1"},
					{ID: "5", Name: "Transport", ParentID: "1", Href: "http://store/category/5"},
				}
				index := categories.CategoryIndex{
					"1": {ID: "1", Href: "http://store/category/1"},
					"5": {ID: "5", Href: "http://store/category/5", ParentID: "1"},
				}
				return ordered, index, nil
			},
			CatalogsFunc: func(ctx context.Context) ([]domain.Catalog, error) {
				return []domain.Catalog{{ID: "7", Name: "My Catalog", Href: "http://store/catalog/7"}}, nil
			},
		},
		store: &store.StoreServiceMock{
			CreateOfferingFunc: func(ctx context.Context, dataset domain.Dataset, input domain.OfferingInput) (string, error) {
				return "http://store/productOffering/77", nil
			},
		},
		renderer: &FormRendererMock{
			RenderFunc: func(w io.Writer, name string, page PublishPage) error { return nil },
		},
	}

	tokens := &auth.TokenSourceMock{
		UserFunc: func() string { return "someuser" },
	}

	handler := NewPublishHandler(zerolog.Logger{}, f.datasets, f.categorySvc, f.store, tokens, f.renderer, "ZGVmYXVsdA==")

	f.router = chi.NewRouter()
	f.router.Get("/dataset/{id}/publish", handler)
	f.router.Post("/dataset/{id}/publish", handler)

	return is, f
}

func (f *fixture) do(t *testing.T, method string, form url.Values) *http.Response {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, "/dataset/abc123/publish", body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w.Result()
}

func (f *fixture) lastPage() PublishPage {
	calls := f.renderer.RenderCalls()
	return calls[len(calls)-1].Page
}

func validForm() url.Values {
	return url.Values{
		"pkg_id":  []string{"abc123"},
		"name":    []string{"Test Dataset"},
		"version": []string{"1.0"},
		"open":    []string{"on"},
	}
}
