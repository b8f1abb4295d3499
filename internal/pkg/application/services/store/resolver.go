package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/domain"
)

const catalogAPIPath = "/DSProductCatalog/api/catalogManagement/v2"

type catalogProduct struct {
	ID                        string           `json:"id"`
	Href                      string           `json:"href"`
	Name                      string           `json:"name"`
	Version                   string           `json:"version"`
	LifecycleStatus           string           `json:"lifecycleStatus"`
	ProductSpecCharacteristic []characteristic `json:"productSpecCharacteristic"`
}

func (p *catalogProduct) locationCharacteristic() string {
	for _, c := range p.ProductSpecCharacteristic {
		if c.Name == "Location" {
			return c.Value
		}
	}
	return ""
}

// findExistingProduct looks for a launched or active product in the store
// whose Location characteristic points at the dataset. The first match is
// reused, so a dataset gets at most one product per marketplace.
func (svc *storeSvc) findExistingProduct(ctx context.Context, dataset domain.Dataset) (*domain.ProductRef, error) {
	resp, err := svc.client.Request(ctx, http.MethodGet, svc.client.StoreURL()+catalogAPIPath+"/productSpecification/", nil, nil)
	if err != nil {
		return nil, err
	}

	products := []catalogProduct{}
	if err := json.Unmarshal(resp.Body, &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product listing: %s", err.Error())
	}

	wantedLocation := datasetURL(svc.siteURL, dataset.ID)

	for _, p := range products {
		launchedOrActive := p.LifecycleStatus == lifecycleLaunched || p.LifecycleStatus == lifecycleActive
		if launchedOrActive && p.locationCharacteristic() == wantedLocation {
			ref := domain.ProductRef{ID: p.ID, Href: p.Href, Name: p.Name, Version: p.Version}

			if err := svc.syncAcquireURL(ctx, dataset, ref.Name, ref.Version); err != nil {
				return nil, err
			}

			return &ref, nil
		}
	}

	return nil, nil
}

func (svc *storeSvc) createProduct(ctx context.Context, dataset domain.Dataset, imageB64 string) (*domain.ProductRef, error) {
	imageURL, err := svc.client.UploadImage(ctx, dataset.Title, imageB64)
	if err != nil {
		return nil, err
	}

	product := buildProduct(dataset, svc.tokens.User(), imageURL, svc.siteURL, svc.client.StoreURL())

	body, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product specification: %s", err.Error())
	}

	resp, err := svc.client.Request(ctx, http.MethodPost, svc.client.StoreURL()+catalogAPIPath+"/productSpecification/", map[string]string{"Content-Type": "application/json"}, body)
	if err != nil {
		return nil, err
	}

	// The store returns the created resource, which is where id and href
	// first become known
	created := catalogProduct{}
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created product: %s", err.Error())
	}

	ref := domain.ProductRef{ID: created.ID, Href: created.Href, Name: product.Name, Version: product.Version}
	if created.Name != "" {
		ref.Name = created.Name
	}
	if created.Version != "" {
		ref.Version = created.Version
	}

	if err := svc.syncAcquireURL(ctx, dataset, ref.Name, ref.Version); err != nil {
		return nil, err
	}

	return &ref, nil
}

// syncAcquireURL keeps the acquire url stored on private datasets pointing
// at the product's search page in the store. Public datasets are never
// touched.
func (svc *storeSvc) syncAcquireURL(ctx context.Context, dataset domain.Dataset, productName, productVersion string) error {
	if !dataset.Private {
		return nil
	}

	escapedName := strings.ReplaceAll(productName, " ", "%20")
	expected := fmt.Sprintf("%s/search/resource/%s/%s/%s", svc.client.StoreURL(), svc.tokens.User(), escapedName, productVersion)

	if dataset.AcquireURL == expected {
		return nil
	}

	dataset.AcquireURL = expected
	if err := svc.datasets.UpdateDataset(ctx, dataset); err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("acquire url updated correctly to %s", expected)

	return nil
}
