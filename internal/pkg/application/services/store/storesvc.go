package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("store-publisher/svcs/store")

// Datasets is the slice of the dataset repository that the store service
// needs to keep acquire urls in sync.
//
//go:generate moq -rm -out datasets_mock.go . Datasets
type Datasets interface {
	UpdateDataset(ctx context.Context, dataset domain.Dataset) error
}

// StoreService publishes datasets as offerings in the marketplace.
//
//go:generate moq -rm -out storesvc_mock.go . StoreService
type StoreService interface {
	CreateOffering(ctx context.Context, dataset domain.Dataset, input domain.OfferingInput) (string, error)
}

func NewStoreService(siteURL string, client *Client, tokens auth.TokenSource, datasets Datasets) StoreService {
	return &storeSvc{
		siteURL:  siteURL,
		client:   client,
		tokens:   tokens,
		datasets: datasets,
	}
}

type storeSvc struct {
	siteURL  string
	client   *Client
	tokens   auth.TokenSource
	datasets Datasets
}

// CreateOffering resolves the product that represents the dataset in the
// store, reusing an existing one when possible, then creates an offering
// bound to it. On failure the offering is rolled back on a best effort
// basis and the original error propagates. The product itself is never
// rolled back, reuse on the next attempt is the recovery mechanism.
func (svc *storeSvc) CreateOffering(ctx context.Context, dataset domain.Dataset, input domain.OfferingInput) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-offering")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("creating offering %s for dataset %s", input.Name, dataset.ID)

	offeringSubmitted := false

	offeringURL, err := func() (string, error) {
		product, err := svc.findExistingProduct(ctx, dataset)
		if err != nil {
			return "", err
		}

		if product == nil {
			product, err = svc.createProduct(ctx, dataset, input.ImageBase64)
			if err != nil {
				return "", err
			}
		}

		offering := buildOffering(input, *product)

		body, err := json.Marshal(offering)
		if err != nil {
			return "", fmt.Errorf("failed to marshal offering: %s", err.Error())
		}

		offeringSubmitted = true

		resp, err := svc.client.Request(ctx, http.MethodPost, svc.client.StoreURL()+catalogAPIPath+"/productOffering/", map[string]string{"Content-Type": "application/json"}, body)
		if err != nil {
			return "", err
		}

		return resp.Header.Get("Location"), nil
	}()

	if err != nil {
		log.Warn().Err(err).Msgf("failed to create offering %s", input.Name)
		svc.rollback(ctx, input, offeringSubmitted)

		var serr *StoreError
		var cerr *ConnectivityError
		if errors.As(err, &serr) || errors.As(err, &cerr) {
			return "", err
		}

		return "", &StoreError{Message: err.Error()}
	}

	return offeringURL, nil
}

// rollback deletes the offering if its creation was attempted. Failures
// are logged and swallowed so that the original error always reaches the
// caller.
func (svc *storeSvc) rollback(ctx context.Context, input domain.OfferingInput, offeringSubmitted bool) {
	if !offeringSubmitted {
		return
	}

	url := fmt.Sprintf("%s/api/offering/offerings/%s/%s/%s", svc.client.StoreURL(), svc.tokens.User(), input.Name, input.Version)

	if _, err := svc.client.Request(ctx, http.MethodDelete, url, nil, nil); err != nil {
		log := logging.GetFromContext(ctx)
		log.Warn().Err(err).Msg("rollback failed")
	}
}
