package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestRequestAttachesTokenAndAcceptHeader(t *testing.T) {
	is, ctx := gatewaySetup(t)

	var seenAuthorization, seenAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuthorization = r.Header.Get("Authorization")
		seenAccept = r.Header.Get("Accept")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, gatewayTokens(t))

	resp, err := client.Request(ctx, http.MethodGet, srv.URL+"/things", nil, nil)
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusOK)

	is.Equal(seenAuthorization, "Bearer validtoken")
	is.Equal(seenAccept, "application/json")
}

func TestRequestRefreshesTokenOnceOn401(t *testing.T) {
	is, ctx := gatewaySetup(t)

	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer srv.Close()

	tokens := gatewayTokens(t)
	client := NewClient(srv.URL, tokens)

	resp, err := client.Request(ctx, http.MethodGet, srv.URL+"/things", nil, nil)
	is.NoErr(err)

	is.Equal(attempts, 2)
	is.Equal(len(tokens.RefreshCalls()), 1)
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(string(resp.Body), `{"result":"ok"}`)
}

func TestSecond401IsClassifiedAsStoreError(t *testing.T) {
	is, ctx := gatewaySetup(t)

	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	tokens := gatewayTokens(t)
	client := NewClient(srv.URL, tokens)

	_, err := client.Request(ctx, http.MethodGet, srv.URL+"/things", nil, nil)

	is.Equal(attempts, 2) // no retries after the second attempt
	is.Equal(len(tokens.RefreshCalls()), 1)

	var serr *StoreError
	is.True(errors.As(err, &serr))
	is.Equal(serr.Message, "invalid token")
}

func TestErrorResponsesCarryTheStoresMessage(t *testing.T) {
	is, ctx := gatewaySetup(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"the offering is invalid"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, gatewayTokens(t))

	_, err := client.Request(ctx, http.MethodPost, srv.URL+"/things", nil, []byte(`{}`))

	var serr *StoreError
	is.True(errors.As(err, &serr))
	is.Equal(serr.StatusCode, http.StatusBadRequest)
	is.Equal(serr.Message, "the offering is invalid")
}

func TestConnectionFailuresAreNotClassified(t *testing.T) {
	is, ctx := gatewaySetup(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, gatewayTokens(t))

	_, err := client.Request(ctx, http.MethodGet, srv.URL+"/things", nil, nil)

	var cerr *ConnectivityError
	is.True(errors.As(err, &cerr))
}

func TestUploadImageReturnsTheAssetLocation(t *testing.T) {
	is, ctx := gatewaySetup(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "http://store/assets/42")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, gatewayTokens(t))

	url, err := client.UploadImage(ctx, "Test Dataset", "aW1hZ2U=")
	is.NoErr(err)
	is.Equal(url, "http://store/assets/42")
}

func gatewaySetup(t *testing.T) (*is.I, context.Context) {
	return is.New(t), logging.NewContextWithLogger(context.Background(), zerolog.Logger{})
}

func gatewayTokens(t *testing.T) *auth.TokenSourceMock {
	return &auth.TokenSourceMock{
		UserFunc: func() string { return "someuser" },
		TokenFunc: func(ctx context.Context) (string, error) {
			return "validtoken", nil
		},
		RefreshFunc: func(ctx context.Context) error {
			return nil
		},
	}
}
