package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client performs authenticated calls against the marketplace and
// classifies the outcome. A 401 triggers exactly one token refresh and
// one retry of the identical call.
type Client struct {
	storeURL   string
	tokens     auth.TokenSource
	httpClient http.Client
}

func NewClient(storeURL string, tokens auth.TokenSource) *Client {
	return &Client{
		storeURL: strings.TrimSuffix(storeURL, "/"),
		tokens:   tokens,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) StoreURL() string {
	return c.storeURL
}

// Response is the raw result of a successful store call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Request issues one authenticated call to the store. Transport failures
// come back as *ConnectivityError, 4xx/5xx answers as *StoreError, and
// anything else returns the raw response for the caller to parse.
func (c *Client) Request(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error) {
	log := logging.GetFromContext(ctx)

	resp, err := c.attempt(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Info().Msgf("%s %s returned 401, token expired? request will be retried with a refreshed token", method, url)

		if err := c.tokens.Refresh(ctx); err != nil {
			return nil, err
		}

		resp, err = c.attempt(ctx, method, url, headers, body)
		if err != nil {
			return nil, err
		}
	}

	log.Info().Str("method", method).Str("url", url).Int("status", resp.StatusCode).Str("body", string(resp.Body)).Msg("store request")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StoreError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	return resp, nil
}

// UploadImage posts the offering image as an asset upload job and
// returns the URL the store assigns to it.
func (c *Client) UploadImage(ctx context.Context, title, imageB64 string) (string, error) {
	payload := map[string]any{
		"contentType": "image/png",
		"isPublic":    true,
		"content": map[string]string{
			"name": "image_" + title,
			"data": imageB64,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload job: %s", err.Error())
	}

	resp, err := c.Request(ctx, http.MethodPost, c.storeURL+"/charging/api/assetManagement/assets/uploadJob", map[string]string{"Content-Type": "application/json"}, body)
	if err != nil {
		return "", err
	}

	return resp.Header.Get("Location"), nil
}

func (c *Client) attempt(ctx context.Context, method, url string, headers map[string]string, body []byte) (*Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s", err.Error())
	}

	for name, value := range headers {
		req.Header.Set(name, value)
	}

	// Ask for JSON so that error bodies can be parsed
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func errorMessage(body []byte) string {
	payload := struct {
		Message string `json:"message"`
	}{}

	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return string(body)
	}

	return payload.Message
}
