package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("store-publisher/auth")

// TokenSource exposes the current user's identity and OAuth credential to
// the publishing workflow. The hosting application owns the session; this
// is the narrow surface the publisher needs from it.
//
//go:generate moq -rm -out tokensource_mock.go . TokenSource
type TokenSource interface {
	User() string
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) error
}

// NewOAuthTokenSource returns a TokenSource that fetches bearer tokens
// from an OAuth token endpoint using the client credentials grant.
func NewOAuthTokenSource(user, clientID, clientSecret, scope, tokenURL string) TokenSource {
	return &oauthTokenSource{
		user:         user,
		clientID:     clientID,
		clientSecret: clientSecret,
		scope:        scope,
		tokenURL:     tokenURL,
	}
}

type oauthTokenSource struct {
	user         string
	clientID     string
	clientSecret string
	scope        string
	tokenURL     string

	mutex       sync.Mutex
	accessToken string
}

func (ts *oauthTokenSource) User() string {
	return ts.user
}

func (ts *oauthTokenSource) Token(ctx context.Context) (string, error) {
	ts.mutex.Lock()
	token := ts.accessToken
	ts.mutex.Unlock()

	if token != "" {
		return token, nil
	}

	return ts.fetchToken(ctx)
}

func (ts *oauthTokenSource) Refresh(ctx context.Context) error {
	_, err := ts.fetchToken(ctx)
	return err
}

func (ts *oauthTokenSource) fetchToken(ctx context.Context) (string, error) {
	var err error
	ctx, span := tracer.Start(ctx, "retrieve-token")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	params := url.Values{}
	params.Add("grant_type", "client_credentials")
	params.Add("scope", ts.scope)
	params.Add("client_id", ts.clientID)
	params.Add("client_secret", ts.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create new token request: %s", err.Error())
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %s", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response from token request: %d != %d", resp.StatusCode, http.StatusOK)
		return "", err
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %s", err.Error())
	}

	token := tokenResponse{}

	err = json.Unmarshal(bodyBytes, &token)
	if err != nil {
		return "", fmt.Errorf("failed to unmarshal access token json: %s", err.Error())
	}

	ts.mutex.Lock()
	ts.accessToken = token.AccessToken
	ts.mutex.Unlock()

	return token.AccessToken, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
