package auth

import (
	"context"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestTokenIsFetchedFromTokenEndpoint(t *testing.T) {
	is, ms := testSetup(t, 200, tokenJson)

	ts := NewOAuthTokenSource("someuser", "client", "secret", "all", ms.URL())

	token, err := ts.Token(context.Background())
	is.NoErr(err)
	is.Equal(token, "validtoken")
}

func TestTokenIsCachedBetweenCalls(t *testing.T) {
	is, ms := testSetup(t, 200, tokenJson)

	ts := NewOAuthTokenSource("someuser", "client", "secret", "all", ms.URL())

	_, err := ts.Token(context.Background())
	is.NoErr(err)

	token, err := ts.Token(context.Background())
	is.NoErr(err)
	is.Equal(token, "validtoken")
}

func TestRefreshFailsOnNonOKResponse(t *testing.T) {
	is, ms := testSetup(t, 401, `{"error":"invalid_client"}`)

	ts := NewOAuthTokenSource("someuser", "client", "secret", "all", ms.URL())

	err := ts.Refresh(context.Background())
	is.True(err != nil)
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const tokenJson string = `{"access_token":"validtoken","scope":"all","token_type":"Bearer","expires_in":3600}`
