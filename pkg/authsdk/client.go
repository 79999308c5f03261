package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the grantstore authorization server.
// It provides access to unauthenticated operations and can create Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps a token endpoint response. The session expires 30 seconds
// before the token does.
func (c *SDKClient) NewSession(tokenResp *TokenResponse) *Session {
	return newSession(c, tokenResp.AccessToken, tokenResp.Scope, tokenResp.ExpiresIn)
}

// NewSessionFromToken creates a session from an access token obtained
// elsewhere, e.g. stored by the application after an earlier exchange.
func (c *SDKClient) NewSessionFromToken(accessToken, scope string, expiresIn int64) *Session {
	return newSession(c, accessToken, scope, expiresIn)
}

// NewAdminSession authenticates client registry calls with HTTP basic
// credentials.
func (c *SDKClient) NewAdminSession(user, pass string) *AdminSession {
	return &AdminSession{client: c, user: user, pass: pass}
}

// noRedirect returns a copy of the HTTP client that surfaces 302 responses
// instead of following them.
func (c *SDKClient) noRedirect() *http.Client {
	return &http.Client{
		Transport: c.HTTPClient.Transport,
		Timeout:   c.HTTPClient.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
