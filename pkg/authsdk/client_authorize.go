package authsdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// BuildAuthorizeURL constructs an OAuth2 authorization URL for the authorization code flow.
// This URL should be used to redirect the user's browser to begin the authorization flow.
//
// Parameters:
//   - redirectURI: Must equal the client's registered redirect URI. Empty omits it.
//   - state: Opaque value echoed back on the redirect (recommended for CSRF protection)
//   - scopes: List of scopes to request
//
// Example:
//
//	url := client.BuildAuthorizeURL("web", "https://app.example.com/cb", "random-state", []string{"read"})
func (c *SDKClient) BuildAuthorizeURL(clientID, redirectURI, state string, scopes []string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", clientID)

	if redirectURI != "" {
		params.Set("redirect_uri", redirectURI)
	}

	if state != "" {
		params.Set("state", state)
	}

	if len(scopes) > 0 {
		params.Set("scope", strings.Join(scopes, " "))
	}

	return fmt.Sprintf("%s/v1/oauth2/authorize?%s", c.BaseURL, params.Encode())
}

// AuthorizeResult is what the authorize endpoint answered: either a redirect
// carrying the code, or a consent challenge to put in front of the user.
type AuthorizeResult struct {
	Code    string
	State   string
	Consent *ConsentChallenge
}

// Authorize follows the authorization URL the way a trusted front end would,
// asserting the resource owner with the proxy identity headers.
func (c *SDKClient) Authorize(ctx context.Context, authorizeURL string, ownerHeaders http.Header) (*AuthorizeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authorizeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range ownerHeaders {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.noRedirect().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		var challenge ConsentChallenge
		if err := decodeJSON(resp, &challenge, http.StatusOK); err != nil {
			return nil, err
		}
		return &AuthorizeResult{Consent: &challenge}, nil
	}

	return readAuthorizeRedirect(resp)
}

// Decide answers a consent challenge. On approval the result carries the
// code; on rejection the error is an *OAuth2Error with access_denied.
func (c *SDKClient) Decide(
	ctx context.Context,
	challenge ConsentChallenge,
	approve bool,
	ownerHeaders http.Header,
) (*AuthorizeResult, error) {
	decision := "reject"
	if approve {
		decision = "approve"
	}
	data := url.Values{
		"client_id":       {challenge.ClientID},
		"scope":           {challenge.Scope},
		"authorize_nonce": {challenge.Nonce},
		"decision":        {decision},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url("/v1/oauth2/authorize"),
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, vs := range ownerHeaders {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.noRedirect().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return readAuthorizeRedirect(resp)
}

func readAuthorizeRedirect(resp *http.Response) (*AuthorizeResult, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusFound {
		if err := parseErrorResponse(resp, body); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected authorize response status %d", resp.StatusCode)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, errors.New("redirect response missing Location header")
	}

	code, state, err := ParseAuthorizationCallback(location)
	if err != nil {
		return nil, err
	}
	return &AuthorizeResult{Code: code, State: state}, nil
}

// ParseAuthorizationCallback parses the callback URL from an authorization redirect.
// This extracts the authorization code and state from the redirect URL query parameters.
//
// An error redirect (e.g. the user denied consent) is returned as an *OAuth2Error.
//
// Example:
//
//	code, state, err := authsdk.ParseAuthorizationCallback("https://localhost/callback?code=xyz&state=abc")
func ParseAuthorizationCallback(callbackURL string) (code, state string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse callback URL: %w", err)
	}

	query := u.Query()

	if errorCode := query.Get("error"); errorCode != "" {
		return "", "", &OAuth2Error{
			StatusCode:  http.StatusFound,
			Code:        errorCode,
			Description: query.Get("error_description"),
		}
	}

	code = query.Get("code")
	if code == "" {
		return "", "", errors.New("callback missing authorization code")
	}

	state = query.Get("state")

	return code, state, nil
}
