package auth_test

import (
	"testing"

	"github.com/aussiebroadwan/grantstore/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestAuthorizationCodeFlow walks a confidential client through consent,
// code redemption and approval management.
func TestAuthorizationCodeFlow(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	ctx := t.Context()

	app := registerClient(t, client, authsdk.ClientRequest{
		ID:          "webapp",
		Name:        "Web App",
		Description: "Confidential test client",
		RedirectURI: redirectURI,
		Type:        "web_application",
	})
	require.True(t, app.Confidential)
	require.NotEmpty(t, app.ClientSecret, "web applications receive a secret")

	scopes := []string{"read", "write"}

	// First request asks for consent.
	res, err := client.Authorize(ctx, client.BuildAuthorizeURL(app.ID, redirectURI, "s1", scopes), ownerHeaders())
	require.NoError(t, err)
	require.NotNil(t, res.Consent, "first authorization should ask for consent")
	require.Equal(t, "Web App", res.Consent.ClientName)
	require.Equal(t, "read write", res.Consent.Scope)

	res, err = client.Decide(ctx, *res.Consent, true, ownerHeaders())
	require.NoError(t, err)
	require.NotEmpty(t, res.Code)
	require.Equal(t, "s1", res.State)

	token, err := client.ExchangeAuthorizationCode(ctx, app.ID, app.ClientSecret, res.Code, redirectURI)
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, "read write", token.Scope)
	require.Positive(t, token.ExpiresIn)

	// Codes are single use.
	_, err = client.ExchangeAuthorizationCode(ctx, app.ID, app.ClientSecret, res.Code, redirectURI)
	assertOAuth2Error(t, err, authsdk.ErrorCodeInvalidGrant)

	// The approved scope is remembered: no consent the second time.
	code := authorizeWithConsent(t, client, app.ID, "s2", scopes)
	_, err = client.ExchangeAuthorizationCode(ctx, app.ID, "wrong-secret", code, redirectURI)
	assertOAuth2Error(t, err, authsdk.ErrorCodeInvalidClient)

	// A resource server learns who the token speaks for.
	info, err := client.IntrospectToken(ctx, app.ID, app.ClientSecret, token.AccessToken)
	require.NoError(t, err)
	require.True(t, info.Active)
	require.Equal(t, app.ID, info.ClientID)
	require.Equal(t, "read write", info.Scope)

	info, err = client.IntrospectToken(ctx, app.ID, app.ClientSecret, "not-a-token")
	require.NoError(t, err)
	require.False(t, info.Active)

	_, err = client.IntrospectToken(ctx, app.ID, "wrong-secret", token.AccessToken)
	assertOAuth2Error(t, err, authsdk.ErrorCodeInvalidClient)

	session := client.NewSession(token)
	approvals, err := session.ListApprovals(ctx)
	require.NoError(t, err)
	require.Len(t, approvals.Approvals, 1)
	require.Equal(t, app.ID, approvals.Approvals[0].ClientID)
	require.Equal(t, "read write", approvals.Approvals[0].Scope)

	require.NoError(t, session.RevokeApproval(ctx, app.ID))
	assertOAuth2Error(t, session.RevokeApproval(ctx, app.ID), authsdk.ErrorCodeNotFound)

	// After revocation consent is required again.
	res, err = client.Authorize(ctx, client.BuildAuthorizeURL(app.ID, redirectURI, "s3", scopes), ownerHeaders())
	require.NoError(t, err)
	require.NotNil(t, res.Consent)
}

// TestPublicClientFlow redeems a code without a secret.
func TestPublicClientFlow(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	ctx := t.Context()

	app := registerClient(t, client, authsdk.ClientRequest{
		Name:        "Native App",
		RedirectURI: redirectURI,
		Type:        "native_application",
	})
	require.False(t, app.Confidential)
	require.Empty(t, app.ClientSecret)

	code := authorizeWithConsent(t, client, app.ID, "native", []string{"groups"})

	// The redirect_uri must match the one the code was issued for.
	_, err := client.ExchangeAuthorizationCode(ctx, app.ID, "", code, "http://localhost/other")
	assertOAuth2Error(t, err, authsdk.ErrorCodeInvalidGrant)

	code = authorizeWithConsent(t, client, app.ID, "native", []string{"groups"})
	token, err := client.ExchangeAuthorizationCode(ctx, app.ID, "", code, redirectURI)
	require.NoError(t, err)
	require.Equal(t, "groups", token.Scope)
}

// TestConsentRejected verifies a rejected consent redirects with
// access_denied and that the nonce cannot be replayed.
func TestConsentRejected(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))
	ctx := t.Context()

	app := registerClient(t, client, authsdk.ClientRequest{
		Name:        "Browser App",
		RedirectURI: redirectURI,
		Type:        "user_agent_based_application",
	})

	res, err := client.Authorize(ctx, client.BuildAuthorizeURL(app.ID, redirectURI, "deny", []string{"read"}), ownerHeaders())
	require.NoError(t, err)
	require.NotNil(t, res.Consent)
	challenge := *res.Consent

	_, err = client.Decide(ctx, challenge, false, ownerHeaders())
	assertOAuth2Error(t, err, authsdk.ErrorCodeAccessDenied)

	_, err = client.Decide(ctx, challenge, true, ownerHeaders())
	assertOAuth2Error(t, err, authsdk.ErrorCodeInvalidRequest)
}

// TestAuthorizeRequiresOwner verifies the proxy identity header is enforced.
func TestAuthorizeRequiresOwner(t *testing.T) {
	client := authsdk.NewSDKClient(setupAuthContainer(t))

	app := registerClient(t, client, authsdk.ClientRequest{
		Name:        "Web App",
		RedirectURI: redirectURI,
		Type:        "web_application",
	})

	_, err := client.Authorize(t.Context(), client.BuildAuthorizeURL(app.ID, redirectURI, "", []string{"read"}), nil)
	assertOAuth2Error(t, err, "unauthorized")
}
