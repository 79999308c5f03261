/*
Package authsdk provides a client SDK for the grantstore authorization server,
along with the wire types the server itself writes.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (authorize URL, code exchange, health)
  - Session: operations on behalf of a resource owner, authenticated with the
    opaque access token the token endpoint issued
  - AdminSession: the client registry API, authenticated with HTTP basic
    credentials

Authorization code flow:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Send the user agent here; the server answers with a consent challenge
	// or redirects straight back when an approval already covers the scope.
	u := client.BuildAuthorizeURL("web", "https://app.example.com/cb", state, []string{"read"})

	// On the callback:
	code, gotState, err := authsdk.ParseAuthorizationCallback(callbackURL)

	// Trade the code. The redirect URI must equal the one the code was bound to.
	tok, err := client.ExchangeAuthorizationCode(ctx, "web", secret, code, "https://app.example.com/cb")

	session := client.NewSession(tok)
	approvals, err := session.ListApprovals(ctx)

Access tokens are not refreshable. Once a Session's token has expired every
call fails with ErrSessionExpired and the flow has to start again.

# Error Handling

Server errors are returned as *OAuth2Error carrying the RFC 6749 error code:

	_, err := client.ExchangeAuthorizationCode(ctx, ...)
	var oerr *authsdk.OAuth2Error
	if errors.As(err, &oerr) && oerr.Code == authsdk.ErrorCodeInvalidGrant {
		// the code was already used, expired, or never existed
	}
*/
package authsdk
