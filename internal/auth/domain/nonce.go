package domain

// AuthorizeNonce binds an in-flight authorize request to a one-time random
// value. It is consumed by the consent decision that completes the request.
type AuthorizeNonce struct {
	Nonce           string
	ResourceOwnerID string
	ClientID        string
	ResponseType    string
	RedirectURI     Optional[string]
	Scope           string
	State           string
}
