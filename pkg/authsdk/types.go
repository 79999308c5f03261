package authsdk

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse represents a standard OAuth2 error response per RFC 6749.
// Client code should use the OAuth2Error type from errors.go instead.
type ErrorResponse struct {
	// Error is the OAuth2 error code (e.g., "invalid_request", "invalid_grant")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse is the body of a successful POST /v1/oauth2/token.
type TokenResponse struct {
	// AccessToken is an opaque bearer token
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int64 `json:"expires_in"`

	// Scope is the space-delimited scope the resource owner approved
	Scope string `json:"scope,omitempty"`
}

// IntrospectionResponse is the RFC 7662 body of POST /v1/oauth2/introspect.
// An inactive token carries only Active=false.
type IntrospectionResponse struct {
	Active bool `json:"active"`

	Scope     string `json:"scope,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	Exp       int64  `json:"exp,omitempty"`
	Iat       int64  `json:"iat,omitempty"`
	Sub       string `json:"sub,omitempty"`
}

// ============================================================================
// Authorize Types
// ============================================================================

// ConsentChallenge is returned by GET /v1/oauth2/authorize when the resource
// owner has not yet approved the requested scope for the client. The user
// agent answers it with a POST carrying the nonce and a decision.
type ConsentChallenge struct {
	Nonce             string `json:"authorize_nonce"`
	ClientID          string `json:"client_id"`
	ClientName        string `json:"client_name"`
	ClientDescription string `json:"client_description,omitempty"`
	Scope             string `json:"scope"`
}

// ============================================================================
// Approval Types
// ============================================================================

// ApprovalInfo is one client the resource owner has approved.
type ApprovalInfo struct {
	ClientID    string `json:"client_id"`
	Scope       string `json:"scope"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RedirectURI string `json:"redirect_uri"`
}

// ListApprovalsResponse is the body of GET /v1/approvals.
type ListApprovalsResponse struct {
	Approvals []ApprovalInfo `json:"approvals"`
}

// ============================================================================
// Client Types
// ============================================================================

// ClientRequest creates or replaces an OAuth2 client registration.
type ClientRequest struct {
	// ID is optional on create; a ULID is assigned when empty.
	ID string `json:"id,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RedirectURI string `json:"redirect_uri"`

	// Type is one of web_application, user_agent_based_application or
	// native_application. Only web applications are confidential and
	// receive a secret.
	Type string `json:"type"`

	// RotateSecret issues a new secret on update. Ignored on create.
	RotateSecret bool `json:"rotate_secret,omitempty"`
}

// ClientInfo represents a registered OAuth2 client.
type ClientInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RedirectURI string `json:"redirect_uri"`
	Type        string `json:"type"`

	// Confidential indicates whether this client authenticates with a secret
	Confidential bool `json:"confidential"`

	// ClientSecret is the plaintext secret, only present in the response that
	// created or rotated it.
	ClientSecret string `json:"client_secret,omitempty"`
}

// ListClientsResponse contains a list of OAuth2 clients.
type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
