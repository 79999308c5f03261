package service

import (
	"errors"
	"fmt"
)

// OAuth2 error codes surfaced by the services. Handlers map them onto
// RFC 6749 error responses by name.
var (
	ErrInvalidClient           = errors.New("invalid_client")
	ErrInvalidRequest          = errors.New("invalid_request")
	ErrInvalidGrant            = errors.New("invalid_grant")
	ErrInvalidScope            = errors.New("invalid_scope")
	ErrAccessDenied            = errors.New("access_denied")
	ErrUnsupportedResponseType = errors.New("unsupported_response_type")
	ErrUnsupportedGrantType    = errors.New("unsupported_grant_type")
)

var (
	// ErrCodeNotRedeemable covers expired, already redeemed and unknown
	// codes alike. It is an invalid_grant to OAuth2 clients.
	ErrCodeNotRedeemable = fmt.Errorf("%w: authorization code not redeemable", ErrInvalidGrant)

	ErrClientNotFound   = errors.New("client not found")
	ErrClientExists     = errors.New("client already exists")
	ErrApprovalNotFound = errors.New("approval not found")
	ErrApprovalExists   = errors.New("approval already exists")
)
