package authsdk

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrSessionExpired is returned by Session methods once the access token has
// expired. Tokens are not refreshable.
var ErrSessionExpired = errors.New("authsdk: access token expired")

// Session holds an opaque access token issued to a client on behalf of a
// resource owner.
type Session struct {
	client *SDKClient

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
	scopes      map[string]bool // Granted scopes for fast lookup
}

func newSession(client *SDKClient, accessToken, scope string, expiresIn int64) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)

	// Subtract 30 seconds buffer to stop before actual expiry
	expiresAt = expiresAt.Add(-30 * time.Second)

	return &Session{
		client:      client,
		accessToken: accessToken,
		expiresAt:   expiresAt,
		scopes:      parseScopes(scope),
	}
}

// parseScopes parses a space-delimited scope string into a map for fast lookup.
func parseScopes(scopeStr string) map[string]bool {
	parts := strings.Fields(scopeStr)
	scopes := make(map[string]bool, len(parts))
	for _, scope := range parts {
		scopes[scope] = true
	}
	return scopes
}

// validToken returns the access token or ErrSessionExpired.
func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.accessToken, nil
}

// AccessToken returns the current access token without checking expiration.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ExpiresAt reports when the session stops being usable.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// HasScope returns true if the session has the specified scope.
func (s *Session) HasScope(scope string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scopes[scope]
}

// ListApprovals returns every client the token's resource owner has approved.
func (s *Session) ListApprovals(ctx context.Context) (*ListApprovalsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/approvals", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListApprovalsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeApproval withdraws the resource owner's approval for clientID. The
// next authorization request for that client asks for consent again.
func (s *Session) RevokeApproval(ctx context.Context, clientID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/approvals/"+clientID, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
