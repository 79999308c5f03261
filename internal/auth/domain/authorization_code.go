package domain

import "time"

// AuthorizationCodeTTL is how long after issue an authorization code can be redeemed.
const AuthorizationCodeTTL = 600 * time.Second

// AuthorizationCode is a one-time code bound to an access token minted at the
// same time. RedirectURI is None when the authorize request carried none.
type AuthorizationCode struct {
	Code        string
	ClientID    string
	RedirectURI Optional[string]
	IssueTime   time.Time // second precision
	AccessToken string
}

// Expired reports whether now is past the validity window. Comparison is in
// whole seconds, matching the stored precision: a code is still valid at
// exactly IssueTime+600s.
func (c AuthorizationCode) Expired(now time.Time) bool {
	return now.Unix() > c.IssueTime.Unix()+int64(AuthorizationCodeTTL/time.Second)
}
