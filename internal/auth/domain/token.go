package domain

import "time"

// AccessToken is an issued opaque bearer token. The store returns it verbatim;
// expiry is interpreted by whoever accepts the token.
type AccessToken struct {
	Token                    string
	ClientID                 string
	ResourceOwnerID          string
	ResourceOwnerDisplayName string
	IssueTime                time.Time // second precision
	ExpiresIn                int64     // seconds
	Scope                    string    // space-delimited
}

func (t AccessToken) ExpiresAt() time.Time {
	return t.IssueTime.Add(time.Duration(t.ExpiresIn) * time.Second)
}

func (t AccessToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt())
}
