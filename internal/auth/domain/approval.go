package domain

// Approval is the scope a resource owner consented to for a client. There is
// at most one per (ClientID, ResourceOwnerID).
type Approval struct {
	ClientID        string
	ResourceOwnerID string
	Scope           string // space-delimited
}

// ApprovalSummary is an approval joined with the client it was granted to.
type ApprovalSummary struct {
	ClientID    string
	Scope       string
	Name        string
	Description string
	RedirectURI string
}
