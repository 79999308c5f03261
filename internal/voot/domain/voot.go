// Package domain holds the group membership model served by the VOOT
// provider.
package domain

import (
	"strconv"
	"strings"
)

// Role ids seeded by the initial migration.
const (
	RoleMember  = 10
	RoleManager = 20
	RoleAdmin   = 50
)

type Group struct {
	ID          string
	Title       string
	Description string
}

// Membership places a user in a group with one of the seeded roles.
type Membership struct {
	UserID  string
	GroupID string
	Role    int
}

// GroupEntry is one group a user belongs to.
type GroupEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Role        string `json:"voot_membership_role"`
}

// MemberEntry is one member of a group.
type MemberEntry struct {
	ID   string `json:"id"`
	Role string `json:"voot_membership_role"`
}

// Page is the VOOT collection envelope. ItemsPerPage is the number of
// entries actually returned, not the requested count.
type Page[T any] struct {
	StartIndex   int `json:"startIndex"`
	TotalResults int `json:"totalResults"`
	ItemsPerPage int `json:"itemsPerPage"`
	Entry        []T `json:"entry"`
}

// NewPage builds a Page around entries.
func NewPage[T any](req PageRequest, total int, entries []T) Page[T] {
	if entries == nil {
		entries = []T{}
	}
	return Page[T]{
		StartIndex:   req.StartIndex,
		TotalResults: total,
		ItemsPerPage: len(entries),
		Entry:        entries,
	}
}

// PageRequest selects a window of a collection. A negative Count means
// everything from StartIndex on.
type PageRequest struct {
	StartIndex int
	Count      int
}

// AllFrom returns a request for every entry starting at startIndex.
func AllFrom(startIndex int) PageRequest {
	return PageRequest{StartIndex: startIndex, Count: -1}
}

// ParsePageRequest reads the startIndex and count query parameters. A
// missing or non-integer startIndex means 0 and negative values are clamped
// to 0. A missing or non-integer count means all remaining entries.
func ParsePageRequest(startIndex, count string) PageRequest {
	req := AllFrom(0)

	if n, err := strconv.Atoi(strings.TrimSpace(startIndex)); err == nil && n > 0 {
		req.StartIndex = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(count)); err == nil {
		req.Count = n
	}
	return req
}
