// Package store defines the persistence contract of the VOOT provider.
package store

import (
	"context"

	"github.com/aussiebroadwan/grantstore/internal/voot/domain"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Storage

// Storage answers group membership queries. Both listings report the total
// size of the collection alongside the requested window.
type Storage interface {
	Ping(ctx context.Context) error

	// IsMemberOf lists the groups userID belongs to, ordered by group id.
	IsMemberOf(ctx context.Context, userID string, page domain.PageRequest) (domain.Page[domain.GroupEntry], error)

	// GetGroupMembers lists the members of groupID, ordered by role and then
	// member id. userID identifies the caller and does not filter results.
	GetGroupMembers(ctx context.Context, userID, groupID string, page domain.PageRequest) (domain.Page[domain.MemberEntry], error)

	AddGroup(ctx context.Context, g domain.Group) error
	AddMembership(ctx context.Context, m domain.Membership) error
}
