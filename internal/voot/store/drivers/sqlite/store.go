package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/voot/domain"
	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	"github.com/aussiebroadwan/grantstore/internal/voot/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

var _ store.Storage = (*Store)(nil)

type Store struct {
	db *sql.DB
	q  *gen.Queries
}

// NewStore opens a sqlite database. In-memory databases are pinned to a
// single connection so the pool shares one database.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return Open(db), nil
}

// Open wraps an existing pool; Close on the Store closes db.
func Open(db *sql.DB) *Store {
	return &Store{db: db, q: gen.New(db)}
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return mapErr("ping", s.db.PingContext(ctx))
}

func (s *Store) IsMemberOf(ctx context.Context, userID string, page domain.PageRequest) (domain.Page[domain.GroupEntry], error) {
	total, err := s.q.CountMemberships(ctx, userID)
	if err != nil {
		return domain.Page[domain.GroupEntry]{}, mapErr("memberships.count", err)
	}

	rows, err := s.q.ListMemberships(ctx, gen.ListMembershipsParams{
		ID:     userID,
		Limit:  int64(page.Count),
		Offset: int64(page.StartIndex),
	})
	if err != nil {
		return domain.Page[domain.GroupEntry]{}, mapErr("memberships.list", err)
	}

	entries := make([]domain.GroupEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.GroupEntry{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description.String,
			Role:        row.VootMembershipRole,
		}
	}
	return domain.NewPage(page, int(total), entries), nil
}

func (s *Store) GetGroupMembers(ctx context.Context, _, groupID string, page domain.PageRequest) (domain.Page[domain.MemberEntry], error) {
	total, err := s.q.CountGroupMembers(ctx, groupID)
	if err != nil {
		return domain.Page[domain.MemberEntry]{}, mapErr("members.count", err)
	}

	rows, err := s.q.ListGroupMembers(ctx, gen.ListGroupMembersParams{
		ID:     groupID,
		Limit:  int64(page.Count),
		Offset: int64(page.StartIndex),
	})
	if err != nil {
		return domain.Page[domain.MemberEntry]{}, mapErr("members.list", err)
	}

	entries := make([]domain.MemberEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.MemberEntry{ID: row.ID, Role: row.VootMembershipRole}
	}
	return domain.NewPage(page, int(total), entries), nil
}

func (s *Store) AddGroup(ctx context.Context, g domain.Group) error {
	return mapErr("groups.add", s.q.AddGroup(ctx, gen.AddGroupParams{
		ID:          g.ID,
		Title:       g.Title,
		Description: sql.NullString{String: g.Description, Valid: g.Description != ""},
	}))
}

func (s *Store) AddMembership(ctx context.Context, m domain.Membership) error {
	return mapErr("memberships.add", s.q.AddMembership(ctx, gen.AddMembershipParams{
		ID:      m.UserID,
		GroupID: m.GroupID,
		Role:    int64(m.Role),
	}))
}
