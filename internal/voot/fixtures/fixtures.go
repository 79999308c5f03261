// Package fixtures loads group and membership seed data from YAML.
//
//	groups:
//	  - id: devs
//	    title: Developers
//	    description: Everyone who ships code
//	    members:
//	      - id: alice
//	        role: manager
//	      - id: bob
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aussiebroadwan/grantstore/internal/voot/domain"
	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	"gopkg.in/yaml.v3"
)

type File struct {
	Groups []Group `yaml:"groups"`
}

type Group struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Members     []Member `yaml:"members"`
}

// Member defaults to the member role when Role is empty.
type Member struct {
	ID   string `yaml:"id"`
	Role string `yaml:"role"`
}

var roles = map[string]int{
	"member":  domain.RoleMember,
	"manager": domain.RoleManager,
	"admin":   domain.RoleAdmin,
}

// Parse decodes and validates a fixture file. Unknown keys are rejected.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode fixtures: %w", err)
	}

	seen := make(map[string]bool, len(f.Groups))
	for i, g := range f.Groups {
		if strings.TrimSpace(g.ID) == "" {
			return File{}, fmt.Errorf("groups[%d]: id is required", i)
		}
		if seen[g.ID] {
			return File{}, fmt.Errorf("groups[%d]: duplicate group %q", i, g.ID)
		}
		seen[g.ID] = true
		if g.Title == "" {
			f.Groups[i].Title = g.ID
		}
		for j, m := range g.Members {
			if strings.TrimSpace(m.ID) == "" {
				return File{}, fmt.Errorf("groups[%d].members[%d]: id is required", i, j)
			}
			if _, err := roleID(m.Role); err != nil {
				return File{}, fmt.Errorf("groups[%d].members[%d]: %w", i, j, err)
			}
		}
	}
	return f, nil
}

func roleID(name string) (int, error) {
	if name == "" {
		return domain.RoleMember, nil
	}
	id, ok := roles[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown role %q", name)
	}
	return id, nil
}

// Stats counts what Apply wrote.
type Stats struct {
	Groups      int
	Memberships int
}

// Apply writes every group and then its memberships. It stops at the first
// failure; rows written before it stay.
func Apply(ctx context.Context, s store.Storage, f File) (Stats, error) {
	var stats Stats
	for _, g := range f.Groups {
		err := s.AddGroup(ctx, domain.Group{ID: g.ID, Title: g.Title, Description: g.Description})
		if err != nil {
			return stats, fmt.Errorf("add group %q: %w", g.ID, err)
		}
		stats.Groups++

		for _, m := range g.Members {
			role, _ := roleID(m.Role)
			err := s.AddMembership(ctx, domain.Membership{UserID: m.ID, GroupID: g.ID, Role: role})
			if err != nil {
				return stats, fmt.Errorf("add %q to %q: %w", m.ID, g.ID, err)
			}
			stats.Memberships++
		}
	}
	return stats, nil
}
