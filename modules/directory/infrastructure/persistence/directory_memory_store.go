package persistence

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/ports"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

// DirectoryMemoryStore serves a fixed Dataset with the same ordering the SQL stores use.
type DirectoryMemoryStore struct {
	data Dataset
}

func NewDirectoryMemoryStore(data Dataset) ports.DirectoryStore {
	return &DirectoryMemoryStore{data: data}
}

func (s *DirectoryMemoryStore) ListBodies(context.Context) ([]types.Body, error) {
	out := append([]types.Body(nil), s.data.Bodies...)
	slices.SortStableFunc(out, func(a, b types.Body) int {
		switch {
		case a.Parent == nil && b.Parent != nil:
			return -1
		case a.Parent != nil && b.Parent == nil:
			return 1
		case a.Parent != nil && b.Parent != nil && *a.Parent != *b.Parent:
			return cmp.Compare(*a.Parent, *b.Parent)
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *DirectoryMemoryStore) ListOfficials(context.Context) ([]types.Official, error) {
	out := append([]types.Official(nil), s.data.Officials...)
	slices.SortStableFunc(out, func(a, b types.Official) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *DirectoryMemoryStore) ListLeadershipRows(context.Context) (types.LeadershipRows, error) {
	var rows types.LeadershipRows

	branchSeen := make(map[string]bool)
	bodySeen := make(map[types.BranchBody]bool)
	groupSeen := make(map[types.BranchBodyGroup]bool)
	for _, g := range s.data.Groups {
		if !branchSeen[g.Branch] {
			branchSeen[g.Branch] = true
			rows.Branches = append(rows.Branches, g.Branch)
		}
		bb := types.BranchBody{Branch: g.Branch, Body: g.Body}
		if !bodySeen[bb] {
			bodySeen[bb] = true
			rows.Bodies = append(rows.Bodies, bb)
		}
		bbg := types.BranchBodyGroup{Branch: g.Branch, Body: g.Body, Group: g.Group}
		if !groupSeen[bbg] {
			groupSeen[bbg] = true
			rows.Groups = append(rows.Groups, bbg)
		}
	}
	slices.Sort(rows.Branches)
	slices.SortFunc(rows.Bodies, func(a, b types.BranchBody) int {
		return cmp.Or(strings.Compare(a.Branch, b.Branch), strings.Compare(a.Body, b.Body))
	})
	slices.SortFunc(rows.Groups, func(a, b types.BranchBodyGroup) int {
		return cmp.Or(strings.Compare(a.Branch, b.Branch), strings.Compare(a.Body, b.Body), strings.Compare(a.Group, b.Group))
	})

	for _, p := range s.data.People {
		memberships := s.groupsOf(p.NameEN)
		positions := s.positionsOf(p.NameEN)
		degrees := s.degreesOf(p.NameEN)
		for _, g := range memberships {
			for _, pos := range positions {
				for _, deg := range degrees {
					row := types.LeaderRow{
						NameEN:     p.NameEN,
						NameCN:     p.NameCN,
						Generation: p.Generation,
						Hometown:   p.Hometown,
						Position:   pos,
						Degree:     deg,
					}
					if g != nil {
						row.Branch = &g.Branch
						row.Body = &g.Body
						row.Group = &g.Group
					}
					rows.Leaders = append(rows.Leaders, row)
				}
			}
		}
	}
	slices.SortStableFunc(rows.Leaders, func(a, b types.LeaderRow) int {
		return cmp.Or(
			compareNullsLast(a.Branch, b.Branch),
			compareNullsLast(a.Body, b.Body),
			compareNullsLast(a.Group, b.Group),
			strings.Compare(a.NameEN, b.NameEN),
			strings.Compare(a.Position, b.Position),
			strings.Compare(a.Degree, b.Degree),
		)
	})
	return rows, nil
}

// groupsOf returns the memberships of name, or a single nil entry (the LEFT JOIN miss).
func (s *DirectoryMemoryStore) groupsOf(name string) []*GroupMembership {
	var out []*GroupMembership
	for i := range s.data.Groups {
		if s.data.Groups[i].NameEN == name {
			g := s.data.Groups[i]
			out = append(out, &g)
		}
	}
	if len(out) == 0 {
		return []*GroupMembership{nil}
	}
	return out
}

func (s *DirectoryMemoryStore) positionsOf(name string) []string {
	var out []string
	for _, p := range s.data.Positions {
		if p.NameEN == name {
			out = append(out, p.Position)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func (s *DirectoryMemoryStore) degreesOf(name string) []string {
	var out []string
	for _, d := range s.data.Education {
		if d.NameEN == name {
			out = append(out, d.Degree)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func compareNullsLast(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return strings.Compare(*a, *b)
}
