package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/ports"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

type pgBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type DirectoryPGStore struct {
	pool pgBeginner
}

func NewDirectoryPGStore(pool pgBeginner) ports.DirectoryStore {
	return &DirectoryPGStore{pool: pool}
}

const listBodiesSQL = `
SELECT id, COALESCE(name, ''), COALESCE(members, '[]'::jsonb), parent, caption, "order"
FROM bodies
ORDER BY parent NULLS FIRST, id
`

const listOfficialsSQL = `
SELECT
  id,
  name_en,
  COALESCE(name_cn, ''),
  age,
  generation::float8,
  COALESCE(home_province, ''),
  COALESCE(positions, '[]'::jsonb),
  COALESCE(degrees, '[]'::jsonb)
FROM officials
ORDER BY id
`

const listBranchesSQL = `
SELECT DISTINCT branch
FROM groups
ORDER BY branch
`

const listBranchBodiesSQL = `
SELECT DISTINCT branch, body
FROM groups
ORDER BY branch, body
`

const listBranchBodyGroupsSQL = `
SELECT DISTINCT branch, body, group_name
FROM groups
ORDER BY branch, body, group_name
`

const listLeaderRowsSQL = `
SELECT
  p.name_en,
  COALESCE(p.name_cn, ''),
  COALESCE(p.generation::text, ''),
  COALESCE(p.hometown, ''),
  g.branch,
  g.body,
  g.group_name,
  COALESCE(pos.position, ''),
  COALESCE(e.degree, '')
FROM people p
LEFT JOIN groups g ON p.name_en = g.name_en
LEFT JOIN positions pos ON p.name_en = pos.name_en
LEFT JOIN education e ON p.name_en = e.name_en
ORDER BY g.branch, g.body, g.group_name, p.name_en, pos.position, e.degree
`

func (s *DirectoryPGStore) ListBodies(ctx context.Context) ([]types.Body, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	rows, err := tx.Query(ctx, listBodiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Body{}
	for rows.Next() {
		var b types.Body
		var members []byte
		if err := rows.Scan(&b.ID, &b.Name, &members, &b.Parent, &b.Caption, &b.Order); err != nil {
			return nil, err
		}
		if err := decodeJSONColumn(members, &b.Members); err != nil {
			return nil, fmt.Errorf("bodies.members (id=%d): %w", b.ID, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DirectoryPGStore) ListOfficials(ctx context.Context) ([]types.Official, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	rows, err := tx.Query(ctx, listOfficialsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Official{}
	for rows.Next() {
		var o types.Official
		var positions, degrees []byte
		if err := rows.Scan(&o.ID, &o.NameEN, &o.NameCN, &o.Age, &o.Generation, &o.HomeProvince, &positions, &degrees); err != nil {
			return nil, err
		}
		if err := decodeJSONColumn(positions, &o.Positions); err != nil {
			return nil, fmt.Errorf("officials.positions (id=%d): %w", o.ID, err)
		}
		if err := decodeJSONColumn(degrees, &o.Degrees); err != nil {
			return nil, fmt.Errorf("officials.degrees (id=%d): %w", o.ID, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLeadershipRows runs the four leadership queries on a single transaction, so a single
// pooled connection serves all of them and is returned when the transaction ends.
func (s *DirectoryPGStore) ListLeadershipRows(ctx context.Context) (types.LeadershipRows, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	var out types.LeadershipRows

	branchRows, err := tx.Query(ctx, listBranchesSQL)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	for branchRows.Next() {
		var branch string
		if err := branchRows.Scan(&branch); err != nil {
			branchRows.Close()
			return types.LeadershipRows{}, err
		}
		out.Branches = append(out.Branches, branch)
	}
	branchRows.Close()
	if err := branchRows.Err(); err != nil {
		return types.LeadershipRows{}, err
	}

	bodyRows, err := tx.Query(ctx, listBranchBodiesSQL)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	for bodyRows.Next() {
		var bb types.BranchBody
		if err := bodyRows.Scan(&bb.Branch, &bb.Body); err != nil {
			bodyRows.Close()
			return types.LeadershipRows{}, err
		}
		out.Bodies = append(out.Bodies, bb)
	}
	bodyRows.Close()
	if err := bodyRows.Err(); err != nil {
		return types.LeadershipRows{}, err
	}

	groupRows, err := tx.Query(ctx, listBranchBodyGroupsSQL)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	for groupRows.Next() {
		var g types.BranchBodyGroup
		if err := groupRows.Scan(&g.Branch, &g.Body, &g.Group); err != nil {
			groupRows.Close()
			return types.LeadershipRows{}, err
		}
		out.Groups = append(out.Groups, g)
	}
	groupRows.Close()
	if err := groupRows.Err(); err != nil {
		return types.LeadershipRows{}, err
	}

	leaderRows, err := tx.Query(ctx, listLeaderRowsSQL)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	for leaderRows.Next() {
		var r types.LeaderRow
		if err := leaderRows.Scan(&r.NameEN, &r.NameCN, &r.Generation, &r.Hometown, &r.Branch, &r.Body, &r.Group, &r.Position, &r.Degree); err != nil {
			leaderRows.Close()
			return types.LeadershipRows{}, err
		}
		out.Leaders = append(out.Leaders, r)
	}
	leaderRows.Close()
	if err := leaderRows.Err(); err != nil {
		return types.LeadershipRows{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return types.LeadershipRows{}, err
	}
	return out, nil
}

func decodeJSONColumn(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
