package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// DirectorySQLiteStore is a file-backed store for local development.
type DirectorySQLiteStore struct {
	db *sql.DB
}

// OpenDirectorySQLiteStore opens (creating if needed) the database at path and applies
// the schema migrations.
func OpenDirectorySQLiteStore(ctx context.Context, path string) (*DirectorySQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := Migrate(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return &DirectorySQLiteStore{db: db}, nil
}

func (s *DirectorySQLiteStore) Close() error { return s.db.Close() }

func (s *DirectorySQLiteStore) ListBodies(ctx context.Context) ([]types.Body, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
SELECT id, COALESCE(name, ''), COALESCE(members, '[]'), parent, caption, "order"
FROM bodies
ORDER BY parent NULLS FIRST, id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Body{}
	for rows.Next() {
		var b types.Body
		var members string
		var parent, order sql.NullInt64
		var caption sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &members, &parent, &caption, &order); err != nil {
			return nil, err
		}
		if err := decodeJSONColumn([]byte(members), &b.Members); err != nil {
			return nil, fmt.Errorf("bodies.members (id=%d): %w", b.ID, err)
		}
		if parent.Valid {
			b.Parent = ptr(parent.Int64)
		}
		if caption.Valid {
			b.Caption = ptr(caption.String)
		}
		if order.Valid {
			b.Order = ptr(int(order.Int64))
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, tx.Commit()
}

func (s *DirectorySQLiteStore) ListOfficials(ctx context.Context) ([]types.Official, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
SELECT id, name_en, COALESCE(name_cn, ''), age, generation, COALESCE(home_province, ''),
       COALESCE(positions, '[]'), COALESCE(degrees, '[]')
FROM officials
ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Official{}
	for rows.Next() {
		var o types.Official
		var age sql.NullInt64
		var generation sql.NullFloat64
		var positions, degrees string
		if err := rows.Scan(&o.ID, &o.NameEN, &o.NameCN, &age, &generation, &o.HomeProvince, &positions, &degrees); err != nil {
			return nil, err
		}
		if age.Valid {
			o.Age = ptr(int(age.Int64))
		}
		if generation.Valid {
			o.Generation = ptr(generation.Float64)
		}
		if err := decodeJSONColumn([]byte(positions), &o.Positions); err != nil {
			return nil, fmt.Errorf("officials.positions (id=%d): %w", o.ID, err)
		}
		if err := decodeJSONColumn([]byte(degrees), &o.Degrees); err != nil {
			return nil, fmt.Errorf("officials.degrees (id=%d): %w", o.ID, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, tx.Commit()
}

func (s *DirectorySQLiteStore) ListLeadershipRows(ctx context.Context) (types.LeadershipRows, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.LeadershipRows{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var out types.LeadershipRows
	if err := sqliteCollect(ctx, tx, `SELECT DISTINCT branch FROM "groups" ORDER BY branch`, func(rows *sql.Rows) error {
		var branch string
		if err := rows.Scan(&branch); err != nil {
			return err
		}
		out.Branches = append(out.Branches, branch)
		return nil
	}); err != nil {
		return types.LeadershipRows{}, err
	}
	if err := sqliteCollect(ctx, tx, `SELECT DISTINCT branch, body FROM "groups" ORDER BY branch, body`, func(rows *sql.Rows) error {
		var bb types.BranchBody
		if err := rows.Scan(&bb.Branch, &bb.Body); err != nil {
			return err
		}
		out.Bodies = append(out.Bodies, bb)
		return nil
	}); err != nil {
		return types.LeadershipRows{}, err
	}
	if err := sqliteCollect(ctx, tx, `SELECT DISTINCT branch, body, group_name FROM "groups" ORDER BY branch, body, group_name`, func(rows *sql.Rows) error {
		var g types.BranchBodyGroup
		if err := rows.Scan(&g.Branch, &g.Body, &g.Group); err != nil {
			return err
		}
		out.Groups = append(out.Groups, g)
		return nil
	}); err != nil {
		return types.LeadershipRows{}, err
	}
	if err := sqliteCollect(ctx, tx, `
SELECT
  p.name_en,
  COALESCE(p.name_cn, ''),
  COALESCE(p.generation, ''),
  COALESCE(p.hometown, ''),
  g.branch,
  g.body,
  g.group_name,
  COALESCE(pos.position, ''),
  COALESCE(e.degree, '')
FROM people p
LEFT JOIN "groups" g ON p.name_en = g.name_en
LEFT JOIN positions pos ON p.name_en = pos.name_en
LEFT JOIN education e ON p.name_en = e.name_en
ORDER BY g.branch NULLS LAST, g.body NULLS LAST, g.group_name NULLS LAST, p.name_en,
         pos.position NULLS LAST, e.degree NULLS LAST
`, func(rows *sql.Rows) error {
		var r types.LeaderRow
		var branch, body, group sql.NullString
		if err := rows.Scan(&r.NameEN, &r.NameCN, &r.Generation, &r.Hometown, &branch, &body, &group, &r.Position, &r.Degree); err != nil {
			return err
		}
		if branch.Valid {
			r.Branch = ptr(branch.String)
		}
		if body.Valid {
			r.Body = ptr(body.String)
		}
		if group.Valid {
			r.Group = ptr(group.String)
		}
		out.Leaders = append(out.Leaders, r)
		return nil
	}); err != nil {
		return types.LeadershipRows{}, err
	}

	return out, tx.Commit()
}

func sqliteCollect(ctx context.Context, tx *sql.Tx, query string, scan func(*sql.Rows) error) error {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Seed inserts data, skipping rows that already exist.
func (s *DirectorySQLiteStore) Seed(ctx context.Context, data Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, o := range data.Officials {
		positions, err := json.Marshal(o.Positions)
		if err != nil {
			return err
		}
		degrees, err := json.Marshal(o.Degrees)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO officials (id, name_en, name_cn, age, generation, home_province, positions, degrees)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, o.ID, o.NameEN, nullString(o.NameCN), o.Age, o.Generation, nullString(o.HomeProvince), string(positions), string(degrees)); err != nil {
			return err
		}
	}
	for _, b := range bodiesParentFirst(data.Bodies) {
		members, err := json.Marshal(b.Members)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO bodies (id, name, members, parent, caption, "order")
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING
`, b.ID, b.Name, string(members), b.Parent, b.Caption, b.Order); err != nil {
			return err
		}
	}
	for _, p := range data.People {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO people (name_en, name_cn, age, generation, hometown)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (name_en) DO NOTHING
`, p.NameEN, nullString(p.NameCN), p.Age, nullString(p.Generation), nullString(p.Hometown)); err != nil {
			return err
		}
	}
	for _, g := range data.Groups {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO "groups" (name_en, branch, body, group_name) VALUES (?, ?, ?, ?)
ON CONFLICT DO NOTHING
`, g.NameEN, g.Branch, g.Body, g.Group); err != nil {
			return err
		}
	}
	for _, p := range data.Positions {
		if _, err := tx.ExecContext(ctx, `INSERT INTO positions (name_en, position) VALUES (?, ?) ON CONFLICT DO NOTHING`, p.NameEN, p.Position); err != nil {
			return err
		}
	}
	for _, e := range data.Education {
		if _, err := tx.ExecContext(ctx, `INSERT INTO education (name_en, degree) VALUES (?, ?) ON CONFLICT DO NOTHING`, e.NameEN, e.Degree); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// bodiesParentFirst orders bodies so that every parent precedes its children. Bodies whose
// parent is missing, or that sit on a cycle, come last in input order.
func bodiesParentFirst(bodies []types.Body) []types.Body {
	children := make(map[int64][]types.Body)
	var queue []types.Body
	for _, b := range bodies {
		if b.Parent == nil {
			queue = append(queue, b)
			continue
		}
		children[*b.Parent] = append(children[*b.Parent], b)
	}

	out := make([]types.Body, 0, len(bodies))
	placed := make(map[int64]bool, len(bodies))
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if placed[b.ID] {
			continue
		}
		placed[b.ID] = true
		out = append(out, b)
		queue = append(queue, children[b.ID]...)
	}
	for _, b := range bodies {
		if !placed[b.ID] {
			out = append(out, b)
		}
	}
	return out
}
