package persistence

import (
	"context"
	"encoding/json"
)

// SeedPG inserts data in one transaction, skipping rows that already exist.
func SeedPG(ctx context.Context, pool pgBeginner, data Dataset) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	for _, o := range data.Officials {
		positions, err := json.Marshal(o.Positions)
		if err != nil {
			return err
		}
		degrees, err := json.Marshal(o.Degrees)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO officials (id, name_en, name_cn, age, generation, home_province, positions, degrees)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb)
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
		if _, err := tx.Exec(ctx, `
INSERT INTO bodies (id, name, members, parent, caption, "order")
VALUES ($1, $2, $3::jsonb, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
`, b.ID, b.Name, string(members), b.Parent, b.Caption, b.Order); err != nil {
			return err
		}
	}

	for _, p := range data.People {
		if _, err := tx.Exec(ctx, `
INSERT INTO people (name_en, name_cn, age, generation, hometown)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name_en) DO NOTHING
`, p.NameEN, nullString(p.NameCN), p.Age, nullString(p.Generation), nullString(p.Hometown)); err != nil {
			return err
		}
	}
	for _, g := range data.Groups {
		if _, err := tx.Exec(ctx, `
INSERT INTO groups (name_en, branch, body, group_name) VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING
`, g.NameEN, g.Branch, g.Body, g.Group); err != nil {
			return err
		}
	}
	for _, p := range data.Positions {
		if _, err := tx.Exec(ctx, `INSERT INTO positions (name_en, position) VALUES ($1, $2) ON CONFLICT DO NOTHING`, p.NameEN, p.Position); err != nil {
			return err
		}
	}
	for _, e := range data.Education {
		if _, err := tx.Exec(ctx, `INSERT INTO education (name_en, degree) VALUES ($1, $2) ON CONFLICT DO NOTHING`, e.NameEN, e.Degree); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
