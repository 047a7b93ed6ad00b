package persistence

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type beginnerFunc func(ctx context.Context) (pgx.Tx, error)

func (f beginnerFunc) Begin(ctx context.Context) (pgx.Tx, error) { return f(ctx) }

type stubTx struct {
	queryErr   error
	queryErrAt int
	queryN     int
	querySQLs  []string
	execErr    error
	execN      int
	commitErr  error
	rolledBack bool

	results []*scriptedRows
}

func (t *stubTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(context.Context) error          { return t.commitErr }
func (t *stubTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}
func (t *stubTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Conn() *pgx.Conn { return nil }

func (t *stubTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	t.execN++
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	t.queryN++
	t.querySQLs = append(t.querySQLs, sql)
	if t.queryErr != nil {
		at := t.queryErrAt
		if at == 0 {
			at = 1
		}
		if t.queryN == at {
			return nil, t.queryErr
		}
	}
	if t.queryN <= len(t.results) {
		return t.results[t.queryN-1], nil
	}
	return &scriptedRows{}, nil
}

func (t *stubTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return &scriptedRows{err: errors.New("unexpected QueryRow")}
}

// scriptedRows yields vals row by row, assigning each value to the matching Scan target.
type scriptedRows struct {
	vals    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *scriptedRows) Close()                        { r.closed = true }
func (r *scriptedRows) Err() error                    { return r.err }
func (r *scriptedRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *scriptedRows) FieldDescriptions() []pgconn.FieldDescription {
	return nil
}
func (r *scriptedRows) Next() bool {
	if r.idx >= len(r.vals) {
		return false
	}
	r.idx++
	return true
}
func (r *scriptedRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.idx == 0 || r.idx > len(r.vals) {
		return errors.New("scan without row")
	}
	row := r.vals[r.idx-1]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: %d values for %d targets", len(row), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if row[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(row[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: %s not assignable to %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}
func (r *scriptedRows) Values() ([]any, error) { return nil, nil }
func (r *scriptedRows) RawValues() [][]byte    { return nil }
func (r *scriptedRows) Conn() *pgx.Conn        { return nil }
