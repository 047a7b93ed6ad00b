package server

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPgErrorHelpers(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if pgErrorCode(plain) != "" || pgErrorDetail(plain) != "" {
		t.Fatal("expected empty code/detail for non-pg error")
	}

	pgErr := fmt.Errorf("list bodies: %w", &pgconn.PgError{Code: " 42P01 ", Message: "relation \"bodies\" does not exist", Detail: " missing "})
	if got := pgErrorCode(pgErr); got != "42P01" {
		t.Fatalf("code=%q", got)
	}
	if got := pgErrorDetail(pgErr); got != "missing" {
		t.Fatalf("detail=%q", got)
	}
}

func TestDBErrorFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	logger.Error("Failed to fetch bodies", dbErrorFields(&pgconn.PgError{Code: "08006", Message: "connection failure", Detail: "server closed"})...)
	logger.Error("Failed to fetch bodies", dbErrorFields(errors.New("plain"))...)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d", len(entries))
	}
	pg := entries[0].ContextMap()
	if pg["code"] != "08006" || pg["detail"] != "server closed" || pg["stack"] == "" {
		t.Fatalf("fields=%v", pg)
	}
	plain := entries[1].ContextMap()
	if plain["message"] != "plain" {
		t.Fatalf("fields=%v", plain)
	}
	if _, ok := plain["code"]; ok {
		t.Fatalf("unexpected code in %v", plain)
	}
}
