package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/infrastructure/persistence"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fatalf("usage: dbtool <migrate|seed|smoke> [--url postgres://...]")
	}

	switch os.Args[1] {
	case "migrate":
		migrate(os.Args[2:])
	case "seed":
		seed(os.Args[2:])
	case "smoke":
		smoke(os.Args[2:])
	default:
		fatalf("unknown subcommand: %s", os.Args[1])
	}
}

// parseURL parses the shared --url flag, falling back to DATABASE_URL.
func parseURL(name string, args []string, stderr io.Writer) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var url string
	fs.StringVar(&url, "url", os.Getenv("DATABASE_URL"), "postgres connection string (default $DATABASE_URL)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if url == "" {
		return "", errors.New("missing --url")
	}
	return url, nil
}

func migrate(args []string) {
	url, err := parseURL("migrate", args, os.Stderr)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", url)
	if err != nil {
		fatal(err)
	}
	defer db.Close()

	results, err := persistence.Migrate(ctx, db, goose.DialectPostgres)
	if err != nil {
		fatal(err)
	}
	for _, r := range results {
		fmt.Printf("[migrate] applied %s (%s)\n", r.Source.Path, r.Duration)
	}
	fmt.Printf("[migrate] OK (%d applied)\n", len(results))
}

func seed(args []string) {
	url, err := parseURL("seed", args, os.Stderr)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		fatal(err)
	}
	defer pool.Close()

	if err := persistence.SeedPG(ctx, pool, persistence.DemoDataset()); err != nil {
		fatal(err)
	}
	fmt.Println("[seed] OK")
}

func smoke(args []string) {
	url, err := parseURL("smoke", args, os.Stderr)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		fatal(err)
	}
	defer pool.Close()

	runID := uuid.NewString()
	store := persistence.NewDirectoryPGStore(pool)

	bodies, err := store.ListBodies(ctx)
	if err != nil {
		fatal(err)
	}
	officials, err := store.ListOfficials(ctx)
	if err != nil {
		fatal(err)
	}
	rows, err := store.ListLeadershipRows(ctx)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("[smoke %s] bodies=%d officials=%d branches=%d groups=%d leader_rows=%d\n",
		runID, len(bodies), len(officials), len(rows.Branches), len(rows.Groups), len(rows.Leaders))
	fmt.Printf("[smoke %s] OK\n", runID)
}

func pgErrorMessage(err error) (string, bool) {
	pgErr, ok := errors.AsType[*pgconn.PgError](err)
	if !ok {
		return "", false
	}
	return pgErr.Message, true
}

func fatal(err error) {
	if err == nil {
		os.Exit(1)
	}
	if msg, ok := pgErrorMessage(err); ok {
		fatalf("%v (postgres: %s)", err, msg)
	}
	fatalf("%v", err)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
