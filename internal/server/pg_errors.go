package server

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func pgErrorCode(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok && pgErr != nil {
		return strings.TrimSpace(pgErr.Code)
	}
	return ""
}

func pgErrorDetail(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok && pgErr != nil {
		return strings.TrimSpace(pgErr.Detail)
	}
	return ""
}

// dbErrorFields describes a store failure for the error log.
func dbErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.String("message", err.Error())}
	if code := pgErrorCode(err); code != "" {
		fields = append(fields, zap.String("code", code))
	}
	if detail := pgErrorDetail(err); detail != "" {
		fields = append(fields, zap.String("detail", detail))
	}
	return append(fields, zap.StackSkip("stack", 1))
}
