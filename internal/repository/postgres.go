package repository

import (
	"encoding/json"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func jsonbParam(raw json.RawMessage) pgtype.JSONB {
	if raw == nil {
		return pgtype.JSONB{Status: pgtype.Null}
	}
	return pgtype.JSONB{Bytes: raw, Status: pgtype.Present}
}

func jsonbValue(v pgtype.JSONB) json.RawMessage {
	if v.Status != pgtype.Present {
		return nil
	}
	// row buffers are reused by pgx once the next row is read
	return append(json.RawMessage(nil), v.Bytes...)
}
