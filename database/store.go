package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

// Store is the Postgres implementation of every storage interface the
// handlers and learning services depend on.
type Store struct {
	DB *sql.DB
}

func NewStore(conn *sql.DB) *Store {
	return &Store{DB: conn}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
