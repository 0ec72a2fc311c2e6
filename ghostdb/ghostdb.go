// Package ghostdb implements the gateway to the Ghost-owned relational store.
// The bridge is a co-tenant of this database: Ghost defines the schema, the
// gateway only reads and inserts rows in the exact shapes Ghost expects.
package ghostdb

import (
	"context"

	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
)

const name = "github.com/ghostbridge/ghostbridge/ghostdb"

// Store executes parameterized statements against the shared Ghost database.
// Caller-supplied values only ever travel as query arguments.
type Store struct {
	conn Queryer
}

// NewStore creates a new Store over an open connection pool.
func NewStore(conn Queryer) *Store {
	return &Store{
		conn: conn,
	}
}

// Ping verifies connectivity to the shared database.
func (s *Store) Ping(ctx context.Context) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.Ping()")
	defer span.End()

	var one int
	if err := s.conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return wrapDataAccess(err, "pgx.Row.Scan()")
	}

	return nil
}

// DataAccessError is the failure kind for all persistence errors, carrying
// the underlying driver error code when one is available.
type DataAccessError struct {
	// Code is the PostgreSQL error code, empty for connection-level failures.
	Code string

	err error
}

func (e *DataAccessError) Error() string {
	if e.Code == "" {
		return "data access error: " + e.err.Error()
	}

	return "data access error (" + e.Code + "): " + e.err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.err
}

// wrapDataAccess wraps err as a DataAccessError with the call-site message.
func wrapDataAccess(err error, msg string) error {
	dae := &DataAccessError{err: err}

	pgErr := &pgconn.PgError{}
	if errors.As(err, &pgErr) {
		dae.Code = pgErr.Code
	}

	return errors.Wrap(dae, msg)
}
