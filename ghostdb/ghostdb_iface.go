package ghostdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of the pgx pool the gateway needs.
type Queryer interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

// DB defines the full gateway surface for consumers that want the gateway as
// a single dependency.
type DB interface {
	// ActiveStaffUser returns the staff user with the given email if its
	// status permits login.
	ActiveStaffUser(ctx context.Context, email string) (*StaffUser, error)

	// SessionSecret returns Ghost's session signing secret from the settings
	// table.
	SessionSecret(ctx context.Context) (string, error)

	// InsertStaffSession inserts a forged session row.
	InsertStaffSession(ctx context.Context, session *StaffSessionRow) error

	// InsertMagicToken inserts a one-time login token row.
	InsertMagicToken(ctx context.Context, token *MagicTokenRow) error

	// DeleteExpiredSessions removes session rows whose embedded cookie expiry
	// has passed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Ping verifies connectivity to the shared database.
	Ping(ctx context.Context) error
}
