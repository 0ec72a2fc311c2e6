package ghostdb

import (
	"context"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
)

// SessionSecret returns the HMAC secret Ghost signs its admin session cookies
// with. An absent row means Ghost was never fully provisioned, which is fatal
// for the staff flow. The value must never be logged.
func (s *Store) SessionSecret(ctx context.Context) (string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.SessionSecret()")
	defer span.End()

	query := `
		SELECT value FROM settings
		WHERE key = 'session_secret'
	`

	var secret string
	if err := s.conn.QueryRow(ctx, query).Scan(&secret); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", httpio.NewNotFoundMessage("session_secret setting not found")
		}

		return "", wrapDataAccess(err, "pgx.Row.Scan()")
	}

	return secret, nil
}
