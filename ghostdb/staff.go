package ghostdb

import (
	"context"

	"github.com/cccteam/httpio"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/errors/v5"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
)

// ActiveStaffUser returns the staff user with the given email if its status
// permits login. Matching is exact and case-sensitive, mirroring Ghost's own
// lookup semantics. Every status except a fully deactivated account is
// loginable.
func (s *Store) ActiveStaffUser(ctx context.Context, email string) (*StaffUser, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.ActiveStaffUser()")
	defer span.End()

	query := `
		SELECT id, name, email, status
		FROM users
		WHERE email = $1
			AND status IN ('active', 'warn-1', 'warn-2', 'warn-3', 'warn-4', 'locked')
	`

	u := &StaffUser{}
	if err := pgxscan.Get(ctx, s.conn, u, query, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpio.NewNotFoundMessage("no active staff user for that email")
		}

		return nil, wrapDataAccess(err, "pgxscan.Get()")
	}

	return u, nil
}
