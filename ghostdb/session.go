package ghostdb

import (
	"context"
	"encoding/json"

	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// InsertStaffSession inserts a forged session row into Ghost's sessions
// table. Ghost's cookie middleware looks the row up by session_id when it
// unsigns the cookie, so the row must be in place before the cookie is set.
func (s *Store) InsertStaffSession(ctx context.Context, session *StaffSessionRow) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.InsertStaffSession()")
	defer span.End()

	data, err := json.Marshal(session.Data)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}

	query := `
		INSERT INTO sessions
			(id, session_id, user_id, session_data, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6)
	`

	if _, err := s.conn.Exec(ctx, query,
		session.ID, session.SessionID, session.Data.UserID, string(data), session.CreatedAt, session.UpdatedAt,
	); err != nil {
		return wrapDataAccess(err, "failed to insert into table sessions")
	}

	return nil
}

// DeleteExpiredSessions removes session rows whose embedded cookie expiry has
// passed. Ghost tolerates stale rows but never sweeps ones it did not issue.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.DeleteExpiredSessions()")
	defer span.End()

	query := `
		DELETE FROM sessions
		WHERE (session_data::json -> 'cookie' ->> 'expires')::timestamptz < now()
	`

	res, err := s.conn.Exec(ctx, query)
	if err != nil {
		return 0, wrapDataAccess(err, "failed to delete expired sessions")
	}

	return res.RowsAffected(), nil
}
