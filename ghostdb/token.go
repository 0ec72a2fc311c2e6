package ghostdb

import (
	"context"
	"encoding/json"

	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// InsertMagicToken inserts a one-time login token row into Ghost's tokens
// table. Ghost's own redemption logic consumes the row and enforces
// single use; the bridge only guarantees the token value is fresh and
// unguessable.
func (s *Store) InsertMagicToken(ctx context.Context, token *MagicTokenRow) error {
	ctx, span := otel.Tracer(name).Start(ctx, "Store.InsertMagicToken()")
	defer span.End()

	data, err := json.Marshal(token.Data)
	if err != nil {
		return errors.Wrap(err, "json.Marshal()")
	}

	query := `
		INSERT INTO tokens
			(id, token, data, created_at, updated_at, first_used_at, used_count)
		VALUES
			($1, $2, $3, $4, $5, NULL, 0)
	`

	if _, err := s.conn.Exec(ctx, query,
		token.ID, token.Token, string(data), token.CreatedAt, token.UpdatedAt,
	); err != nil {
		return wrapDataAccess(err, "failed to insert into table tokens")
	}

	return nil
}
