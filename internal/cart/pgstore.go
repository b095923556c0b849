package cart

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists a session's cart as a jsonb payload in the carts table,
// one row per session id.
type PGStore struct {
	db        *pgxpool.Pool
	sessionID string
}

func NewPGStore(db *pgxpool.Pool, sessionID string) *PGStore {
	return &PGStore{db: db, sessionID: sessionID}
}

func (s *PGStore) Load() (Cart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var payload []byte
	err := s.db.QueryRow(ctx, `
		SELECT payload FROM carts WHERE session_id=$1
	`, s.sessionID).Scan(&payload)
	if err != nil {
		// no row or malformed row both mean a fresh cart
		return Cart{}, nil
	}
	return Decode(payload), nil
}

func (s *PGStore) Save(c Cart) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		INSERT INTO carts (session_id, payload, updated_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (session_id) DO UPDATE SET payload=$2, updated_at=NOW()
	`, s.sessionID, Encode(c))
	return err
}

func (s *PGStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM carts WHERE session_id=$1`, s.sessionID)
	return err
}
