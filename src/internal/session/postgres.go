package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// PostgresStore keeps the session record in a single-row table (see
// migrations/). The key column makes the upsert deterministic.
type PostgresStore struct {
	db  *sql.DB
	key string
	log *zap.Logger
}

func NewPostgresStore(db *sql.DB, key string, logger *zap.Logger) *PostgresStore {
	if key == "" {
		key = DefaultKey
	}
	return &PostgresStore{db: db, key: key, log: logger}
}

func (s *PostgresStore) Load(ctx context.Context) (model.User, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM session_user WHERE key=$1`, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("session load: no record", zap.String("key", s.key))
		return model.User{}, false, nil
	}
	if err != nil {
		s.log.Error("session load: query failed", zap.Error(err))
		return model.User{}, false, err
	}
	var u model.User
	if err := json.Unmarshal(payload, &u); err != nil {
		s.log.Warn("session load: unparseable record, treating as absent", zap.Error(err))
		return model.User{}, false, nil
	}
	s.log.Debug("session load: success", zap.String("user", u.ID))
	return u, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_user (key, payload, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET payload=EXCLUDED.payload, updated_at=NOW()`,
		s.key, payload)
	if err != nil {
		s.log.Error("session save failed", zap.Error(err))
		return err
	}
	s.log.Debug("session saved", zap.String("user", user.ID))
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session_user WHERE key=$1`, s.key); err != nil {
		s.log.Error("session clear failed", zap.Error(err))
		return err
	}
	s.log.Debug("session cleared", zap.String("key", s.key))
	return nil
}
