package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// RedisStore keeps the session record as JSON under a single key, no TTL.
type RedisStore struct {
	rdb *redis.Client
	key string
	log *zap.Logger
}

func NewRedisStore(rdb *redis.Client, key string, logger *zap.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{rdb: rdb, key: key, log: logger}
}

func (s *RedisStore) Load(ctx context.Context) (model.User, bool, error) {
	payload, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.log.Debug("session load: no record", zap.String("key", s.key))
		return model.User{}, false, nil
	}
	if err != nil {
		s.log.Error("session load: redis get failed", zap.Error(err))
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

func (s *RedisStore) Save(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, payload, 0).Err(); err != nil {
		s.log.Error("session save failed", zap.Error(err))
		return err
	}
	s.log.Debug("session saved", zap.String("user", user.ID))
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		s.log.Error("session clear failed", zap.Error(err))
		return err
	}
	s.log.Debug("session cleared", zap.String("key", s.key))
	return nil
}
