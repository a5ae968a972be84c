package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// MemoryStore is the non-durable backend used in tests and when no storage
// is configured. It still round-trips through JSON so it exercises the same
// serialize/parse path as the durable backends.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
	log     *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{log: logger}
}

func (s *MemoryStore) Load(ctx context.Context) (model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return model.User{}, false, nil
	}
	var u model.User
	if err := json.Unmarshal(s.payload, &u); err != nil {
		s.log.Warn("session load: unparseable record, treating as absent", zap.Error(err))
		return model.User{}, false, nil
	}
	return u, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.payload = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.payload = nil
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites the stored payload with bytes that do not parse.
// Exported for tests of the recovery path.
func (s *MemoryStore) Corrupt() {
	s.mu.Lock()
	s.payload = []byte("{not json")
	s.mu.Unlock()
}
