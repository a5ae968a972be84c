package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

func TestMemoryStore_EmptyLoad(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())

	_, ok, err := s.Load(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	u := model.User{
		ID:       "u1",
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Role:     model.RoleCitizen,
		Location: "Springfield, IL",
		JoinDate: "January 2024",
	}

	assert.NoError(t, s.Save(context.Background(), u))

	got, ok, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, u, got)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, model.User{ID: "u1", Name: "First"}))
	assert.NoError(t, s.Save(ctx, model.User{ID: "u1", Name: "Second"}))

	got, ok, _ := s.Load(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Second", got.Name)
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, model.User{ID: "u1"}))
	assert.NoError(t, s.Clear(ctx))

	_, ok, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	// clearing an already-empty store is fine
	assert.NoError(t, s.Clear(ctx))
}

func TestMemoryStore_UnparseableRecordIsAbsent(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, model.User{ID: "u1"}))
	s.Corrupt()

	_, ok, err := s.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}
