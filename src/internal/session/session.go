// Package session persists the single logged-in user record. The store
// holds exactly one serialized User under one key; everything else in the
// application is in-memory only.
//
// A stored payload that no longer parses is treated as "no user": Load
// logs it and reports absent rather than failing the caller.
package session

import (
	"context"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// DefaultKey is the storage key the user record lives under.
const DefaultKey = "citizen_user"

type Store interface {
	// Load reads the persisted record. ok is false when no record exists
	// or the stored payload fails to parse; err is reserved for backend
	// failures (connectivity, query errors).
	Load(ctx context.Context) (user model.User, ok bool, err error)
	// Save serializes and persists the user, overwriting any prior record.
	Save(ctx context.Context, user model.User) error
	// Clear removes the persisted record. Clearing an empty store is a
	// no-op.
	Clear(ctx context.Context) error
}
