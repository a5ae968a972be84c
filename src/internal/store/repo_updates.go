package store

import (
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// UpdateRepo is read-only after seeding.
type UpdateRepo struct {
	updates []model.Update
	log     *zap.Logger
}

func NewUpdateRepo(logger *zap.Logger) *UpdateRepo {
	return &UpdateRepo{log: logger}
}

func (r *UpdateRepo) seed(updates []model.Update) {
	r.updates = append(r.updates, updates...)
}

// All returns a copy in seed order.
func (r *UpdateRepo) All() []model.Update {
	out := make([]model.Update, len(r.updates))
	copy(out, r.updates)
	return out
}
