package store

import (
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// PoliticianRepo is read-only after seeding; no operation mutates a
// representative profile.
type PoliticianRepo struct {
	politicians []model.Politician
	log         *zap.Logger
}

func NewPoliticianRepo(logger *zap.Logger) *PoliticianRepo {
	return &PoliticianRepo{log: logger}
}

func (r *PoliticianRepo) seed(politicians []model.Politician) {
	r.politicians = append(r.politicians, politicians...)
}

// All returns a copy in seed order.
func (r *PoliticianRepo) All() []model.Politician {
	out := make([]model.Politician, len(r.politicians))
	copy(out, r.politicians)
	return out
}

// Get looks a representative up by id.
func (r *PoliticianRepo) Get(id string) (model.Politician, error) {
	for _, p := range r.politicians {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Politician{}, model.ErrNotFound
}
