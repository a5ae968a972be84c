// Package store holds the in-memory entity repositories. Every collection
// is owned exclusively by the application container and mutated only
// through its operations; there is no database behind these (all entity
// data lives for the life of the process, only the session record is
// durable).
package store

import (
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

type Repositories struct {
	Log         *zap.Logger
	Issues      *IssueRepo
	Politicians *PoliticianRepo
	Updates     *UpdateRepo
	Activities  *ActivityRepo

	statsBase model.Stats
	seeded    bool
}

func NewRepositories(logger *zap.Logger) *Repositories {
	return &Repositories{
		Log:         logger,
		Issues:      NewIssueRepo(logger),
		Politicians: NewPoliticianRepo(logger),
		Updates:     NewUpdateRepo(logger),
		Activities:  NewActivityRepo(logger),
	}
}

// Seed bulk-loads the startup data and records the stats base. Calling it
// again once anything is loaded is a logged no-op, so startup cannot
// duplicate records.
func (r *Repositories) Seed(data SeedData) {
	if r.seeded {
		r.Log.Warn("seed skipped: repositories already populated")
		return
	}
	r.Issues.seed(data.Issues)
	r.Politicians.seed(data.Politicians)
	r.Updates.seed(data.Updates)
	r.Activities.seed(data.Activities)
	r.statsBase = data.StatsBase
	r.seeded = true
	r.Log.Info("repositories seeded",
		zap.Int("issues", len(data.Issues)),
		zap.Int("politicians", len(data.Politicians)),
		zap.Int("updates", len(data.Updates)),
		zap.Int("activities", len(data.Activities)))
}

// StatsBase returns the historical counters recorded at seed time.
func (r *Repositories) StatsBase() model.Stats {
	return r.statsBase
}
