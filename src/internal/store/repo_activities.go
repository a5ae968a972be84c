package store

import (
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// MaxActivities caps the activity feed; the oldest entry falls off when an
// eleventh is logged.
const MaxActivities = 10

// ActivityRepo is the newest-first activity feed.
type ActivityRepo struct {
	activities []model.Activity
	log        *zap.Logger
}

func NewActivityRepo(logger *zap.Logger) *ActivityRepo {
	return &ActivityRepo{log: logger}
}

func (r *ActivityRepo) seed(activities []model.Activity) {
	r.activities = append(r.activities, activities...)
}

// Add prepends the activity and truncates the feed to MaxActivities.
func (r *ActivityRepo) Add(a model.Activity) {
	r.activities = append([]model.Activity{a}, r.activities...)
	if len(r.activities) > MaxActivities {
		r.activities = r.activities[:MaxActivities]
	}
	r.log.Debug("activity logged", zap.String("type", a.Type), zap.String("description", a.Description))
}

// All returns a copy of the feed, newest first.
func (r *ActivityRepo) All() []model.Activity {
	out := make([]model.Activity, len(r.activities))
	copy(out, r.activities)
	return out
}
