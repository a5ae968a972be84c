package app

import (
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/notify"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/view"
)

// Snapshot is the read-only state the UI renders from. The derived fields
// (VisibleIssues, Stats) are recomputed on every call, so any repository or
// filter change is reflected in the next snapshot.
type Snapshot struct {
	CurrentUser    *model.User           `json:"currentUser"`
	CurrentSection string                `json:"currentSection"`
	Issues         []model.Issue         `json:"issues"`
	VisibleIssues  []model.Issue         `json:"visibleIssues"`
	Politicians    []model.Politician    `json:"politicians"`
	Updates        []model.Update        `json:"updates"`
	Activities     []model.Activity      `json:"activities"`
	Stats          model.Stats           `json:"stats"`
	Filters        model.Filters         `json:"filters"`
	Modals         model.Modals          `json:"modals"`
	Notifications  []notify.Notification `json:"notifications"`
}

func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	issues := c.repos.Issues.All()
	var user *model.User
	if c.user != nil {
		u := *c.user
		user = &u
	}
	return Snapshot{
		CurrentUser:    user,
		CurrentSection: c.section,
		Issues:         issues,
		VisibleIssues:  view.VisibleIssues(issues, c.filters),
		Politicians:    c.repos.Politicians.All(),
		Updates:        c.repos.Updates.All(),
		Activities:     c.repos.Activities.All(),
		Stats:          view.ComputeStats(c.repos.StatsBase(), len(issues)),
		Filters:        c.filters,
		Modals:         c.modals,
		Notifications:  c.notifier.Active(),
	}
}
