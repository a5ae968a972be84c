package store

import (
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// IssueRepo is an ordered collection of issues, newest first. Issues are
// never deleted.
type IssueRepo struct {
	issues []model.Issue
	log    *zap.Logger
}

func NewIssueRepo(logger *zap.Logger) *IssueRepo {
	return &IssueRepo{log: logger}
}

func (r *IssueRepo) seed(issues []model.Issue) {
	r.issues = append(r.issues, issues...)
}

// Add prepends the issue so the newest report renders first.
func (r *IssueRepo) Add(issue model.Issue) {
	r.issues = append([]model.Issue{issue}, r.issues...)
	r.log.Info("issue added", zap.String("id", issue.ID), zap.String("title", issue.Title))
}

// IncrementVotes adds one support vote to the issue with the given id.
// A miss is not an error; it reports false and changes nothing.
func (r *IssueRepo) IncrementVotes(id string) bool {
	for i := range r.issues {
		if r.issues[i].ID == id {
			r.issues[i].Votes++
			r.log.Debug("vote recorded", zap.String("id", id), zap.Int("votes", r.issues[i].Votes))
			return true
		}
	}
	r.log.Debug("vote target not found", zap.String("id", id))
	return false
}

// All returns a copy of the collection in display order.
func (r *IssueRepo) All() []model.Issue {
	out := make([]model.Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Count reports the live issue count for stats derivation.
func (r *IssueRepo) Count() int {
	return len(r.issues)
}
