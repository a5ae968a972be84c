// Package view holds the pure derivations the UI renders from: the filtered
// issue list and the aggregate stats. Nothing here mutates state.
package view

import (
	"strings"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// VisibleIssues returns the issues matching all three filter predicates,
// preserving the order of the source slice. An empty filter field imposes
// no constraint; the search term matches case-insensitively against the
// title and description together.
func VisibleIssues(issues []model.Issue, f model.Filters) []model.Issue {
	out := make([]model.Issue, 0, len(issues))
	search := strings.ToLower(f.Search)
	for _, i := range issues {
		if f.Category != "" && i.Category != f.Category {
			continue
		}
		if f.Status != "" && i.Status != f.Status {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(i.Title + " " + i.Description)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, i)
	}
	return out
}

// ComputeStats derives the dashboard counters. TotalIssues is the seed-time
// base plus the live issue count; ResolvedIssues and ActivePoliticians pass
// through from the base unchanged.
func ComputeStats(base model.Stats, issueCount int) model.Stats {
	return model.Stats{
		TotalIssues:       base.TotalIssues + issueCount,
		ResolvedIssues:    base.ResolvedIssues,
		ActivePoliticians: base.ActivePoliticians,
	}
}
