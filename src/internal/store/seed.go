package store

import (
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/ident"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
)

// SeedData is the fixed startup content plus the historical counters the
// stats derivation starts from.
type SeedData struct {
	Issues      []model.Issue
	Politicians []model.Politician
	Updates     []model.Update
	Activities  []model.Activity
	StatsBase   model.Stats
}

// DefaultSeed returns the startup data set. Identifiers are generated per
// process; all other field values are fixed so scenario tests can rely on
// them.
func DefaultSeed() SeedData {
	return SeedData{
		Politicians: []model.Politician{
			{
				ID:           ident.New(),
				Name:         "Mayor Robert Johnson",
				Title:        "Mayor of Springfield",
				Party:        "Democratic Party",
				Messages:     142,
				Rating:       4.2,
				ResponseRate: 89,
			},
			{
				ID:           ident.New(),
				Name:         "Sarah Davis",
				Title:        "City Council Member - District 3",
				Party:        "Independent",
				Messages:     98,
				Rating:       4.7,
				ResponseRate: 95,
			},
			{
				ID:           ident.New(),
				Name:         "Carlos Martinez",
				Title:        "State Representative",
				Party:        "Republican Party",
				Messages:     76,
				Rating:       3.9,
				ResponseRate: 78,
			},
		},
		Updates: []model.Update{
			{
				ID:       ident.New(),
				Type:     model.UpdatePolicy,
				Date:     "Today, 2:30 PM",
				Title:    "New Public Transportation Initiative",
				Body:     "City Council approved $2.5M budget...",
				Author:   "Mayor Robert Johnson",
				Likes:    34,
				Comments: 12,
			},
			{
				ID:       ident.New(),
				Type:     model.UpdateEvents,
				Date:     "Tomorrow, 6:00 PM",
				Title:    "Town Hall Meeting: Community Safety",
				Body:     "Join us for an open discussion...",
				Author:   "Sarah Davis",
				Likes:    12,
				Comments: 4,
			},
			{
				ID:       ident.New(),
				Type:     model.UpdateAnnouncements,
				Date:     "2 days ago",
				Title:    "Road Maintenance Schedule",
				Body:     "Main Street will undergo scheduled maintenance",
				Author:   "Dept. of Public Works",
				Likes:    8,
				Comments: 2,
			},
		},
		Issues: []model.Issue{
			{
				ID:          ident.New(),
				Title:       "Pothole on Main Street causing traffic issues",
				Category:    model.CategoryInfrastructure,
				Description: "Large pothole near intersection...",
				Location:    "Main St",
				Status:      model.StatusOpen,
				Author:      "Sarah Johnson",
				Date:        "3 days ago",
				Votes:       24,
				Comments:    8,
			},
			{
				ID:                 ident.New(),
				Title:              "Long wait times at Community Health Center",
				Category:           model.CategoryHealthcare,
				Description:        "Patients experiencing 3-4 hour wait times...",
				Location:           "Community Health Center",
				Status:             model.StatusInProgress,
				Author:             "Michael Chen",
				Date:               "1 week ago",
				Votes:              67,
				Comments:           23,
				PoliticianResponse: "We're working with the health department to address staffing issues.",
			},
			{
				ID:          ident.New(),
				Title:       "Illegal dumping in Riverside Park",
				Category:    model.CategoryEnvironment,
				Description: "Construction waste and household items dumped...",
				Location:    "Riverside Park",
				Status:      model.StatusResolved,
				Author:      "Environmental Group",
				Date:        "2 weeks ago",
				Votes:       89,
				Comments:    15,
				Resolution:  "Cleanup completed and additional cameras installed.",
			},
		},
		Activities: []model.Activity{
			{
				ID:          ident.New(),
				Description: "New issue reported: Road maintenance on Main St",
				Time:        "2 hours ago",
				Icon:        "plus-circle",
			},
			{
				ID:          ident.New(),
				Description: "Issue resolved: Street lighting fixed",
				Time:        "5 hours ago",
				Icon:        "check-circle",
			},
			{
				ID:          ident.New(),
				Description: "Mayor Johnson responded to healthcare concern",
				Time:        "1 day ago",
				Icon:        "comment",
			},
		},
		StatsBase: model.Stats{
			TotalIssues:       1247,
			ResolvedIssues:    892,
			ActivePoliticians: 156,
		},
	}
}
