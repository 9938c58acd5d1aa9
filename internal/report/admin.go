package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/InshiyaRavat/question-bank-sub002/internal/export"
)

// UserSummary is one row of the consolidated admin report: a user's
// top-line numbers after aggregation.
type UserSummary struct {
	UserID          int
	Name            string
	Email           string
	Plan            string
	Attempts        int
	Questions       int
	AccuracyPercent int
}

// AdminSort orders for the consolidated table.
const (
	AdminSortName     = "name"
	AdminSortAccuracy = "accuracy"
	AdminSortAttempts = "attempts"
)

// SortUserSummaries orders the consolidated rows. Accuracy and attempts
// sort descending (strongest first); name sorts ascending. Unknown keys
// fall back to name. Sorting is stable so equal rows keep query order.
func SortUserSummaries(users []UserSummary, key string) {
	switch key {
	case AdminSortAccuracy:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].AccuracyPercent > users[j].AccuracyPercent
		})
	case AdminSortAttempts:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Attempts > users[j].Attempts
		})
	default:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Name < users[j].Name
		})
	}
}

// AdminSections builds the consolidated multi-user table plus plan and
// accuracy distribution summaries for the admin bulk PDF.
func AdminSections(users []UserSummary) []export.Section {
	rows := make([][]export.Cell, 0, len(users))
	planCounts := make(map[string]int)
	bandCounts := make([]int, len(accuracyBands))

	for _, u := range users {
		rows = append(rows, []export.Cell{
			export.Text(u.Name),
			export.Text(u.Email),
			export.Text(u.Plan),
			export.Int(u.Attempts),
			export.Int(u.Questions),
			export.Int(u.AccuracyPercent),
		})
		planCounts[u.Plan]++
		bandCounts[accuracyBand(u.AccuracyPercent)]++
	}

	planKVs := make([]export.KV, 0, len(planCounts))
	plans := make([]string, 0, len(planCounts))
	for plan := range planCounts {
		plans = append(plans, plan)
	}
	sort.Strings(plans)
	for _, plan := range plans {
		planKVs = append(planKVs, export.KV{Key: plan, Value: strconv.Itoa(planCounts[plan])})
	}

	bandKVs := make([]export.KV, 0, len(accuracyBands))
	for i, band := range accuracyBands {
		if bandCounts[i] == 0 {
			continue
		}
		bandKVs = append(bandKVs, export.KV{Key: band.label, Value: strconv.Itoa(bandCounts[i])})
	}

	sections := []export.Section{
		{
			Title:   "User Performance",
			Kind:    export.SectionTopics,
			Headers: []string{"Name", "Email", "Plan", "Attempts", "Questions", "Accuracy %"},
			Rows:    rows,
		},
		{
			Title:     "Plan Distribution",
			Kind:      export.SectionStats,
			KeyValues: planKVs,
		},
		{
			Title:     "Accuracy Distribution",
			Kind:      export.SectionStats,
			KeyValues: bandKVs,
		},
	}

	out := sections[:0]
	for _, s := range sections {
		if len(s.KeyValues) == 0 && len(s.Rows) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

type band struct {
	min, max int
	label    string
}

var accuracyBands = []band{
	{0, 25, "0-24%"},
	{25, 50, "25-49%"},
	{50, 75, "50-74%"},
	{75, 101, "75-100%"},
}

func accuracyBand(accuracy int) int {
	for i, b := range accuracyBands {
		if accuracy >= b.min && accuracy < b.max {
			return i
		}
	}
	if accuracy >= 100 {
		return len(accuracyBands) - 1
	}
	return 0
}

// FilterUserSummaries applies the admin list filters: a case-blind substring
// match on name/email, an exact plan match, and a minimum accuracy floor.
// Empty filter values match everything.
func FilterUserSummaries(users []UserSummary, search, plan string, minAccuracy int) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		if search != "" && !containsFold(u.Name, search) && !containsFold(u.Email, search) {
			continue
		}
		if plan != "" && u.Plan != plan {
			continue
		}
		if u.AccuracyPercent < minAccuracy {
			continue
		}
		out = append(out, u)
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Label for time-filter query values on report endpoints.
const (
	TimeFilterAll      = "all"
	TimeFilterWeek     = "week"
	TimeFilterMonth    = "month"
	TimeFilterYear     = "year"
	TimeFilterSpecific = "specific"
)

// ValidTimeFilter reports whether the query value names a supported window.
func ValidTimeFilter(v string) bool {
	switch v {
	case "", TimeFilterAll, TimeFilterWeek, TimeFilterMonth, TimeFilterYear, TimeFilterSpecific:
		return true
	}
	return false
}
