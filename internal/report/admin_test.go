package report

import (
	"testing"
)

func adminUsers() []UserSummary {
	return []UserSummary{
		{UserID: 1, Name: "Carol", Email: "carol@example.com", Plan: "premium", Attempts: 5, Questions: 50, AccuracyPercent: 72},
		{UserID: 2, Name: "alice", Email: "alice@example.com", Plan: "free", Attempts: 9, Questions: 90, AccuracyPercent: 40},
		{UserID: 3, Name: "Bob", Email: "bob@clinic.org", Plan: "premium", Attempts: 5, Questions: 30, AccuracyPercent: 72},
	}
}

func TestSortUserSummaries(t *testing.T) {
	tests := []struct {
		key  string
		want []int // expected UserID order
	}{
		{AdminSortName, []int{3, 1, 2}}, // byte order: "Bob" < "Carol" < "alice"
		{AdminSortAccuracy, []int{1, 3, 2}},
		{AdminSortAttempts, []int{2, 1, 3}},
		{"bogus", []int{3, 1, 2}},
	}
	for _, tt := range tests {
		users := adminUsers()
		SortUserSummaries(users, tt.key)
		for i, wantID := range tt.want {
			if users[i].UserID != wantID {
				t.Errorf("sort by %q: position %d = user %d, want %d", tt.key, i, users[i].UserID, wantID)
			}
		}
	}
}

func TestSortUserSummariesStable(t *testing.T) {
	// Carol and Bob tie on both accuracy and attempts; input order must hold.
	users := adminUsers()
	SortUserSummaries(users, AdminSortAccuracy)
	if users[0].UserID != 1 || users[1].UserID != 3 {
		t.Errorf("accuracy tie broke input order: got %d then %d", users[0].UserID, users[1].UserID)
	}
	users = adminUsers()
	SortUserSummaries(users, AdminSortAttempts)
	if users[1].UserID != 1 || users[2].UserID != 3 {
		t.Errorf("attempts tie broke input order: got %d then %d", users[1].UserID, users[2].UserID)
	}
}

func TestFilterUserSummaries(t *testing.T) {
	tests := []struct {
		name        string
		search      string
		plan        string
		minAccuracy int
		want        []int
	}{
		{"no filters", "", "", 0, []int{1, 2, 3}},
		{"search matches name case-blind", "ALICE", "", 0, []int{2}},
		{"search matches email domain", "clinic", "", 0, []int{3}},
		{"plan filter", "", "premium", 0, []int{1, 3}},
		{"accuracy floor", "", "", 50, []int{1, 3}},
		{"combined", "o", "premium", 50, []int{1, 3}},
		{"nothing matches", "zzz", "", 0, nil},
	}
	for _, tt := range tests {
		got := FilterUserSummaries(adminUsers(), tt.search, tt.plan, tt.minAccuracy)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d users, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i, wantID := range tt.want {
			if got[i].UserID != wantID {
				t.Errorf("%s: position %d = user %d, want %d", tt.name, i, got[i].UserID, wantID)
			}
		}
	}
}

func TestAdminSections(t *testing.T) {
	sections := AdminSections(adminUsers())
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}

	table := sections[0]
	if table.Title != "User Performance" || len(table.Rows) != 3 {
		t.Errorf("consolidated table = %q with %d rows", table.Title, len(table.Rows))
	}

	plans := sections[1]
	if plans.Title != "Plan Distribution" {
		t.Fatalf("second section = %q", plans.Title)
	}
	// Alphabetical plan keys with their counts.
	if len(plans.KeyValues) != 2 || plans.KeyValues[0].Key != "free" || plans.KeyValues[0].Value != "1" ||
		plans.KeyValues[1].Key != "premium" || plans.KeyValues[1].Value != "2" {
		t.Errorf("plan distribution = %+v", plans.KeyValues)
	}

	accuracy := sections[2]
	if accuracy.Title != "Accuracy Distribution" {
		t.Fatalf("third section = %q", accuracy.Title)
	}
	// 40% lands in 25-49%, the two 72% users in 50-74%; empty bands dropped.
	if len(accuracy.KeyValues) != 2 ||
		accuracy.KeyValues[0].Key != "25-49%" || accuracy.KeyValues[0].Value != "1" ||
		accuracy.KeyValues[1].Key != "50-74%" || accuracy.KeyValues[1].Value != "2" {
		t.Errorf("accuracy distribution = %+v", accuracy.KeyValues)
	}
}

func TestAdminSectionsEmpty(t *testing.T) {
	if got := AdminSections(nil); len(got) != 0 {
		t.Errorf("got %d sections for zero users, want none", len(got))
	}
}

func TestAccuracyBand(t *testing.T) {
	tests := []struct {
		accuracy int
		want     int
	}{
		{0, 0}, {24, 0}, {25, 1}, {49, 1}, {50, 2}, {74, 2}, {75, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := accuracyBand(tt.accuracy); got != tt.want {
			t.Errorf("accuracyBand(%d) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestValidTimeFilter(t *testing.T) {
	for _, v := range []string{"", "all", "week", "month", "year", "specific"} {
		if !ValidTimeFilter(v) {
			t.Errorf("ValidTimeFilter(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"day", "WEEK", "quarterly"} {
		if ValidTimeFilter(v) {
			t.Errorf("ValidTimeFilter(%q) = true, want false", v)
		}
	}
}
