package report

import (
	"testing"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/export"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

func sectionTitles(sections []export.Section) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	return titles
}

func hasSection(sections []export.Section, title string) bool {
	for _, s := range sections {
		if s.Title == title {
			return true
		}
	}
	return false
}

func TestSectionsOrdering(t *testing.T) {
	rep := Report{
		Totals: Totals{TotalAttempts: 2, TotalQuestionsAttempted: 10, TotalCorrect: 4, TotalIncorrect: 6, OverallAccuracyPercent: 40},
		Topics: []TopicStat{
			{TopicID: 1, TopicName: "Anatomy", Correct: 4, Wrong: 6, Total: 10, AccuracyPercent: 40, NeedsAttention: true},
		},
		TopicsLeftToDo: []TopicRef{{TopicID: 2, TopicName: "Physiology"}},
		TimeWindowStats: []WindowStat{
			{Days: 7, Tests: 1, Questions: 5, Correct: 2, AccuracyPercent: 40},
		},
	}
	history := []models.Session{{StartedAt: time.Now(), TestType: "mock", TotalQuestions: 5, CorrectCount: 2, IncorrectCount: 3, Score: 40}}
	subs := []models.Subscription{{Plan: "premium", Status: "active", StartedAt: time.Now(), ExpiresAt: time.Now().AddDate(0, 1, 0)}}

	sections := Sections(rep, history, subs)

	want := []string{
		"Overall Statistics",
		"Topic Performance",
		"Needs Attention",
		"Topics Left to Do",
		"Test History",
		"Subscription History",
	}
	got := sectionTitles(sections)
	if len(got) != len(want) {
		t.Fatalf("section titles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section order = %v, want %v", got, want)
		}
	}
}

func TestSectionsOmitsEmpty(t *testing.T) {
	rep := Report{
		Totals: Totals{TotalAttempts: 1, TotalQuestionsAttempted: 4, TotalCorrect: 4, OverallAccuracyPercent: 100},
		Topics: []TopicStat{
			{TopicID: 1, TopicName: "Anatomy", Correct: 4, Total: 4, AccuracyPercent: 100},
		},
		// No topics left, no needs-attention entries.
	}

	sections := Sections(rep, nil, nil)

	for _, absent := range []string{"Topics Left to Do", "Needs Attention", "Test History", "Subscription History"} {
		if hasSection(sections, absent) {
			t.Errorf("section %q rendered despite having no rows", absent)
		}
	}
	if !hasSection(sections, "Topic Performance") {
		t.Error("Topic Performance section missing")
	}
}

func TestSectionKindAccents(t *testing.T) {
	rep := Report{
		Topics: []TopicStat{
			{TopicID: 1, TopicName: "Anatomy", Correct: 1, Wrong: 3, Total: 4, AccuracyPercent: 25, NeedsAttention: true},
		},
		TopicsLeftToDo: []TopicRef{{TopicID: 2, TopicName: "Physiology"}},
	}
	history := []models.Session{{TestType: "mock"}}

	sections := Sections(rep, history, nil)

	kinds := make(map[string]export.SectionKind)
	for _, s := range sections {
		kinds[s.Title] = s.Kind
	}
	if kinds["Topic Performance"] == kinds["Needs Attention"] {
		t.Error("topic and needs-attention sections share a kind, should be visually distinct")
	}
	if kinds["Topic Performance"] == kinds["Test History"] {
		t.Error("topic and history sections share a kind, should be visually distinct")
	}
}

func TestCounters(t *testing.T) {
	rep := Report{Totals: Totals{TotalAttempts: 3, TotalQuestionsAttempted: 15, OverallAccuracyPercent: 60}}
	counters := Counters(rep)
	if len(counters) != 3 {
		t.Fatalf("got %d counters, want 3", len(counters))
	}
	if counters[2].Value != "60%" {
		t.Errorf("accuracy counter = %q, want %q", counters[2].Value, "60%")
	}
}
