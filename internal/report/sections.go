package report

import (
	"fmt"
	"strconv"

	"github.com/InshiyaRavat/question-bank-sub002/internal/export"
	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

// Sections lays a report out for the document renderer in the fixed order
// the product contract requires: overall statistics, topic performance,
// needs-attention topics, topics left to do, test history, then
// subscription history. Sections with nothing to show are dropped here so
// the renderer never sees an empty table.
func Sections(rep Report, history []models.Session, subs []models.Subscription) []export.Section {
	sections := []export.Section{
		statsSection(rep),
		topicsSection(rep),
		attentionSection(rep),
		topicsLeftSection(rep),
		historySection(history),
		subscriptionSection(subs),
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

// Counters are the top-line numbers shown on the document cover.
func Counters(rep Report) []export.KV {
	return []export.KV{
		{Key: "Tests taken", Value: strconv.Itoa(rep.Totals.TotalAttempts)},
		{Key: "Questions attempted", Value: strconv.Itoa(rep.Totals.TotalQuestionsAttempted)},
		{Key: "Overall accuracy", Value: fmt.Sprintf("%d%%", rep.Totals.OverallAccuracyPercent)},
	}
}

func statsSection(rep Report) export.Section {
	kvs := []export.KV{
		{Key: "Total attempts", Value: strconv.Itoa(rep.Totals.TotalAttempts)},
		{Key: "Questions attempted", Value: strconv.Itoa(rep.Totals.TotalQuestionsAttempted)},
		{Key: "Correct", Value: strconv.Itoa(rep.Totals.TotalCorrect)},
		{Key: "Incorrect", Value: strconv.Itoa(rep.Totals.TotalIncorrect)},
		{Key: "Overall accuracy", Value: fmt.Sprintf("%d%%", rep.Totals.OverallAccuracyPercent)},
	}

	rows := make([][]export.Cell, 0, len(rep.TimeWindowStats))
	for _, w := range rep.TimeWindowStats {
		rows = append(rows, []export.Cell{
			export.Text(fmt.Sprintf("Last %d days", w.Days)),
			export.Int(w.Tests),
			export.Int(w.Questions),
			export.Int(w.Correct),
			export.Int(w.AccuracyPercent),
		})
	}

	return export.Section{
		Title:     "Overall Statistics",
		Kind:      export.SectionStats,
		KeyValues: kvs,
		Headers:   []string{"Window", "Tests", "Questions", "Correct", "Accuracy %"},
		Rows:      rows,
	}
}

func topicsSection(rep Report) export.Section {
	rows := make([][]export.Cell, 0, len(rep.Topics))
	for _, t := range rep.Topics {
		rows = append(rows, topicRow(t))
	}
	return export.Section{
		Title:   "Topic Performance",
		Kind:    export.SectionTopics,
		Headers: topicHeaders(),
		Rows:    rows,
	}
}

func attentionSection(rep Report) export.Section {
	var rows [][]export.Cell
	for _, t := range rep.Topics {
		if t.NeedsAttention {
			rows = append(rows, topicRow(t))
		}
	}
	return export.Section{
		Title:   "Needs Attention",
		Kind:    export.SectionAttention,
		Headers: topicHeaders(),
		Rows:    rows,
	}
}

func topicsLeftSection(rep Report) export.Section {
	rows := make([][]export.Cell, 0, len(rep.TopicsLeftToDo))
	for _, t := range rep.TopicsLeftToDo {
		rows = append(rows, []export.Cell{
			export.Int(t.TopicID),
			export.Text(t.TopicName),
		})
	}
	return export.Section{
		Title:   "Topics Left to Do",
		Kind:    export.SectionTopics,
		Headers: []string{"ID", "Topic"},
		Rows:    rows,
	}
}

func historySection(history []models.Session) export.Section {
	rows := make([][]export.Cell, 0, len(history))
	for _, s := range history {
		rows = append(rows, []export.Cell{
			export.Text(s.StartedAt.Format("2006-01-02 15:04")),
			export.Text(s.TestType),
			export.Int(s.TotalQuestions),
			export.Int(s.CorrectCount),
			export.Int(s.IncorrectCount),
			export.Number(s.Score),
		})
	}
	return export.Section{
		Title:   "Test History",
		Kind:    export.SectionHistory,
		Headers: []string{"Started", "Type", "Questions", "Correct", "Incorrect", "Score"},
		Rows:    rows,
	}
}

func subscriptionSection(subs []models.Subscription) export.Section {
	rows := make([][]export.Cell, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, []export.Cell{
			export.Text(sub.Plan),
			export.Text(sub.Status),
			export.Text(sub.StartedAt.Format("2006-01-02")),
			export.Text(sub.ExpiresAt.Format("2006-01-02")),
		})
	}
	return export.Section{
		Title:   "Subscription History",
		Kind:    export.SectionHistory,
		Headers: []string{"Plan", "Status", "Started", "Expires"},
		Rows:    rows,
	}
}

func topicHeaders() []string {
	return []string{"Topic", "Correct", "Wrong", "Total", "Accuracy %"}
}

func topicRow(t TopicStat) []export.Cell {
	return []export.Cell{
		export.Text(t.TopicName),
		export.Int(t.Correct),
		export.Int(t.Wrong),
		export.Int(t.Total),
		export.Int(t.AccuracyPercent),
	}
}
