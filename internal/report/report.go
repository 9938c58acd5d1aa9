// Package report collapses raw activity rows into the normalized per-user
// performance report served by the report endpoints and fed to the export
// renderers. Aggregation is a pure function: it performs no I/O and never
// reads ambient configuration.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/models"
)

// TopicCount is the per-topic tally folded out of session breakdowns or
// reconstructed from solved-question rows.
type TopicCount struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Total   int `json:"total"`
}

// Totals are the top-line counters summed across all sessions directly, so
// they stay correct even when topic-level detail is missing.
type Totals struct {
	TotalAttempts           int `json:"totalAttempts"`
	TotalQuestionsAttempted int `json:"totalQuestionsAttempted"`
	TotalCorrect            int `json:"totalCorrect"`
	TotalIncorrect          int `json:"totalIncorrect"`
	OverallAccuracyPercent  int `json:"overallAccuracyPercent"`
}

type TopicStat struct {
	TopicID         int    `json:"topicId"`
	TopicName       string `json:"topicName"`
	Correct         int    `json:"correct"`
	Wrong           int    `json:"wrong"`
	Total           int    `json:"total"`
	AccuracyPercent int    `json:"accuracyPercent"`
	NeedsAttention  bool   `json:"needsAttention"`
}

// TopicRef identifies a topic with zero recorded attempts.
type TopicRef struct {
	TopicID   int    `json:"topicId"`
	TopicName string `json:"topicName"`
}

// WindowStat aggregates sessions whose StartedAt falls inside a fixed
// trailing window.
type WindowStat struct {
	Days            int `json:"days"`
	Tests           int `json:"tests"`
	Questions       int `json:"questions"`
	Correct         int `json:"correct"`
	AccuracyPercent int `json:"accuracyPercent"`
}

type Report struct {
	Totals          Totals       `json:"totals"`
	Topics          []TopicStat  `json:"topics"`
	TopicsLeftToDo  []TopicRef   `json:"topicsLeftToDo"`
	TimeWindowStats []WindowStat `json:"timeWindowStats"`
}

// windowDays are the fixed trailing windows reported on.
var windowDays = []int{7, 30, 90}

// ParseTopicStats decodes a session's raw JSON breakdown into a typed map
// keyed by topic id. The blob is untrusted: a malformed document or a
// non-numeric key yields no entries rather than an error, and negative
// counts are clamped to zero.
func ParseTopicStats(raw []byte) map[int]TopicCount {
	out := make(map[int]TopicCount)
	if len(raw) == 0 {
		return out
	}

	var decoded map[string]TopicCount
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return out
	}

	for key, count := range decoded {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[id] = TopicCount{
			Correct: clampNonNegative(count.Correct),
			Wrong:   clampNonNegative(count.Wrong),
			Total:   clampNonNegative(count.Total),
		}
	}
	return out
}

// Aggregate builds a Report from activity rows.
//
// Per-topic counts come from session TopicStats blobs; when no session
// carries a breakdown, the counts are reconstructed best-effort from
// individual solved-question rows. Topics are sorted worst-accuracy-first
// with encounter order preserved on ties. accuracyThreshold is the integer
// percent below which a topic with at least one attempt is flagged.
func Aggregate(sessions []models.Session, solvedFallback []models.SolvedQuestion, allTopics []models.Topic, accuracyThreshold int, now time.Time) Report {
	counts := make(map[int]TopicCount)
	var order []int // topic ids in first-encounter order, for stable ties

	for _, s := range sessions {
		perTopic := ParseTopicStats(s.TopicStats)
		// Iterate ids in sorted order so encounter order is deterministic
		// for ids first seen within the same session.
		ids := make([]int, 0, len(perTopic))
		for id := range perTopic {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			c := perTopic[id]
			if _, seen := counts[id]; !seen {
				order = append(order, id)
			}
			acc := counts[id]
			acc.Correct += c.Correct
			acc.Wrong += c.Wrong
			acc.Total += c.Total
			counts[id] = acc
		}
	}

	// Fallback: no session carried topic-level detail. Rebuild the same
	// mapping from individual solved rows. Best-effort reconstruction,
	// not a correctness guarantee.
	if len(counts) == 0 {
		for _, sq := range solvedFallback {
			if _, seen := counts[sq.TopicID]; !seen {
				order = append(order, sq.TopicID)
			}
			acc := counts[sq.TopicID]
			if sq.IsCorrect {
				acc.Correct++
			} else {
				acc.Wrong++
			}
			acc.Total++
			counts[sq.TopicID] = acc
		}
	}

	names := make(map[int]string, len(allTopics))
	for _, t := range allTopics {
		names[t.ID] = t.Name
	}

	topics := make([]TopicStat, 0, len(counts))
	for _, id := range order {
		c := counts[id]
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("Topic %d", id)
		}
		acc := percent(c.Correct, c.Total)
		topics = append(topics, TopicStat{
			TopicID:         id,
			TopicName:       name,
			Correct:         c.Correct,
			Wrong:           c.Wrong,
			Total:           c.Total,
			AccuracyPercent: acc,
			NeedsAttention:  c.Total > 0 && acc < accuracyThreshold,
		})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].AccuracyPercent < topics[j].AccuracyPercent
	})

	left := make([]TopicRef, 0)
	for _, t := range allTopics {
		if _, attempted := counts[t.ID]; !attempted {
			left = append(left, TopicRef{TopicID: t.ID, TopicName: t.Name})
		}
	}

	return Report{
		Totals:          sumTotals(sessions),
		Topics:          topics,
		TopicsLeftToDo:  left,
		TimeWindowStats: windowStats(sessions, now),
	}
}

func sumTotals(sessions []models.Session) Totals {
	var t Totals
	t.TotalAttempts = len(sessions)
	for _, s := range sessions {
		t.TotalQuestionsAttempted += clampNonNegative(s.TotalQuestions)
		t.TotalCorrect += clampNonNegative(s.CorrectCount)
		t.TotalIncorrect += clampNonNegative(s.IncorrectCount)
	}
	t.OverallAccuracyPercent = percent(t.TotalCorrect, t.TotalQuestionsAttempted)
	return t
}

func windowStats(sessions []models.Session, now time.Time) []WindowStat {
	stats := make([]WindowStat, 0, len(windowDays))
	for _, days := range windowDays {
		cutoff := now.AddDate(0, 0, -days)
		w := WindowStat{Days: days}
		for _, s := range sessions {
			if s.StartedAt.Before(cutoff) {
				continue
			}
			w.Tests++
			w.Questions += clampNonNegative(s.TotalQuestions)
			w.Correct += clampNonNegative(s.CorrectCount)
		}
		w.AccuracyPercent = percent(w.Correct, w.Questions)
		stats = append(stats, w)
	}
	return stats
}

// percent is round(correct/total*100), 0 when total is zero.
func percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
