package handlers

import (
	"testing"
	"time"

	"github.com/InshiyaRavat/question-bank-sub002/internal/repository"

	"github.com/go-echarts/go-echarts/v2/opts"
)

func TestGenerateTimelineChart(t *testing.T) {
	data := []repository.TimelineDataPoint{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Value: 62},
		{Date: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), Value: 71},
	}

	line := generateTimelineChart(data, "Score")
	if line.Title.Title != "Score Over Time" {
		t.Errorf("title = %q, want %q", line.Title.Title, "Score Over Time")
	}
	if len(line.MultiSeries) != 1 || line.MultiSeries[0].Name != "Score" {
		t.Fatalf("series = %+v, want one series named Score", line.MultiSeries)
	}
	points, ok := line.MultiSeries[0].Data.([]opts.LineData)
	if !ok {
		t.Fatalf("series data has unexpected type %T", line.MultiSeries[0].Data)
	}
	if len(points) != 2 {
		t.Errorf("got %d points, want 2", len(points))
	}
}

func TestGenerateAccuracyChart(t *testing.T) {
	line := generateAccuracyChart(nil)
	if line.Title.Title != "Accuracy Over Time" {
		t.Errorf("title = %q, want %q", line.Title.Title, "Accuracy Over Time")
	}
}
