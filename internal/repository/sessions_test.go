package repository

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRangeForFilter(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filter  string
		month   string
		year    string
		from    time.Time
		to      time.Time
		wantErr bool
	}{
		{name: "empty means all", filter: ""},
		{name: "all", filter: "all"},
		{name: "week", filter: "week", from: now.AddDate(0, 0, -7)},
		{name: "month", filter: "month", from: now.AddDate(0, -1, 0)},
		{name: "year", filter: "year", from: now.AddDate(-1, 0, 0)},
		{
			name: "specific month", filter: "specific", month: "2025-03",
			from: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "specific year", filter: "specific", year: "2024",
			from: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month takes precedence over year", filter: "specific", month: "2025-01", year: "2024",
			from: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "specific without month or year", filter: "specific", wantErr: true},
		{name: "malformed month", filter: "specific", month: "March 2025", wantErr: true},
		{name: "malformed year", filter: "specific", year: "24", wantErr: true},
		{name: "unknown filter", filter: "fortnight", wantErr: true},
	}

	for _, tt := range tests {
		tr, err := RangeForFilter(tt.filter, tt.month, tt.year, now)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got range %+v", tt.name, tr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if !tr.From.Equal(tt.from) {
			t.Errorf("%s: From = %v, want %v", tt.name, tr.From, tt.from)
		}
		if !tr.To.Equal(tt.to) {
			t.Errorf("%s: To = %v, want %v", tt.name, tr.To, tt.to)
		}
	}
}

func TestGetRecentSessionsAppliesTimeRange(t *testing.T) {
	rec := &sqlRecorder{}
	dryRunDB(t, rec)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := TimeRange{From: from, To: from.AddDate(0, 1, 0)}
	if _, err := GetRecentSessions(context.Background(), 7, 100, tr); err != nil {
		t.Fatalf("GetRecentSessions: %v", err)
	}

	sql := rec.last(t)
	for _, want := range []string{"user_id =", "started_at >=", "started_at <", "ORDER BY started_at DESC", "LIMIT"} {
		if !strings.Contains(sql, want) {
			t.Errorf("query missing %q:\n%s", want, sql)
		}
	}
}
