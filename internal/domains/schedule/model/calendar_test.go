package model_test

import (
	"testing"
	"time"

	"goldentower/internal/domains/schedule/model"
)

func TestBusinessDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    model.CivilDate
	}{
		{
			name:    "utc afternoon maps to same day",
			instant: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			want:    model.NewCivilDate(2025, 6, 10),
		},
		{
			name:    "utc late evening rolls to next day in utc+8",
			instant: time.Date(2025, 6, 10, 17, 30, 0, 0, time.UTC),
			want:    model.NewCivilDate(2025, 6, 11),
		},
		{
			name:    "exactly midnight utc+8",
			instant: time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC),
			want:    model.NewCivilDate(2025, 6, 11),
		},
		{
			name:    "one second before midnight utc+8",
			instant: time.Date(2025, 6, 10, 15, 59, 59, 0, time.UTC),
			want:    model.NewCivilDate(2025, 6, 10),
		},
		{
			name:    "server in new york still agrees",
			instant: time.Date(2025, 6, 10, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600)),
			want:    model.NewCivilDate(2025, 6, 11),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := model.BusinessDate(test.instant)
			if !got.Equal(test.want) {
				t.Errorf("BusinessDate(%v) = %v, want %v", test.instant, got, test.want)
			}
		})
	}
}

func TestBusinessDateMonotonic(t *testing.T) {
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	prev := model.BusinessDate(start)

	for step := time.Duration(1); step <= 72; step++ {
		instant := start.Add(step * 30 * time.Minute)

		got := model.BusinessDate(instant)
		if got.Before(prev) {
			t.Fatalf("business date went backwards at %v: %v -> %v", instant, prev, got)
		}

		prev = got
	}
}

func TestParseCivilDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    model.CivilDate
		wantErr bool
	}{
		{"valid", "2025-06-10", model.NewCivilDate(2025, 6, 10), false},
		{"valid end of month", "2025-01-31", model.NewCivilDate(2025, 1, 31), false},
		{"invalid layout", "10-06-2025", model.CivilDate{}, true},
		{"invalid day", "2025-02-30", model.CivilDate{}, true},
		{"empty", "", model.CivilDate{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := model.ParseCivilDate(test.value)

			if test.wantErr {
				if err == nil {
					t.Errorf("ParseCivilDate(%q) expected error, got none", test.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseCivilDate(%q) unexpected error: %v", test.value, err)
			}

			if !got.Equal(test.want) {
				t.Errorf("ParseCivilDate(%q) = %v, want %v", test.value, got, test.want)
			}
		})
	}
}

func TestCivilDateNextAndPrev(t *testing.T) {
	endOfMonth := model.NewCivilDate(2025, 1, 31)
	if got := endOfMonth.Next(); !got.Equal(model.NewCivilDate(2025, 2, 1)) {
		t.Errorf("Next() across month = %v, want 2025-02-01", got)
	}

	startOfYear := model.NewCivilDate(2025, 1, 1)
	if got := startOfYear.Prev(); !got.Equal(model.NewCivilDate(2024, 12, 31)) {
		t.Errorf("Prev() across year = %v, want 2024-12-31", got)
	}
}

func TestShiftWindow(t *testing.T) {
	date := model.NewCivilDate(2025, 6, 10)
	window := date.Shift()

	wantStart := time.Date(2025, 6, 10, 16, 0, 0, 0, model.BusinessLocation)
	wantEnd := time.Date(2025, 6, 11, 15, 59, 59, 0, model.BusinessLocation)

	if !window.Start.Equal(wantStart) {
		t.Errorf("Shift().Start = %v, want %v", window.Start, wantStart)
	}

	if !window.End.Equal(wantEnd) {
		t.Errorf("Shift().End = %v, want %v", window.End, wantEnd)
	}

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"start boundary included", wantStart, true},
		{"end boundary included", wantEnd, true},
		{"just before shift opens", wantStart.Add(-time.Second), false},
		{"next day morning inside window", time.Date(2025, 6, 11, 2, 0, 0, 0, model.BusinessLocation), true},
		{"after window", time.Date(2025, 6, 11, 16, 0, 0, 0, model.BusinessLocation), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := window.Contains(test.instant); got != test.want {
				t.Errorf("Contains(%v) = %v, want %v", test.instant, got, test.want)
			}
		})
	}
}

func TestShiftWindowDistinctFromBusinessDate(t *testing.T) {
	// 17:00 on June 10 belongs to June 10's calendar date and to June 10's
	// shift window. 02:00 on June 11 belongs to June 11's calendar date but
	// still to June 10's shift window.
	earlyMorning := time.Date(2025, 6, 11, 2, 0, 0, 0, model.BusinessLocation)

	if got := model.BusinessDate(earlyMorning); !got.Equal(model.NewCivilDate(2025, 6, 11)) {
		t.Errorf("BusinessDate(%v) = %v, want 2025-06-11", earlyMorning, got)
	}

	if !model.NewCivilDate(2025, 6, 10).Shift().Contains(earlyMorning) {
		t.Errorf("expected %v inside June 10 shift window", earlyMorning)
	}
}
