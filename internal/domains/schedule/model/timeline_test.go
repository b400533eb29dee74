package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"goldentower/internal/domains/schedule/model"
)

func TestSlotFor(t *testing.T) {
	tests := []struct {
		name          string
		effectiveHour int
		want          int
	}{
		{"start of day", 0, 0},
		{"inside first slot", 2, 0},
		{"exactly on boundary", 3, 3},
		{"mid afternoon", 14, 12},
		{"late evening", 23, 21},
		{"past midnight next day", 25, 24},
		{"end of span", 27, 27},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := model.SlotFor(test.effectiveHour); got != test.want {
				t.Errorf("SlotFor(%d) = %d, want %d", test.effectiveHour, got, test.want)
			}
		})
	}
}

func TestBuildTimelineSlotAssignment(t *testing.T) {
	date := model.NewCivilDate(2025, 6, 10)

	lateEvening := model.TimelineEntry{BookingID: uuid.New(), Hour: 23, Minute: 30}
	pastMidnight := model.TimelineEntry{BookingID: uuid.New(), Hour: 1, Minute: 15, NextDay: true}

	// The instant is outside the span so no now marker interferes.
	timeline := model.BuildTimeline(date, []model.TimelineEntry{lateEvening, pastMidnight}, date.Prev().At(10, 0, 0))

	if len(timeline.Slots) != len(model.SlotBoundaries) {
		t.Fatalf("expected %d slots, got %d", len(model.SlotBoundaries), len(timeline.Slots))
	}

	bySlot := map[int]model.TimelineSlot{}
	for _, slot := range timeline.Slots {
		bySlot[slot.StartHour] = slot
	}

	if len(bySlot[21].Entries) != 1 || bySlot[21].Entries[0].BookingID != lateEvening.BookingID {
		t.Errorf("expected 23:30 booking in slot 21, got %+v", bySlot[21].Entries)
	}

	if len(bySlot[24].Entries) != 1 || bySlot[24].Entries[0].BookingID != pastMidnight.BookingID {
		t.Errorf("expected 01:15 next-day booking in slot 24, got %+v", bySlot[24].Entries)
	}

	if len(bySlot[0].Entries) != 0 {
		t.Errorf("slot 0 must stay empty, got %+v", bySlot[0].Entries)
	}
}

func TestBuildTimelineEmpty(t *testing.T) {
	date := model.NewCivilDate(2025, 6, 10)
	timeline := model.BuildTimeline(date, nil, date.Prev().At(10, 0, 0))

	for _, slot := range timeline.Slots {
		if len(slot.Entries) != 0 {
			t.Errorf("expected empty slot %d, got %d entries", slot.StartHour, len(slot.Entries))
		}
	}
}

func TestBuildTimelinePreservesInputOrderWithinSlot(t *testing.T) {
	date := model.NewCivilDate(2025, 6, 10)

	first := model.TimelineEntry{BookingID: uuid.New(), Hour: 13, Minute: 0}
	second := model.TimelineEntry{BookingID: uuid.New(), Hour: 12, Minute: 30}

	timeline := model.BuildTimeline(date, []model.TimelineEntry{first, second}, date.Prev().At(10, 0, 0))

	for _, slot := range timeline.Slots {
		if slot.StartHour != 12 {
			continue
		}

		if len(slot.Entries) != 2 {
			t.Fatalf("expected 2 entries in slot 12, got %d", len(slot.Entries))
		}

		if slot.Entries[0].BookingID != first.BookingID || slot.Entries[1].BookingID != second.BookingID {
			t.Errorf("entries reordered within slot: %+v", slot.Entries)
		}
	}
}

func TestBuildTimelineNowMarker(t *testing.T) {
	date := model.NewCivilDate(2025, 6, 10)

	tests := []struct {
		name         string
		now          time.Time
		wantMarker   bool
		wantSlot     int
		wantFraction float64
	}{
		{
			name:         "mid slot on the business date",
			now:          time.Date(2025, 6, 10, 13, 30, 0, 0, model.BusinessLocation),
			wantMarker:   true,
			wantSlot:     12,
			wantFraction: 0.5,
		},
		{
			name:         "exactly on a boundary",
			now:          time.Date(2025, 6, 10, 21, 0, 0, 0, model.BusinessLocation),
			wantMarker:   true,
			wantSlot:     21,
			wantFraction: 0,
		},
		{
			name:         "past midnight next day",
			now:          time.Date(2025, 6, 11, 1, 15, 0, 0, model.BusinessLocation),
			wantMarker:   true,
			wantSlot:     24,
			wantFraction: 75.0 / 180.0,
		},
		{
			name:       "next day after span ends",
			now:        time.Date(2025, 6, 11, 5, 0, 0, 0, model.BusinessLocation),
			wantMarker: false,
		},
		{
			name:       "a different day entirely",
			now:        time.Date(2025, 6, 20, 12, 0, 0, 0, model.BusinessLocation),
			wantMarker: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			timeline := model.BuildTimeline(date, nil, test.now)

			if !test.wantMarker {
				if timeline.Now != nil {
					t.Errorf("expected no now marker, got %+v", timeline.Now)
				}

				return
			}

			if timeline.Now == nil {
				t.Fatal("expected now marker, got nil")
			}

			if timeline.Now.Slot != test.wantSlot {
				t.Errorf("Now.Slot = %d, want %d", timeline.Now.Slot, test.wantSlot)
			}

			if diff := timeline.Now.Fraction - test.wantFraction; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Now.Fraction = %v, want %v", timeline.Now.Fraction, test.wantFraction)
			}
		})
	}
}
