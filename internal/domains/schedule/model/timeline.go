package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SlotDurationMinutes is the fixed width of every timeline slot.
	SlotDurationMinutes = 180

	slotStepHours = 3

	// timelineSpanHours covers 00:00 of the business date through 04:00 of
	// the next calendar day on one effective scale, so late night bookings
	// stay in chronological order across midnight.
	timelineSpanHours = 28
)

// SlotBoundaries are the effective hours a slot starts at. Values of 24 and
// above denote the next calendar day.
var SlotBoundaries = []int{0, 3, 6, 9, 12, 15, 18, 21, 24, 27}

// TimelineEntry is one booking projected onto the timeline. NextDay marks an
// entry whose booking date is the day after the timeline's business date,
// admitted only when its clock time is before 04:00.
type TimelineEntry struct {
	BookingID     uuid.UUID `json:"booking_id"`
	GuestName     string    `json:"guest_name"`
	ServiceName   string    `json:"service_name"`
	TherapistName string    `json:"therapist_name"`
	Status        string    `json:"status"`
	Hour          int       `json:"hour"`
	Minute        int       `json:"minute"`
	NextDay       bool      `json:"next_day"`
}

// EffectiveHour places the entry on the 28-hour scale.
func (e TimelineEntry) EffectiveHour() int {
	if e.NextDay {
		return e.Hour + 24
	}

	return e.Hour
}

// TimelineSlot is one 3-hour bucket. StartHour is an effective hour from
// SlotBoundaries.
type TimelineSlot struct {
	StartHour int             `json:"start_hour"`
	Entries   []TimelineEntry `json:"entries"`
}

// NowMarker locates the current instant on the timeline for a progress
// indicator. Fraction is minutes elapsed inside the slot over the slot width.
type NowMarker struct {
	Slot     int     `json:"slot"`
	Fraction float64 `json:"fraction"`
}

// Timeline is a full day's slot partition.
type Timeline struct {
	Date  CivilDate      `json:"-"`
	Slots []TimelineSlot `json:"slots"`
	Now   *NowMarker     `json:"now,omitempty"`
}

// SlotFor returns the greatest slot boundary at or below the effective hour.
// Entries exactly on a boundary land in that slot.
func SlotFor(effectiveHour int) int {
	if effectiveHour < 0 {
		return SlotBoundaries[0]
	}

	slot := SlotBoundaries[0]

	for _, boundary := range SlotBoundaries {
		if boundary > effectiveHour {
			break
		}

		slot = boundary
	}

	return slot
}

// BuildTimeline partitions the entries into slots for the given business
// date. Entry order inside a slot follows input order. The now marker is set
// only when the instant falls inside the timeline's 28-hour span.
func BuildTimeline(date CivilDate, entries []TimelineEntry, now time.Time) Timeline {
	buckets := map[int][]TimelineEntry{}

	for _, entry := range entries {
		slot := SlotFor(entry.EffectiveHour())
		buckets[slot] = append(buckets[slot], entry)
	}

	slots := make([]TimelineSlot, 0, len(SlotBoundaries))
	for _, boundary := range SlotBoundaries {
		slots = append(slots, TimelineSlot{
			StartHour: boundary,
			Entries:   buckets[boundary],
		})
	}

	return Timeline{
		Date:  date,
		Slots: slots,
		Now:   nowMarker(date, now),
	}
}

func nowMarker(date CivilDate, now time.Time) *NowMarker {
	local := now.In(BusinessLocation)
	today := BusinessDate(now)

	effectiveHour := -1

	switch {
	case today.Equal(date):
		effectiveHour = local.Hour()
	case today.Equal(date.Next()) && local.Hour() < timelineSpanHours-24:
		effectiveHour = local.Hour() + 24
	}

	if effectiveHour < 0 {
		return nil
	}

	slot := SlotFor(effectiveHour)
	minutesElapsed := (effectiveHour-slot)*60 + local.Minute()

	return &NowMarker{
		Slot:     slot,
		Fraction: float64(minutesElapsed) / float64(SlotDurationMinutes),
	}
}
