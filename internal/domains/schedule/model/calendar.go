package model

import (
	"fmt"
	"time"

	"goldentower/shared/constant"
	"goldentower/shared/failure"
)

const (
	// businessUTCOffsetHours anchors the civil calendar. The business operates
	// on UTC+8 wall clock regardless of where the service runs.
	businessUTCOffsetHours = 8

	// shiftStartHour is the wall clock hour the operating shift opens. The
	// reporting window for a civil date runs from this hour through the same
	// hour of the next calendar day.
	shiftStartHour = 16
)

// BusinessLocation is the fixed civil calendar zone for all business date
// arithmetic. It is intentionally independent of config.App.Timezone.
var BusinessLocation = time.FixedZone("UTC+8", businessUTCOffsetHours*60*60)

// CivilDate is a calendar date with no time or zone attached. Booking dates,
// blockout dates and business dates are all civil dates.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCivilDate(year int, month time.Month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

// ParseCivilDate parses a YYYY-MM-DD string.
func ParseCivilDate(value string) (CivilDate, error) {
	parsed, err := time.Parse(constant.CivilDateFormat, value)
	if err != nil {
		return CivilDate{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected format %s", value, constant.CivilDateFormat))
	}

	return CivilDate{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

// BusinessDate maps any instant to its business date. The civil day boundary
// is midnight in UTC+8, so two servers in different zones always agree.
func BusinessDate(instant time.Time) CivilDate {
	local := instant.In(BusinessLocation)

	return CivilDate{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// Today is BusinessDate of the current instant.
func Today() CivilDate {
	return BusinessDate(time.Now())
}

func (d CivilDate) String() string {
	return d.At(0, 0, 0).Format(constant.CivilDateFormat)
}

// At returns the instant at the given wall clock time on this date in the
// business zone. Out-of-range components normalize per time.Date.
func (d CivilDate) At(hour, minute, second int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, second, 0, BusinessLocation)
}

// Next returns the following calendar date.
func (d CivilDate) Next() CivilDate {
	return BusinessDate(d.At(24, 0, 0))
}

// Prev returns the preceding calendar date.
func (d CivilDate) Prev() CivilDate {
	return BusinessDate(d.At(-24, 0, 0))
}

func (d CivilDate) Equal(other CivilDate) bool {
	return d == other
}

func (d CivilDate) Before(other CivilDate) bool {
	return d.At(0, 0, 0).Before(other.At(0, 0, 0))
}

func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

// ShiftWindow is the 4 PM to next-day 4 PM reporting period anchored on a
// civil date. It exists solely for revenue and analytics filters and must not
// be used for calendar attribution, which BusinessDate owns.
type ShiftWindow struct {
	Start time.Time
	End   time.Time
}

// Shift returns the reporting window for this date, closed on both ends:
// [date 16:00:00, date+1 15:59:59] in the business zone.
func (d CivilDate) Shift() ShiftWindow {
	return ShiftWindow{
		Start: d.At(shiftStartHour, 0, 0),
		End:   d.Next().At(shiftStartHour-1, 59, 59),
	}
}

// Contains reports whether the instant falls inside the window.
func (w ShiftWindow) Contains(instant time.Time) bool {
	return !instant.Before(w.Start) && !instant.After(w.End)
}
