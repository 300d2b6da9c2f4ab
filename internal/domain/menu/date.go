package menu

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/yanqian/unicafe/pkg/util"
)

// Location is the fixed UTC+2 offset all menu dates live in. The host
// timezone is never used.
var Location = time.FixedZone("UTC+2", 2*60*60)

var (
	ErrNoDate       = errors.New("no date found")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

// <weekday word> <day>.<month>, e.g. "Ma 3.11".
var dateRe = regexp.MustCompile(`^\pL+ (\d{1,2})\.(\d{1,2})$`)

var weekdayAbbr = [...]string{
	time.Sunday:    "Su",
	time.Monday:    "Ma",
	time.Tuesday:   "Ti",
	time.Wednesday: "Ke",
	time.Thursday:  "To",
	time.Friday:    "Pe",
	time.Saturday:  "La",
}

// Date is a calendar day in Location. Dates compare with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current calendar day in Location.
func Today() Date {
	return DateOf(util.NowUTC())
}

// DateOf returns the calendar day of t as observed in Location.
func DateOf(t time.Time) Date {
	y, m, d := t.In(Location).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate extracts day and month from text such as "Ma 3.11". The weekday
// word is ignored and the year is taken from today, so "31.12" parsed in
// early January lands in the current year.
func ParseDate(text string, today Date) (Date, error) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return Date{}, ErrNoDate
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return Date{}, fmt.Errorf("parse day: %w", err)
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, fmt.Errorf("parse month: %w", err)
	}
	if month < 1 || month > 12 {
		return Date{}, ErrInvalidMonth
	}
	if day < 1 || day > daysIn(today.Year, time.Month(month)) {
		return Date{}, ErrInvalidDay
	}
	return Date{Year: today.Year, Month: time.Month(month), Day: day}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns midnight of the date in Location.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, Location)
}

// Weekday is computed from the calendar date itself.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date as "<weekday abbreviation> <day>.<month>".
func (d Date) String() string {
	return fmt.Sprintf("%s %d.%d", weekdayAbbr[d.Weekday()], d.Day, int(d.Month))
}

// MarshalText renders an ISO date for JSON payloads.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Time().Format(time.DateOnly)), nil
}
