package menu

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOfUsesFixedOffset(t *testing.T) {
	late := time.Date(2025, time.November, 2, 22, 30, 0, 0, time.UTC)
	require.Equal(t, Date{Year: 2025, Month: time.November, Day: 3}, DateOf(late))

	early := time.Date(2025, time.November, 2, 21, 59, 0, 0, time.UTC)
	require.Equal(t, Date{Year: 2025, Month: time.November, Day: 2}, DateOf(early))

	tokyo := time.FixedZone("JST", 9*60*60)
	sameInstant := late.In(tokyo)
	require.Equal(t, DateOf(late), DateOf(sameInstant))
}

func TestTodayIsStableWithinADay(t *testing.T) {
	require.Equal(t, Today(), Today())
}

func TestParseDate(t *testing.T) {
	today2025 := Date{Year: 2025, Month: time.November, Day: 3}
	today2024 := Date{Year: 2024, Month: time.January, Day: 2}

	tests := []struct {
		name    string
		in      string
		today   Date
		want    Date
		wantErr error
	}{
		{"monday", "Ma 3.11", today2025, Date{2025, time.November, 3}, nil},
		{"two digit day and month", "Pe 31.12", today2025, Date{2025, time.December, 31}, nil},
		{"year from today", "Ti 31.12", today2024, Date{2024, time.December, 31}, nil},
		{"leap day in leap year", "To 29.2", today2024, Date{2024, time.February, 29}, nil},
		{"weekday word ignored", "Su 3.11", today2025, Date{2025, time.November, 3}, nil},
		{"finnish letters", "Lö 1.3", today2025, Date{2025, time.March, 1}, nil},
		{"leap day outside leap year", "Pe 29.2", today2025, Date{}, ErrInvalidDay},
		{"day zero", "Ma 0.5", today2025, Date{}, ErrInvalidDay},
		{"april 31", "Ke 31.4", today2025, Date{}, ErrInvalidDay},
		{"month thirteen", "Ma 3.13", today2025, Date{}, ErrInvalidMonth},
		{"month zero", "Ma 3.0", today2025, Date{}, ErrInvalidMonth},
		{"no dot", "Ma 3/11", today2025, Date{}, ErrNoDate},
		{"no weekday", "3.11", today2025, Date{}, ErrNoDate},
		{"trailing space", "Ma 3.11 ", today2025, Date{}, ErrNoDate},
		{"three digit day", "Ma 123.1", today2025, Date{}, ErrNoDate},
		{"empty", "", today2025, Date{}, ErrNoDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in, tt.today)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.True(t, got.IsZero(), "partial date returned: %+v", got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateFormatRoundTrip(t *testing.T) {
	today := Date{Year: 2025, Month: time.June, Day: 15}
	abbr := map[time.Weekday]string{
		time.Monday: "Ma", time.Tuesday: "Ti", time.Wednesday: "Ke", time.Thursday: "To",
		time.Friday: "Pe", time.Saturday: "La", time.Sunday: "Su",
	}

	for day := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC); day.Year() == 2025; day = day.AddDate(0, 0, 1) {
		in := fmt.Sprintf("Xx %d.%d", day.Day(), int(day.Month()))
		got, err := ParseDate(in, today)
		require.NoError(t, err, in)

		want := fmt.Sprintf("%s %d.%d", abbr[day.Weekday()], day.Day(), int(day.Month()))
		require.Equal(t, want, got.String())
	}
}

func TestDateString(t *testing.T) {
	require.Equal(t, "Ma 3.11", Date{2025, time.November, 3}.String())
	require.Equal(t, "Su 9.11", Date{2025, time.November, 9}.String())
	require.Equal(t, "Ke 1.1", Date{2025, time.January, 1}.String())
}

func TestDateMarshalText(t *testing.T) {
	text, err := Date{2025, time.November, 3}.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2025-11-03", string(text))
}
