package access

import "time"

const DateLayout = "2006-01-02"

// DateOnly drops the time of day, keeping the calendar day as seen in t's location.
// Dates are represented as midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return DateOnly(now.In(loc))
}

func AddDays(date time.Time, days int) time.Time {
	return DateOnly(date).AddDate(0, 0, days)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

func FormatDate(t time.Time) string {
	return DateOnly(t).Format(DateLayout)
}
