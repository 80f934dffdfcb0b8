package finance

import "time"

const monthLayout = "2006-01"

// MonthOf returns the YYYY-MM key for a calendar day.
func MonthOf(t time.Time) string {
	return t.Format(monthLayout)
}

// CurrentMonth returns the YYYY-MM key for now, in UTC.
func CurrentMonth(now time.Time) string {
	return now.UTC().Format(monthLayout)
}

// AddMonths shifts a YYYY-MM key by delta months. Invalid keys are returned
// unchanged.
func AddMonths(month string, delta int) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return t.AddDate(0, delta, 0).Format(monthLayout)
}

// MonthRange returns the inclusive first and last day of a month, for
// translating a month key into a date filter.
func MonthRange(month string) (time.Time, time.Time, error) {
	from, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
