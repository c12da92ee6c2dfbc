package workdays

import "time"

const DateLayout = "2006-01-02"

// BusinessDays counts the weekdays (Monday-Friday) in the inclusive
// range [start, end]. Public holidays are not subtracted from the
// count; they are tracked separately for calendar display only.
// An end before start yields 0 and must be rejected by the caller.
func BusinessDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	days := 0
	currentDate := start
	for !currentDate.After(end) {
		if currentDate.Weekday() != time.Saturday && currentDate.Weekday() != time.Sunday {
			days++
		}
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return days
}

// BusinessDaysStrings is BusinessDays over "YYYY-MM-DD" strings, the
// format all dates travel in on the wire.
func BusinessDaysStrings(start, end string) (int, error) {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, err
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, err
	}
	return BusinessDays(startDate, endDate), nil
}
