package scheduling

import (
	"fmt"
	"time"

	"homeview/models"
)

// BookingWindowDays is the rolling window within which viewings can be booked.
const BookingWindowDays = 30

const dateLayout = "2006-01-02"

// truncateToDay drops the time component, keeping the local calendar date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthIndex flattens a year+month pair for ordering comparisons.
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// classifyDay applies the availability policy to a single date. It returns
// eligibility plus the reason a date is blocked, checked in policy order:
// past, then weekend, then beyond the booking window.
func classifyDay(d, today, windowEnd time.Time) (bool, string) {
	if d.Before(today) {
		return false, models.ReasonPast
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, models.ReasonWeekend
	}
	if d.After(windowEnd) {
		return false, models.ReasonOutOfWindow
	}
	return true, ""
}

// BuildCalendarMonth renders the Sunday-first grid for the given displayed
// month: leading placeholders for alignment, then one classified cell per day.
// selectedDate (may be empty) and now come from the wizard session and clock.
// A month with zero eligible days still renders in full; only the navigation
// flags keep the user inside the bookable window.
func BuildCalendarMonth(year int, month time.Month, selectedDate string, now time.Time) models.CalendarMonth {
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, 0, BookingWindowDays)

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1).Day()

	cells := make([]models.DayCell, 0, int(firstDay.Weekday())+lastDay)
	for i := 0; i < int(firstDay.Weekday()); i++ {
		cells = append(cells, models.DayCell{})
	}
	for day := 1; day <= lastDay; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		dateStr := d.Format(dateLayout)
		eligible, reason := classifyDay(d, today, windowEnd)
		cells = append(cells, models.DayCell{
			Day:      day,
			Date:     dateStr,
			Eligible: eligible,
			Reason:   reason,
			Today:    d.Equal(today),
			Selected: selectedDate != "" && dateStr == selectedDate,
		})
	}

	displayed := monthIndex(year, month)
	return models.CalendarMonth{
		Year:    year,
		Month:   int(month),
		Label:   fmt.Sprintf("%s %d", month.String(), year),
		Cells:   cells,
		CanPrev: displayed > monthIndex(today.Year(), today.Month()),
		CanNext: displayed < monthIndex(windowEnd.Year(), windowEnd.Month()),
	}
}

// ValidateSelectableDate parses dateStr and re-applies the availability policy
// server-side, so an ineligible date can never slip into a session regardless
// of what the grid presented.
func ValidateSelectableDate(dateStr string, now time.Time) error {
	d, err := time.ParseInLocation(dateLayout, dateStr, now.Location())
	if err != nil {
		return NewValidationError("please select a valid date")
	}
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, 0, BookingWindowDays)
	if eligible, _ := classifyDay(d, today, windowEnd); !eligible {
		return NewValidationError("the selected date is not available")
	}
	return nil
}
