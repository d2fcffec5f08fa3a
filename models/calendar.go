package models

// Reasons a day cell is not selectable.
const (
	ReasonPast        = "past"
	ReasonWeekend     = "weekend"
	ReasonOutOfWindow = "out_of_window"
)

// DayCell is one cell of the calendar grid. Leading placeholder cells
// (grid alignment before the 1st of the month) carry Day == 0.
type DayCell struct {
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"` // "YYYY-MM-DD" for real days
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// CalendarMonth is the rendered grid for one displayed month, Sunday-first.
type CalendarMonth struct {
	Year    int       `json:"year"`
	Month   int       `json:"month"` // 1..12
	Label   string    `json:"label"` // e.g. "September 2026"
	Cells   []DayCell `json:"cells"`
	CanPrev bool      `json:"canPrev"`
	CanNext bool      `json:"canNext"`
}
