package models

import "time"

// Wizard steps, in order of progression.
const (
	StepSelectDate   = "select_date"
	StepSelectTime   = "select_time"
	StepEnterDetails = "enter_details"
	StepConfirmed    = "confirmed"
)

// WizardSession holds the state of one booking wizard between step requests.
type WizardSession struct {
	SessionID      string    `json:"sessionId"`
	PropertyID     string    `json:"propertyId"`
	PropertyTitle  string    `json:"propertyTitle"`
	Step           string    `json:"step"`
	DisplayedYear  int       `json:"displayedYear"`
	DisplayedMonth int       `json:"displayedMonth"` // 1..12
	SelectedDate   string    `json:"selectedDate,omitempty"` // "YYYY-MM-DD", empty until chosen
	SelectedTime   string    `json:"selectedTime,omitempty"` // hourly slot, empty until chosen
	CreatedAt      time.Time `json:"createdAt"`
}

// CanAdvance reports whether the forward gate for the current step is open.
func (s *WizardSession) CanAdvance() bool {
	switch s.Step {
	case StepSelectDate:
		return s.SelectedDate != ""
	case StepSelectTime:
		return s.SelectedTime != ""
	default:
		return false
	}
}
