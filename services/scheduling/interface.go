package scheduling

import (
	"context"

	"homeview/models"
)

// WizardService drives the viewing-booking wizard through its steps.
type WizardService interface {
	Start(ctx context.Context, property models.Property) (*models.WizardSession, *models.CalendarMonth, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, *models.CalendarMonth, error)
	Navigate(ctx context.Context, sessionID, direction string) (*models.WizardSession, *models.CalendarMonth, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, *models.CalendarMonth, error)
	SelectTime(ctx context.Context, sessionID, slot string) (*models.WizardSession, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Confirm(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.ViewingConfirmation, error)
	Cancel(ctx context.Context, sessionID string) error
}

// ReminderScheduler queues a reminder ahead of a confirmed viewing.
// Failures are logged, never surfaced: a missed reminder must not fail a booking.
type ReminderScheduler interface {
	ScheduleReminder(viewing *models.Viewing) error
}
