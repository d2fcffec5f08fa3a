package scheduling

import (
	"context"
	"fmt"
	"time"

	"homeview/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirm runs the final validation gates in order (required fields, email
// shape, phone shape, date/time re-check), persists the viewing, and moves the
// wizard to its terminal step. A storage failure aborts the confirmation and
// leaves the wizard at the details step so the user can retry; a confirmed
// booking is never silently dropped.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string, contact models.ContactDetails) (*models.ViewingConfirmation, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepEnterDetails {
		return nil, NewStateError("the wizard is not at the contact details step")
	}

	if err := ValidateContact(contact); err != nil {
		return nil, err
	}
	if session.SelectedDate == "" || session.SelectedTime == "" {
		return nil, NewValidationError("please select a date and time")
	}

	viewing := &models.Viewing{
		ID:            uuid.New().String(),
		PropertyID:    session.PropertyID,
		PropertyTitle: session.PropertyTitle,
		Date:          session.SelectedDate,
		Time:          session.SelectedTime,
		Name:          contact.Name,
		Email:         contact.Email,
		Phone:         contact.Phone,
		Notes:         contact.Notes,
		CreatedAt:     s.clock(),
	}

	if err := s.Repo.Create(ctx, viewing); err != nil {
		return nil, fmt.Errorf("failed to save viewing: %w", err)
	}

	session.Step = models.StepConfirmed
	if err := s.Store.Save(ctx, session); err != nil {
		// The viewing is already durable; a stale session only costs the
		// summary view, so log and carry on.
		s.logger().Warn("failed to mark wizard session confirmed",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(viewing); err != nil {
			s.logger().Warn("failed to schedule viewing reminder",
				zap.String("viewingID", viewing.ID), zap.Error(err))
		}
	}

	return &models.ViewingConfirmation{
		ViewingID:     viewing.ID,
		PropertyTitle: viewing.PropertyTitle,
		Date:          FormatLongDate(viewing.Date),
		Time:          FormatTime12h(viewing.Time),
		Message:       "Your viewing is booked. A confirmation email will be sent to you shortly.",
	}, nil
}

// FormatLongDate renders "2026-03-02" as "Monday, 2 March 2026".
// Unparseable input is returned as-is.
func FormatLongDate(dateStr string) string {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%s, %d %s %d", d.Weekday(), d.Day(), d.Month(), d.Year())
}

// FormatTime12h renders an hourly slot like "14:00" as "2:00 PM".
func FormatTime12h(slot string) string {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return slot
	}
	return t.Format("3:04 PM")
}
