package scheduling

import (
	"context"
	"time"

	viewingRepo "homeview/database/repository/viewing"
	"homeview/models"
	"homeview/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService implements WizardService. One session equals one wizard
// instance; all state lives in the SessionStore, so the service itself is
// stateless and safe to share.
type DefaultWizardService struct {
	Store     SessionStore
	Repo      viewingRepo.ViewingRepository
	Reminders ReminderScheduler // optional
	Now       func() time.Time  // injectable clock, defaults to time.Now
}

func (s *DefaultWizardService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start opens a new wizard at the date step, displaying the current month.
func (s *DefaultWizardService) Start(ctx context.Context, property models.Property) (*models.WizardSession, *models.CalendarMonth, error) {
	now := s.clock()
	session := &models.WizardSession{
		SessionID:      uuid.New().String(),
		PropertyID:     property.ID,
		PropertyTitle:  property.Title,
		Step:           models.StepSelectDate,
		DisplayedYear:  now.Year(),
		DisplayedMonth: int(now.Month()),
		CreatedAt:      now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	cal := s.calendarFor(session)
	return session, &cal, nil
}

// Get returns the session and the grid for its displayed month.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, *models.CalendarMonth, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	cal := s.calendarFor(session)
	return session, &cal, nil
}

// Navigate moves the displayed month one step in the given direction
// ("next" or "prev"), bounded by the months containing today and today
// plus the booking window.
func (s *DefaultWizardService) Navigate(ctx context.Context, sessionID, direction string) (*models.WizardSession, *models.CalendarMonth, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step == models.StepConfirmed {
		return nil, nil, NewStateError("the viewing is already confirmed")
	}

	var delta int
	switch direction {
	case "next":
		delta = 1
	case "prev":
		delta = -1
	default:
		return nil, nil, NewValidationError("direction must be \"next\" or \"prev\"")
	}

	now := s.clock()
	today := truncateToDay(now)
	windowEnd := today.AddDate(0, 0, BookingWindowDays)
	target := time.Date(session.DisplayedYear, time.Month(session.DisplayedMonth), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, delta, 0)

	targetIdx := monthIndex(target.Year(), target.Month())
	if targetIdx < monthIndex(today.Year(), today.Month()) {
		return nil, nil, NewStateError("cannot navigate before the current month")
	}
	if targetIdx > monthIndex(windowEnd.Year(), windowEnd.Month()) {
		return nil, nil, NewStateError("cannot navigate beyond the booking window")
	}

	session.DisplayedYear = target.Year()
	session.DisplayedMonth = int(target.Month())
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	cal := s.calendarFor(session)
	return session, &cal, nil
}

// SelectDate records an eligible date. A later click simply overwrites the
// earlier selection; the step does not change.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, *models.CalendarMonth, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Step != models.StepSelectDate {
		return nil, nil, NewStateError("a date can only be chosen at the date step")
	}
	now := s.clock()
	if err := ValidateSelectableDate(date, now); err != nil {
		return nil, nil, err
	}

	session.SelectedDate = date
	// Keep the grid on the month of the chosen date.
	d, _ := time.ParseInLocation(dateLayout, date, now.Location())
	session.DisplayedYear = d.Year()
	session.DisplayedMonth = int(d.Month())

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	cal := s.calendarFor(session)
	return session, &cal, nil
}

// SelectTime records one of the fixed hourly slots, overwriting freely.
func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID, slot string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectTime {
		return nil, NewStateError("a time can only be chosen at the time step")
	}
	if !models.IsValidTimeSlot(slot) {
		return nil, NewValidationError("please select one of the available time slots")
	}
	session.SelectedTime = slot
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves one step forward, gated on the current step's selection.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case models.StepSelectDate:
		if session.SelectedDate == "" {
			return nil, NewStateError("select a date before continuing")
		}
		session.Step = models.StepSelectTime
	case models.StepSelectTime:
		if session.SelectedTime == "" {
			return nil, NewStateError("select a time before continuing")
		}
		session.Step = models.StepEnterDetails
	case models.StepEnterDetails:
		return nil, NewStateError("submit the contact form to confirm the viewing")
	default:
		return nil, NewStateError("the viewing is already confirmed")
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backward. Selections are kept; nothing is lost.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case models.StepSelectTime:
		session.Step = models.StepSelectDate
	case models.StepEnterDetails:
		session.Step = models.StepSelectTime
	default:
		return nil, NewStateError("cannot go back from this step")
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel dismisses the wizard at any step. Nothing is ever persisted on
// cancellation; the session is simply gone.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultWizardService) calendarFor(session *models.WizardSession) models.CalendarMonth {
	return BuildCalendarMonth(session.DisplayedYear, time.Month(session.DisplayedMonth), session.SelectedDate, s.clock())
}

func (s *DefaultWizardService) logger() *zap.Logger {
	return utils.GetLogger()
}
