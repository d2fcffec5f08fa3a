package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"homeview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSessionStore struct {
	sessions map[string]models.WizardSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.WizardSession)}
}

func (m *memSessionStore) Save(_ context.Context, s *models.WizardSession) error {
	m.sessions[s.SessionID] = *s
	return nil
}

func (m *memSessionStore) Get(_ context.Context, id string) (*models.WizardSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, NewSessionError("viewing session not found or expired")
	}
	copied := s
	return &copied, nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type fakeViewingRepo struct {
	created    []models.Viewing
	failCreate bool
}

func (r *fakeViewingRepo) Create(_ context.Context, v *models.Viewing) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.created = append(r.created, *v)
	return nil
}

func (r *fakeViewingRepo) GetByID(_ context.Context, id string) (*models.Viewing, error) {
	for i := range r.created {
		if r.created[i].ID == id {
			return &r.created[i], nil
		}
	}
	return nil, errors.New("viewing not found")
}

func (r *fakeViewingRepo) ListByProperty(_ context.Context, propertyID string) ([]models.Viewing, error) {
	var out []models.Viewing
	for _, v := range r.created {
		if v.PropertyID == propertyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeViewingRepo) ListAll(_ context.Context) ([]models.Viewing, error) {
	return append([]models.Viewing(nil), r.created...), nil
}

var testProperty = models.Property{
	ID:    "prop-42",
	Title: "Marina Heights 2BR",
	Location: models.PropertyLocation{
		District: "Dubai Marina",
		City:     "Dubai",
	},
}

var validContact = models.ContactDetails{
	Name:  "Jane Doe",
	Email: "jane@example.com",
	Phone: "+1 555 000 0000",
	Notes: "prefer the afternoon",
}

func newTestWizard() (*DefaultWizardService, *memSessionStore, *fakeViewingRepo) {
	store := newMemSessionStore()
	repo := &fakeViewingRepo{}
	svc := &DefaultWizardService{
		Store: store,
		Repo:  repo,
		Now:   func() time.Time { return fixedNow },
	}
	return svc, store, repo
}

func TestWizard_StartOpensAtDateStep(t *testing.T) {
	svc, _, _ := newTestWizard()

	session, cal, err := svc.Start(context.Background(), testProperty)

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.StepSelectDate, session.Step)
	assert.Equal(t, "prop-42", session.PropertyID)
	assert.Empty(t, session.SelectedDate)
	assert.Empty(t, session.SelectedTime)
	assert.False(t, session.CanAdvance(), "forward gate closed until a date is chosen")
	assert.Equal(t, 2026, cal.Year)
	assert.Equal(t, 9, cal.Month)
}

func TestWizard_FullBookingFlow(t *testing.T) {
	svc, _, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	session, cal, err := svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectDate, session.Step, "selecting a date does not change step")
	assert.True(t, session.CanAdvance())
	assert.True(t, cellFor(t, cal, "2026-09-16").Selected)

	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectTime, session.Step)

	session, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectTime, session.Step)
	assert.True(t, session.CanAdvance())

	session, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepEnterDetails, session.Step)

	confirmation, err := svc.Confirm(ctx, id, validContact)
	require.NoError(t, err)
	assert.Equal(t, "Marina Heights 2BR", confirmation.PropertyTitle)
	assert.Equal(t, "Wednesday, 16 September 2026", confirmation.Date)
	assert.Equal(t, "2:00 PM", confirmation.Time)

	require.Len(t, repo.created, 1)
	v := repo.created[0]
	assert.Equal(t, confirmation.ViewingID, v.ID)
	assert.Equal(t, "prop-42", v.PropertyID)
	assert.Equal(t, "2026-09-16", v.Date)
	assert.Equal(t, "14:00", v.Time)
	assert.Equal(t, "Jane Doe", v.Name)
	assert.Equal(t, "jane@example.com", v.Email)
	assert.Equal(t, "+1 555 000 0000", v.Phone)
	assert.Equal(t, "prefer the afternoon", v.Notes)
	assert.Equal(t, fixedNow, v.CreatedAt)

	session, _, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmed, session.Step)
}

func cellFor(t *testing.T, cal *models.CalendarMonth, date string) models.DayCell {
	t.Helper()
	for _, cell := range cal.Cells {
		if cell.Date == date {
			return cell
		}
	}
	t.Fatalf("no cell for %s", date)
	return models.DayCell{}
}

func TestWizard_AdvanceGates(t *testing.T) {
	svc, _, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.Advance(ctx, id)
	var stErr *StateError
	require.ErrorAs(t, err, &stErr)
	assert.Equal(t, "select a date before continuing", stErr.Message)

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Advance(ctx, id)
	require.ErrorAs(t, err, &stErr)
	assert.Equal(t, "select a time before continuing", stErr.Message)
}

func TestWizard_SelectDateRejectsIneligible(t *testing.T) {
	svc, store, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	for _, date := range []string{"2026-09-14", "2026-09-19", "2026-09-20", "2026-10-16"} {
		_, _, err := svc.SelectDate(ctx, id, date)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "date %s", date)
		assert.Equal(t, "the selected date is not available", vErr.Message)
	}

	assert.Empty(t, store.sessions[id].SelectedDate, "rejected dates never reach the session")
}

func TestWizard_SelectionOverwrites(t *testing.T) {
	svc, _, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	session, _, err = svc.SelectDate(ctx, id, "2026-09-17")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-17", session.SelectedDate)

	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "10:00")
	require.NoError(t, err)
	session, err = svc.SelectTime(ctx, id, "15:00")
	require.NoError(t, err)
	assert.Equal(t, "15:00", session.SelectedTime)
}

func TestWizard_SelectTimeRejectsUnknownSlot(t *testing.T) {
	svc, _, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, id, "14:30")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "please select one of the available time slots", vErr.Message)
}

func TestWizard_BackPreservesSelections(t *testing.T) {
	svc, _, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "11:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	session, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectTime, session.Step)
	assert.Equal(t, "11:00", session.SelectedTime)

	session, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectDate, session.Step)
	assert.Equal(t, "2026-09-16", session.SelectedDate)

	_, err = svc.Back(ctx, id)
	var stErr *StateError
	require.ErrorAs(t, err, &stErr)
}

func TestWizard_NavigationBounds(t *testing.T) {
	svc, _, _ := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.Navigate(ctx, id, "prev")
	var stErr *StateError
	require.ErrorAs(t, err, &stErr)
	assert.Equal(t, "cannot navigate before the current month", stErr.Message)

	session, cal, err := svc.Navigate(ctx, id, "next")
	require.NoError(t, err)
	assert.Equal(t, 10, session.DisplayedMonth)
	assert.False(t, cal.CanNext)

	_, _, err = svc.Navigate(ctx, id, "next")
	require.ErrorAs(t, err, &stErr)
	assert.Equal(t, "cannot navigate beyond the booking window", stErr.Message)

	session, _, err = svc.Navigate(ctx, id, "prev")
	require.NoError(t, err)
	assert.Equal(t, 9, session.DisplayedMonth)

	_, _, err = svc.Navigate(ctx, id, "sideways")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestWizard_ConfirmValidationOrder(t *testing.T) {
	svc, store, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	cases := []struct {
		name    string
		contact models.ContactDetails
		wantMsg string
	}{
		{"missing name", models.ContactDetails{Email: "jane@example.com", Phone: "+1 555 000 0000"}, "please fill in all required fields"},
		{"whitespace phone", models.ContactDetails{Name: "Jane", Email: "jane@example.com", Phone: "   "}, "please fill in all required fields"},
		{"bad email", models.ContactDetails{Name: "Jane", Email: "not-an-email", Phone: "+1 555 000 0000"}, "please enter a valid email address"},
		{"bad email wins over bad phone", models.ContactDetails{Name: "Jane", Email: "not-an-email", Phone: "abc"}, "please enter a valid email address"},
		{"bad phone", models.ContactDetails{Name: "Jane", Email: "jane@example.com", Phone: "abc"}, "please enter a valid phone number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Confirm(ctx, id, tc.contact)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantMsg, vErr.Message)
		})
	}

	assert.Empty(t, repo.created, "failed validation never persists a viewing")
	assert.Equal(t, models.StepEnterDetails, store.sessions[id].Step)
}

func TestWizard_ConfirmRechecksSelections(t *testing.T) {
	svc, store, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	// Simulate a selection lost underneath the details step.
	mutated := store.sessions[id]
	mutated.SelectedTime = ""
	store.sessions[id] = mutated

	_, err = svc.Confirm(ctx, id, validContact)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "please select a date and time", vErr.Message)
	assert.Empty(t, repo.created)
}

func TestWizard_ConfirmSurfacesWriteFailure(t *testing.T) {
	svc, store, repo := newTestWizard()
	repo.failCreate = true
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, id, validContact)
	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "a storage failure is not a validation problem")
	assert.Equal(t, models.StepEnterDetails, store.sessions[id].Step, "wizard stays at details for retry")
}

func TestWizard_CancelPersistsNothing(t *testing.T) {
	svc, store, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, id))

	assert.Empty(t, repo.created)
	assert.Empty(t, store.sessions)
	_, _, err = svc.Get(ctx, id)
	var sErr *SessionError
	require.ErrorAs(t, err, &sErr)
}

func TestWizard_ConfirmedIsTerminal(t *testing.T) {
	svc, _, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, id, validContact)
	require.NoError(t, err)

	var stErr *StateError
	_, err = svc.Advance(ctx, id)
	require.ErrorAs(t, err, &stErr)
	_, err = svc.Back(ctx, id)
	require.ErrorAs(t, err, &stErr)
	_, _, err = svc.SelectDate(ctx, id, "2026-09-17")
	require.ErrorAs(t, err, &stErr)
	_, _, err = svc.Navigate(ctx, id, "next")
	require.ErrorAs(t, err, &stErr)
	_, err = svc.Confirm(ctx, id, validContact)
	require.ErrorAs(t, err, &stErr)

	assert.Len(t, repo.created, 1, "a wizard instance books at most once")
}

func TestWizard_ConfirmRoundTrip(t *testing.T) {
	svc, _, repo := newTestWizard()
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-10-01")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "09:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	confirmation, err := svc.Confirm(ctx, id, validContact)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, confirmation.ViewingID)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", stored.Date)
	assert.Equal(t, "09:00", stored.Time)
	assert.Equal(t, validContact.Name, stored.Name)
	assert.Equal(t, validContact.Email, stored.Email)
	assert.Equal(t, validContact.Phone, stored.Phone)
	assert.Equal(t, validContact.Notes, stored.Notes)
}

type recordingReminders struct {
	scheduled []models.Viewing
	fail      bool
}

func (r *recordingReminders) ScheduleReminder(v *models.Viewing) error {
	if r.fail {
		return errors.New("queue down")
	}
	r.scheduled = append(r.scheduled, *v)
	return nil
}

func TestWizard_ConfirmSchedulesReminder(t *testing.T) {
	svc, _, _ := newTestWizard()
	reminders := &recordingReminders{}
	svc.Reminders = reminders
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, id, validContact)
	require.NoError(t, err)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, "2026-09-16", reminders.scheduled[0].Date)
}

func TestWizard_ReminderFailureDoesNotFailBooking(t *testing.T) {
	svc, _, repo := newTestWizard()
	svc.Reminders = &recordingReminders{fail: true}
	ctx := context.Background()

	session, _, err := svc.Start(ctx, testProperty)
	require.NoError(t, err)
	id := session.SessionID

	_, _, err = svc.SelectDate(ctx, id, "2026-09-16")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, id)
	require.NoError(t, err)

	confirmation, err := svc.Confirm(ctx, id, validContact)
	require.NoError(t, err)
	assert.NotEmpty(t, confirmation.ViewingID)
	assert.Len(t, repo.created, 1)
}
