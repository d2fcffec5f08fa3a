package notification

import (
	"context"

	"homeview/utils"

	"go.uber.org/zap"
)

// ViewingReminder carries everything needed to remind a visitor of an
// upcoming viewing.
type ViewingReminder struct {
	ViewingID     string `json:"viewingId"`
	PropertyTitle string `json:"propertyTitle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// NotificationService delivers viewing reminders to visitors.
type NotificationService interface {
	SendViewingReminder(ctx context.Context, reminder ViewingReminder) error
}

// DefaultNotificationService logs reminders; an email or SMS carrier plugs in
// behind the same interface.
type DefaultNotificationService struct{}

func (s *DefaultNotificationService) SendViewingReminder(ctx context.Context, reminder ViewingReminder) error {
	utils.GetLogger().Info("sending viewing reminder",
		zap.String("viewingID", reminder.ViewingID),
		zap.String("email", reminder.Email),
		zap.String("property", reminder.PropertyTitle),
		zap.String("date", reminder.Date),
		zap.String("time", reminder.Time),
	)
	return nil
}
