package services

import (
	"context"
	"time"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"
)

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify stores an unread notification for userID.
func (s *NotificationService) Notify(ctx context.Context, userID, groupID, taskID, message string) error {
	if isBlank(userID) || isBlank(message) {
		return models.NewValidationError("userId and message are required")
	}
	n := &models.Notification{
		UserID:    userID,
		GroupID:   groupID,
		TaskID:    taskID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	logging.Logger.Debugf("Event ID: NOTIFICATION_CREATED, Description: Notification %s stored for user %s", n.ID, userID)
	return nil
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	if isBlank(userID) {
		return nil, models.NewValidationError("userId is required")
	}
	return s.repo.FindByUser(ctx, userID)
}

// MarkAsRead marks one of userID's notifications as read. The row is addressed
// by its id and creation time.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error {
	if isBlank(userID) || isBlank(notificationID) || createdAt.IsZero() {
		return models.NewValidationError("notificationId and createdAt are required")
	}
	if err := s.repo.MarkAsRead(ctx, userID, notificationID, createdAt); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: NOTIFICATION_READ, Description: Notification %s marked as read for user %s", notificationID, userID)
	return nil
}
