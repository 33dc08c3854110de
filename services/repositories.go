package services

import (
	"context"
	"time"

	"github.com/charly15/back-task/models"
)

// The interfaces below are satisfied by the Mongo and Cassandra repositories in
// package repositories and by in-memory fakes in tests.

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	UpdateRole(ctx context.Context, id string, role models.Role) error
}

type GroupRepository interface {
	FindAll(ctx context.Context) ([]models.Group, error)
	FindByID(ctx context.Context, id string) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	UpdateStatus(ctx context.Context, id, estatus string) error
}

type TaskRepository interface {
	FindByGroup(ctx context.Context, groupID string) ([]models.Task, error)
	FindByID(ctx context.Context, groupID, taskID string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateStatus(ctx context.Context, groupID, taskID, status string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error
}
