package handlers

import (
	"context"
	"time"

	"github.com/charly15/back-task/models"
)

type GroupService interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, in models.CreateGroupInput) (*models.Group, error)
	ListGroupTasks(ctx context.Context, groupID, requesterID string) ([]models.TaskView, error)
	UpdateGroupStatus(ctx context.Context, groupID, requesterID, estatus string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, groupID string, in models.CreateTaskInput) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, groupID, taskID, requesterID, status string) (*models.Task, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUserSummaries(ctx context.Context) ([]models.UserSummary, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Role, error)
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error
}
