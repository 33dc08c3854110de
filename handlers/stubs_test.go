package handlers

import (
	"context"
	"time"

	"github.com/charly15/back-task/models"
)

type stubGroups struct {
	list         func(ctx context.Context) ([]models.Group, error)
	create       func(ctx context.Context, in models.CreateGroupInput) (*models.Group, error)
	listTasks    func(ctx context.Context, groupID, requesterID string) ([]models.TaskView, error)
	updateStatus func(ctx context.Context, groupID, requesterID, estatus string) error
}

func (s *stubGroups) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.list(ctx)
}

func (s *stubGroups) CreateGroup(ctx context.Context, in models.CreateGroupInput) (*models.Group, error) {
	return s.create(ctx, in)
}

func (s *stubGroups) ListGroupTasks(ctx context.Context, groupID, requesterID string) ([]models.TaskView, error) {
	return s.listTasks(ctx, groupID, requesterID)
}

func (s *stubGroups) UpdateGroupStatus(ctx context.Context, groupID, requesterID, estatus string) error {
	return s.updateStatus(ctx, groupID, requesterID, estatus)
}

type stubTasks struct {
	create       func(ctx context.Context, groupID string, in models.CreateTaskInput) (*models.Task, error)
	updateStatus func(ctx context.Context, groupID, taskID, requesterID, status string) (*models.Task, error)
}

func (s *stubTasks) CreateTask(ctx context.Context, groupID string, in models.CreateTaskInput) (*models.Task, error) {
	return s.create(ctx, groupID, in)
}

func (s *stubTasks) UpdateTaskStatus(ctx context.Context, groupID, taskID, requesterID, status string) (*models.Task, error) {
	return s.updateStatus(ctx, groupID, taskID, requesterID, status)
}

type stubUsers struct {
	list       func(ctx context.Context) ([]models.User, error)
	summaries  func(ctx context.Context) ([]models.UserSummary, error)
	updateRole func(ctx context.Context, userID string, role models.Role) (models.Role, error)
}

func (s *stubUsers) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.list(ctx)
}

func (s *stubUsers) ListUserSummaries(ctx context.Context) ([]models.UserSummary, error) {
	return s.summaries(ctx)
}

func (s *stubUsers) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Role, error) {
	return s.updateRole(ctx, userID, role)
}

type stubAuth struct {
	register func(ctx context.Context, username, password string) (*models.User, error)
	login    func(ctx context.Context, username, password string) (string, *models.User, error)
}

func (s *stubAuth) Register(ctx context.Context, username, password string) (*models.User, error) {
	return s.register(ctx, username, password)
}

func (s *stubAuth) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	return s.login(ctx, username, password)
}

type stubNotifications struct {
	list     func(ctx context.Context, userID string) ([]models.Notification, error)
	markRead func(ctx context.Context, userID, notificationID string, createdAt time.Time) error
}

func (s *stubNotifications) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.list(ctx, userID)
}

func (s *stubNotifications) MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error {
	return s.markRead(ctx, userID, notificationID, createdAt)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }
