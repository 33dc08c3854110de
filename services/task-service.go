package services

import (
	"context"
	"fmt"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"
)

// Notifier delivers a message to one user. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, userID, groupID, taskID, message string) error
}

type TaskService struct {
	groups           GroupRepository
	tasks            TaskRepository
	notifier         Notifier
	strictMembership bool
}

// NewTaskService wires the task service. notifier may be nil. With strictMembership
// set, tasks may only be assigned to group members.
func NewTaskService(groups GroupRepository, tasks TaskRepository, notifier Notifier, strictMembership bool) *TaskService {
	return &TaskService{
		groups:           groups,
		tasks:            tasks,
		notifier:         notifier,
		strictMembership: strictMembership,
	}
}

// CreateTask stores a new task under groupID. Description is optional.
func (s *TaskService) CreateTask(ctx context.Context, groupID string, in models.CreateTaskInput) (*models.Task, error) {
	if isBlank(in.Title) || in.AssignedTo == nil || isBlank(in.Status) {
		return nil, models.NewValidationError("title, assignedTo and status are required")
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if s.strictMembership {
		for _, userID := range in.AssignedTo {
			if !group.HasMember(userID) {
				return nil, models.NewValidationError("user %s is not a member of group %s", userID, groupID)
			}
		}
	}

	task := &models.Task{
		GroupID:     groupID,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      in.Status,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s created in group %s", task.ID, groupID)

	s.notifyAssignees(ctx, group, task)
	return task, nil
}

// UpdateTaskStatus lets an assigned member move a task that is not yet completed.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, groupID, taskID, requesterID, status string) (*models.Task, error) {
	if isBlank(status) {
		return nil, models.NewValidationError("the new status is required")
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(requesterID) {
		return nil, models.ErrNotGroupMember
	}

	task, err := s.tasks.FindByID(ctx, groupID, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanEdit(requesterID) {
		return nil, models.ErrTaskNotEditable
	}

	if err := s.tasks.UpdateStatus(ctx, groupID, taskID, status); err != nil {
		return nil, err
	}
	task.Status = status
	logging.Logger.Infof("Event ID: TASK_STATUS_UPDATED, Description: Task %s in group %s set to %s by %s", taskID, groupID, status, requesterID)
	return task, nil
}

func (s *TaskService) notifyAssignees(ctx context.Context, group *models.Group, task *models.Task) {
	if s.notifier == nil {
		return
	}
	message := fmt.Sprintf("You have been assigned to task %q in group %q", task.Title, group.Name)
	for _, userID := range task.AssignedTo {
		if err := s.notifier.Notify(ctx, userID, group.ID, task.ID, message); err != nil {
			logging.Logger.Errorf("Event ID: NOTIFICATION_FAILED, Description: Failed to notify user %s about task %s: %v", userID, task.ID, err)
		}
	}
}
