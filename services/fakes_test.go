package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charly15/back-task/models"
)

type fakeUsers struct {
	mu      sync.Mutex
	users   map[string]models.User
	nextID  int
	failErr error
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{users: map[string]models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindAll(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return models.ErrUsernameTaken
		}
	}
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUsers) UpdateRole(ctx context.Context, id string, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	if role == models.RoleAdmin {
		for otherID, other := range f.users {
			if otherID != id && other.Role == models.RoleAdmin {
				return models.ErrAdminExists
			}
		}
	}
	u.Role = role
	f.users[id] = u
	return nil
}

type fakeGroups struct {
	mu     sync.Mutex
	groups map[string]models.Group
	order  []string
	nextID int
}

func newFakeGroups(groups ...models.Group) *fakeGroups {
	f := &fakeGroups{groups: map[string]models.Group{}}
	for _, g := range groups {
		f.groups[g.ID] = g
		f.order = append(f.order, g.ID)
	}
	return f
}

func (f *fakeGroups) FindAll(ctx context.Context) ([]models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Group, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.groups[id])
	}
	return out, nil
}

func (f *fakeGroups) FindByID(ctx context.Context, id string) (*models.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.groups[id]
	if !ok {
		return nil, models.ErrGroupNotFound
	}
	return &g, nil
}

func (f *fakeGroups) Create(ctx context.Context, group *models.Group) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	group.ID = fmt.Sprintf("group-%d", f.nextID)
	f.groups[group.ID] = *group
	f.order = append(f.order, group.ID)
	return nil
}

func (f *fakeGroups) UpdateStatus(ctx context.Context, id, estatus string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.groups[id]
	if !ok {
		return models.ErrGroupNotFound
	}
	g.Estatus = estatus
	f.groups[id] = g
	return nil
}

type fakeTasks struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int
}

func (f *fakeTasks) FindByGroup(ctx context.Context, groupID string) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.GroupID == groupID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) FindByID(ctx context.Context, groupID, taskID string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.GroupID == groupID && t.ID == taskID {
			return &t, nil
		}
	}
	return nil, models.ErrTaskNotFound
}

func (f *fakeTasks) Create(ctx context.Context, task *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	task.ID = fmt.Sprintf("task-%d", f.nextID)
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTasks) UpdateStatus(ctx context.Context, groupID, taskID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.GroupID == groupID && t.ID == taskID {
			f.tasks[i].Status = status
			return nil
		}
	}
	return models.ErrTaskNotFound
}

type fakeNotifications struct {
	mu    sync.Mutex
	items []models.Notification
	err   error
}

func (f *fakeNotifications) Create(ctx context.Context, n *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	n.ID = fmt.Sprintf("n-%d", len(f.items)+1)
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotifications) FindByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Notification{}
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.items {
		if n.UserID == userID && n.ID == notificationID && n.CreatedAt.Equal(createdAt) {
			f.items[i].IsRead = true
			return nil
		}
	}
	return models.ErrNotificationNotFound
}
