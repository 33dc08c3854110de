package services

import (
	"context"
	"strings"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the username lookups issued for one request.
const maxConcurrentLookups = 8

// UsernameResolver resolves a user id to a username, falling back to a sentinel.
type UsernameResolver interface {
	ResolveUsername(ctx context.Context, userID, fallback string) (string, error)
}

type GroupService struct {
	groups           GroupRepository
	tasks            TaskRepository
	directory        UsernameResolver
	strictMembership bool
}

// NewGroupService wires the group service. With strictMembership set, only members
// may change a group's status.
func NewGroupService(groups GroupRepository, tasks TaskRepository, directory UsernameResolver, strictMembership bool) *GroupService {
	return &GroupService{
		groups:           groups,
		tasks:            tasks,
		directory:        directory,
		strictMembership: strictMembership,
	}
}

// ListGroups returns all groups with the creator's current username.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groups.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	creators := make([]string, len(groups))
	for i, g := range groups {
		creators[i] = g.CreatedBy
	}
	names, err := s.resolveAll(ctx, creators, models.UnknownCreatorUsername)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].CreatedByUsername = names[i]
	}
	return groups, nil
}

// CreateGroup validates the input, snapshots member and creator usernames and stores the group.
func (s *GroupService) CreateGroup(ctx context.Context, in models.CreateGroupInput) (*models.Group, error) {
	if err := validateCreateGroup(in); err != nil {
		return nil, err
	}

	names, err := s.resolveAll(ctx, in.Members, models.UnknownMemberUsername)
	if err != nil {
		return nil, err
	}
	members := make([]models.Member, len(in.Members))
	for i, id := range in.Members {
		members[i] = models.Member{ID: id, Username: names[i]}
	}

	creator, err := s.directory.ResolveUsername(ctx, in.CreatedBy, models.UnknownCreatorUsername)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:              in.Name,
		Description:       in.Description,
		Members:           members,
		CreatedBy:         in.CreatedBy,
		CreatedByUsername: creator,
		Estatus:           in.Estatus,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: GROUP_CREATED, Description: Group %s (%s) created by %s with %d members", group.ID, group.Name, group.CreatedBy, len(members))
	return group, nil
}

func validateCreateGroup(in models.CreateGroupInput) error {
	var missing []string
	if isBlank(in.Name) {
		missing = append(missing, "name")
	}
	if isBlank(in.Description) {
		missing = append(missing, "description")
	}
	if len(in.Members) == 0 {
		missing = append(missing, "members")
	}
	if isBlank(in.CreatedBy) {
		missing = append(missing, "createdBy")
	}
	if isBlank(in.Estatus) {
		missing = append(missing, "estatus")
	}
	if len(missing) > 0 {
		return models.NewValidationError("all fields are required, missing: %s", strings.Join(missing, ", "))
	}
	for _, id := range in.Members {
		if isBlank(id) {
			return models.NewValidationError("member ids cannot be blank")
		}
	}
	return nil
}

// ListGroupTasks returns the group's tasks as seen by requesterID, who must be a member.
func (s *GroupService) ListGroupTasks(ctx context.Context, groupID, requesterID string) ([]models.TaskView, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(requesterID) {
		logging.Logger.Warnf("Event ID: GROUP_ACCESS_DENIED, Description: User %s is not a member of group %s", requesterID, groupID)
		return nil, models.ErrNotGroupMember
	}

	tasks, err := s.tasks.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, models.TaskView{Task: t, CanEdit: t.CanEdit(requesterID)})
	}
	return views, nil
}

// UpdateGroupStatus changes only the group's estatus field.
func (s *GroupService) UpdateGroupStatus(ctx context.Context, groupID, requesterID, estatus string) error {
	if isBlank(estatus) {
		return models.NewValidationError("the new estatus is required")
	}

	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if s.strictMembership && !group.HasMember(requesterID) {
		return models.ErrNotGroupMember
	}

	if err := s.groups.UpdateStatus(ctx, groupID, estatus); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: GROUP_STATUS_UPDATED, Description: Group %s status set to %s by %s", groupID, estatus, requesterID)
	return nil
}

// resolveAll resolves ids concurrently and returns usernames in input order.
func (s *GroupService) resolveAll(ctx context.Context, ids []string, fallback string) ([]string, error) {
	names := make([]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids {
		g.Go(func() error {
			name, err := s.directory.ResolveUsername(gctx, id, fallback)
			if err != nil {
				return err
			}
			names[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
