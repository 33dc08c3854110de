package repositories

import (
	"sync"
	"testing"

	"github.com/charly15/back-task/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := requireStore(t)
	repo := testStore.Users()

	user := &models.User{Username: "alice", Role: models.RoleMember, Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, models.RoleMember, byID.Role)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "hash", byName.Password)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Password, "password hash must not be loaded for listings")
}

func TestUserRepository_FindByID_Missing(t *testing.T) {
	ctx := requireStore(t)
	repo := testStore.Users()

	_, err := repo.FindByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	ctx := requireStore(t)

	users, err := testStore.Users().FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	ctx := requireStore(t)
	repo := testStore.Users()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "bob", Role: models.RoleMember}))
	err := repo.Create(ctx, &models.User{Username: "bob", Role: models.RoleMember})
	assert.ErrorIs(t, err, models.ErrUsernameTaken)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	ctx := requireStore(t)
	repo := testStore.Users()

	first := &models.User{Username: "first", Role: models.RoleMember}
	second := &models.User{Username: "second", Role: models.RoleMember}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.UpdateRole(ctx, first.ID, models.RoleAdmin))
	count, err := repo.CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = repo.UpdateRole(ctx, second.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrAdminExists)

	// Re-applying admin to the current admin is not a second admin.
	require.NoError(t, repo.UpdateRole(ctx, first.ID, models.RoleAdmin))

	err = repo.UpdateRole(ctx, "missing", models.RoleMember)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_UpdateRole_ConcurrentPromotionsLeaveOneAdmin(t *testing.T) {
	ctx := requireStore(t)
	repo := testStore.Users()

	const contenders = 8
	ids := make([]string, contenders)
	for i := range ids {
		u := &models.User{Username: "contender-" + string(rune('a'+i)), Role: models.RoleMember}
		require.NoError(t, repo.Create(ctx, u))
		ids[i] = u.ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := repo.UpdateRole(ctx, id, models.RoleAdmin); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, models.ErrAdminExists)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	count, err := repo.CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
