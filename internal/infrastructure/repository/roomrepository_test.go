package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsportal/opsportal/internal/domain/directory"
	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/infrastructure/persistence/models"
	"github.com/opsportal/opsportal/internal/shared/authorization"
)

func TestRoomRepository_CRUD(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRoomRepository(gdb)
	ctx := context.Background()

	rm, err := room.NewRoom("Aurora", 12, room.SeatingBoardroom, true, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rm))
	require.NotZero(t, rm.ID())

	require.NoError(t, rm.Update("Aurora", 16, room.SeatingUShape, false, "/img/aurora.png"))
	require.NoError(t, repo.Update(ctx, rm))

	got, err := repo.GetByName(ctx, "Aurora")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 16, got.Capacity())
	assert.Equal(t, room.SeatingUShape, got.Seating())
	assert.False(t, got.HasPresentation())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, rm.ID()))
	got, err = repo.GetByID(ctx, rm.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserDirectoryRepository_FindByIDs(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserDirectoryRepository(gdb)
	ctx := context.Background()

	wing := uint(3)
	require.NoError(t, gdb.Create(&[]models.UserModel{
		{Name: "Ada", Email: "ada@example.com", Role: "admin", WingID: &wing},
		{Name: "Bo", Email: "bo@example.com", Role: "staff"},
	}).Error)

	users, err := repo.FindByIDs(ctx, []uint{1, 2, 77})
	require.NoError(t, err)
	require.Len(t, users, 2)

	byID := make(map[uint]*directory.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	assert.Equal(t, authorization.RoleAdmin, byID[1].Role)
	assert.Equal(t, &wing, byID[1].WingID)

	missing, err := repo.GetByID(ctx, 77)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
