package service

import (
	"context"
	"testing"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	created, err := svc.Create(context.Background(), models.UserIn{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	// the repository must never see the plaintext
	assert.NotEqual(t, "plaintext-secret", persisted.HashedPassword)
	assert.True(t, utils.VerifyPassword("plaintext-secret", persisted.HashedPassword))
}

func TestUserCreate_RequiresUsernameAndPassword(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, logger.Nop())

	_, err := svc.Create(context.Background(), models.UserIn{Username: "", Password: "pwd"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), models.UserIn{Username: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserGetAll_Paginates(t *testing.T) {
	users := make([]models.User, 5)
	for i := range users {
		users[i] = models.User{ID: int64(i + 1)}
	}
	repo := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return users, nil
		},
	}

	svc := NewUserService(repo, logger.Nop())
	page, err := svc.GetAll(context.Background(), 2, 2)

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(3), page.Items[0].ID)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)
}
