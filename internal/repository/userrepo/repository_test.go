package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/repository/repotest"
	"estocando/internal/repository/userrepo"
)

func strPtr(s string) *string { return &s }

func newRepo(t *testing.T) *userrepo.UserRepository {
	t.Helper()
	return userrepo.NewUserRepository(repotest.Open(t), 5*time.Second, logger.NewNop())
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.User{Name: "Ana", Email: strPtr("ana@estocando.app"), PasswordHash: strPtr("hash")})
	require.NoError(t, err)

	byEmail, err := repo.FindByEmail(ctx, "ana@estocando.app")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byEmail.ID)
	require.NotNil(t, byEmail.PasswordHash)
	assert.Equal(t, "hash", *byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name)
}

func TestUserRepository_DuplicateEmailIsConflict(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	_, err := repo.Save(ctx, domain.User{Name: "Ana", Email: strPtr("ana@estocando.app")})
	require.NoError(t, err)

	_, err = repo.Save(ctx, domain.User{Name: "Outra Ana", Email: strPtr("ana@estocando.app")})

	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestUserRepository_UserWithoutEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, domain.User{Name: "Operador 1"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.User{Name: "Operador 2"})
	require.NoError(t, err)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Nil(t, users[0].Email)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	saved, err := repo.Save(ctx, domain.User{Name: "Bia"})
	require.NoError(t, err)

	saved.Name = "Beatriz"
	saved.Email = strPtr("bia@estocando.app")
	updated, err := repo.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "Beatriz", updated.Name)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.FindByID(ctx, saved.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.IsType(t, &apperror.NotFoundError{}, repo.Delete(ctx, saved.ID))
}
