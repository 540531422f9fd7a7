package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-backend/internal/apperrors"
	"school-backend/internal/application/command"
	"school-backend/internal/application/interfaces"
	"school-backend/internal/domain/repositories"
	"school-backend/internal/infrastructure/db"
	"school-backend/internal/logger"
)

type stubTokenIssuer struct{}

func (stubTokenIssuer) GenerateToken(userID uint) (string, error) {
	return "test-token", nil
}

func newTestUserService(t *testing.T) (interfaces.UserService, repositories.UserRepository) {
	t.Helper()

	conn, err := db.Open("", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	log, err := logger.New("", "test", "error")
	require.NoError(t, err)

	repo := db.NewUserRepository(conn)
	return NewUserService(repo, nil, stubTokenIssuer{}, log), repo
}

func createCmd(username, email string) *command.CreateUserCommand {
	return &command.CreateUserCommand{
		Username: username,
		Email:    email,
		FullName: "Test User",
		Password: "secret-password",
	}
}

func TestCreateUser_GetRoundtrip(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &command.CreateUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Doe",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Result)
	assert.NotZero(t, created.Result.ID)

	fetched, err := svc.FindUserByID(ctx, created.Result.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.Result.Username)
	assert.Equal(t, "alice@example.com", fetched.Result.Email)
	assert.Equal(t, "Alice Doe", fetched.Result.FullName)
}

func TestCreateUser_StoresHashedPassword(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, created.Result.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, stored.CheckPassword("secret-password"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, createCmd("someone-else", "alice@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	// the failed create must leave the store unchanged
	list, err := svc.ListUsers(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, list.Result, 1)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, createCmd("alice", "other@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

// Both uniqueness checks would fail; the email conflict wins because it is
// checked first.
func TestCreateUser_EmailConflictReportedFirst(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestCreateUser_ConflictScenario(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, createCmd("alice", "a@x.com"))
	require.NoError(t, err)
	second, err := svc.CreateUser(ctx, createCmd("bob", "b@x.com"))
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, createCmd("carol", "a@x.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	_, err = svc.CreateUser(ctx, createCmd("bob", "c@x.com"))
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	third, err := svc.CreateUser(ctx, createCmd("carol", "c@x.com"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Result.ID, third.Result.ID)
	assert.NotEqual(t, second.Result.ID, third.Result.ID)
	assert.Equal(t, uint(3), third.Result.ID)
}

func TestFindUserByID_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.FindUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser_PartialPreservesOtherFields(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)
	id := created.Result.ID

	before, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	newEmail := "alice+new@example.com"
	updated, err := svc.UpdateUser(ctx, id, &command.UpdateUserCommand{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Result.Email)

	after, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Username, after.Username)
	assert.Equal(t, before.FullName, after.FullName)
	assert.Equal(t, before.Password, after.Password)
	assert.Equal(t, newEmail, after.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	name := "ghost"
	_, err := svc.UpdateUser(context.Background(), 99, &command.UpdateUserCommand{Username: &name})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser_DuplicateRejectedByStore(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, createCmd("bob", "bob@example.com"))
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = svc.UpdateUser(ctx, bob.Result.ID, &command.UpdateUserCommand{Email: &taken})
	require.Error(t, err)
	domainErr, ok := apperrors.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CategoryConflict, domainErr.Category())
}

func TestDeleteUser_ThenGetNotFound(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.Result.ID))

	_, err = svc.FindUserByID(ctx, created.Result.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.DeleteUser(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListUsers_Pagination(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	usernames := []string{"u1", "u2", "u3", "u4", "u5"}
	for _, name := range usernames {
		_, err := svc.CreateUser(ctx, createCmd(name, name+"@example.com"))
		require.NoError(t, err)
	}

	page, err := svc.ListUsers(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page.Result, 2)
	assert.Equal(t, "u1", page.Result[0].Username)
	assert.Equal(t, "u2", page.Result[1].Username)

	page, err = svc.ListUsers(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, page.Result, 1)
	assert.Equal(t, "u5", page.Result[0].Username)

	page, err = svc.ListUsers(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Result)
}

func TestListUsers_StableOrdering(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := svc.CreateUser(ctx, createCmd(name, name+"@example.com"))
		require.NoError(t, err)
	}

	first, err := svc.ListUsers(ctx, 0, 10)
	require.NoError(t, err)
	second, err := svc.ListUsers(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, first.Result, second.Result)

	for i := 1; i < len(first.Result); i++ {
		assert.Less(t, first.Result[i-1].ID, first.Result[i].ID)
	}
}

func TestLoginUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, createCmd("alice", "alice@example.com"))
	require.NoError(t, err)

	result, err := svc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)
	assert.Equal(t, "alice", result.User.Username)

	_, err = svc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.LoginUser(ctx, &command.LoginUserCommand{Username: "nobody", Password: "secret-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
