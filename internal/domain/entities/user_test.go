package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatedUser(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "Alice Doe", "secret")
	validated, err := NewValidatedUser(user)
	require.NoError(t, err)
	assert.Equal(t, user, validated.GetUser())

	_, err = NewValidatedUser(NewUser("", "alice@example.com", "", "secret"))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("alice", "", "", "secret"))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("alice", "alice@example.com", "", ""))
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "", "secret-password")
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "secret-password", user.Password)
	assert.NoError(t, user.CheckPassword("secret-password"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestApplyPartial(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "Alice Doe", "secret-password")
	require.NoError(t, user.HashPassword())
	originalPassword := user.Password

	newName := "Alice Q. Doe"
	require.NoError(t, user.ApplyPartial(nil, nil, &newName, nil))

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice Q. Doe", user.FullName)
	assert.Equal(t, originalPassword, user.Password)
}

func TestApplyPartial_RehashesPassword(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "", "old-password")
	require.NoError(t, user.HashPassword())

	newPassword := "new-password"
	require.NoError(t, user.ApplyPartial(nil, nil, nil, &newPassword))

	assert.NoError(t, user.CheckPassword("new-password"))
	assert.Error(t, user.CheckPassword("old-password"))
}

func TestApplyPartial_RejectsEmptyRequiredField(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "", "secret-password")
	require.NoError(t, user.HashPassword())

	empty := ""
	assert.Error(t, user.ApplyPartial(&empty, nil, nil, nil))
}
