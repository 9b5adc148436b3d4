package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	user, err := CreateUser("genius", "genius@example.com", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.Equal(t, ROLE_USER, user.Role)
	assert.Equal(t, STATUS_ACTIVE, user.Status)
	assert.True(t, user.IsActive())
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("ab", "genius@example.com", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("genius", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("genius", "genius@example.com", "short")
	assert.Error(t, err)
}
