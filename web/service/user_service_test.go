package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	err := service.Register("alice", "wonderland")
	assert.NoError(t, err)
	assert.True(t, service.Exists("alice"))

	// Same username twice: first succeeds, second conflicts
	err = service.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Usernames are case-sensitive
	assert.False(t, service.Exists("Alice"))

	assert.True(t, service.Verify("alice", "wonderland"))
	assert.False(t, service.Verify("alice", "wrong"))
	assert.False(t, service.Verify("bob", "wonderland"))

	user := service.CheckUser("alice", "wonderland")
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	// Stored password is a hash, never the plaintext
	assert.NotEqual(t, "wonderland", user.Password)
}

func TestRegisterMissingFields(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	assert.ErrorIs(t, service.Register("", "secret"), ErrMissingField)
	assert.ErrorIs(t, service.Register("carol", ""), ErrMissingField)

	// No directory mutation on failed registration
	assert.False(t, service.Exists("carol"))
}
