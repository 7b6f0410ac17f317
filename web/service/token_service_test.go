package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	service := TokenService{}

	token, err := service.Generate("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenTampered(t *testing.T) {
	service := TokenService{}

	token, err := service.Generate("alice")
	assert.NoError(t, err)

	_, err = service.Parse(token + "x")
	assert.Error(t, err)

	_, err = service.Parse("not-a-token")
	assert.Error(t, err)
}
