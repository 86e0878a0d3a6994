package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionFrom(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sess := Session{Identity: testIdentity, ExpiresAt: now.Add(time.Hour)}
	ctx := WithSession(context.Background(), sess)

	got, ok := SessionFrom(ctx, now)
	assert.True(t, ok)
	assert.Equal(t, sess, got)

	_, ok = SessionFrom(ctx, now.Add(2*time.Hour))
	assert.False(t, ok, "expired session must not be returned")

	_, ok = SessionFrom(context.Background(), now)
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" ADMIN ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}
