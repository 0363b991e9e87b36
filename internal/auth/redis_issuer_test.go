package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/vital/internal/cryptox"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func testHasher(t *testing.T) *cryptox.CodeHasher {
	t.Helper()
	h, err := cryptox.NewCodeHasher([]byte("test-secret"))
	require.NoError(t, err)
	return h
}

func TestRedisIssuer_IssueVerifyRotate(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	box := &inbox{}
	r := NewRedisIssuer(client, time.Minute, testHasher(t), NewSequenceGenerator("111111", "222222"), box)

	require.NoError(t, r.Issue(ctx, "a@b.com"))
	assert.Equal(t, "111111", box.last())

	stored, err := mr.Get("vital:otp:a@b.com")
	require.NoError(t, err)
	assert.NotContains(t, stored, "111111", "codes are not stored in plain text")
	assert.Equal(t, testHasher(t).Digest("a@b.com", "111111"), stored)
	assert.Equal(t, time.Minute, mr.TTL("vital:otp:a@b.com"))

	ok, err := r.Verify(ctx, "a@b.com", "111111")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.Issue(ctx, "a@b.com"))
	ok, _ = r.Verify(ctx, "a@b.com", "111111")
	assert.False(t, ok)
	ok, _ = r.Verify(ctx, "a@b.com", "222222")
	assert.True(t, ok)
}

func TestRedisIssuer_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	r := NewRedisIssuer(client, 30*time.Second, testHasher(t), NewSequenceGenerator("123456"), &inbox{})

	require.NoError(t, r.Issue(ctx, "+15551234567"))
	mr.FastForward(31 * time.Second)

	ok, err := r.Verify(ctx, "+15551234567", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisIssuer_Revoke(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	r := NewRedisIssuer(client, 0, testHasher(t), NewSequenceGenerator("123456"), &inbox{})

	require.NoError(t, r.Issue(ctx, "a@b.com"))
	assert.Equal(t, DefaultCodeTTL, mr.TTL("vital:otp:a@b.com"))

	require.NoError(t, r.Revoke(ctx, "a@b.com"))
	assert.False(t, mr.Exists("vital:otp:a@b.com"))
	require.NoError(t, r.Revoke(ctx, "a@b.com"), "revoking twice is harmless")
}

func TestRedisIssuer_ServerDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	r := NewRedisIssuer(client, time.Minute, testHasher(t), NewSequenceGenerator("123456"), &inbox{})

	mr.Close()

	require.Error(t, r.Issue(ctx, "a@b.com"))
	_, err := r.Verify(ctx, "a@b.com", "123456")
	require.Error(t, err)
}

func TestMachineWithRedisIssuer(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()
	box := &inbox{}
	m := NewMachine(NewRedisIssuer(client, time.Minute, testHasher(t), RandomGenerator{}, box), WithDelays(Delays{}))

	require.NoError(t, m.SubmitCredentials(ctx, Draft{Identifier: "a@b.com", Password: "12345678", Name: "Acme Kitchen"}))
	user, err := m.VerifyCode(ctx, box.last())
	require.NoError(t, err)
	assert.Equal(t, "Acme Kitchen", user.Name)
}
