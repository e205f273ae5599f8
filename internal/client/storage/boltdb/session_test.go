package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/teamsync/internal/client/storage"
)

func TestSession_SaveAndGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	session := &storage.Session{
		Username:     "alice",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}

	err := store.SaveSession(ctx, session)
	require.NoError(t, err)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSession_SaveReplacesPrevious(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := &storage.Session{Username: "alice", AccessToken: "old"}
	require.NoError(t, store.SaveSession(ctx, first))

	second := &storage.Session{Username: "bob", AccessToken: "new"}
	require.NoError(t, store.SaveSession(ctx, second))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "new", got.AccessToken)
}

func TestSession_GetNotFound(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.GetSession(context.Background())

	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestSession_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	session := &storage.Session{Username: "alice", AccessToken: "access-token"}
	require.NoError(t, store.SaveSession(ctx, session))

	err := store.DeleteSession(ctx)
	require.NoError(t, err)

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSession_DeleteNotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.DeleteSession(context.Background())

	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	live := &storage.Session{ExpiresAt: now.Add(time.Hour).Unix()}
	assert.False(t, live.Expired(now))

	stale := &storage.Session{ExpiresAt: now.Add(-time.Hour).Unix()}
	assert.True(t, stale.Expired(now))
}
