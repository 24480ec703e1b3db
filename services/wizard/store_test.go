package wizard

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client, 30*time.Minute), mr
}

func TestSessionStoreSaveGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	fl := threeStepFlow()
	w := New(fl, nil)
	w.Update(FormData{"required": "yes"})
	require.Nil(t, w.Next())
	sess := NewSession(w)

	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, loaded.SessionID)
	assert.Equal(t, fl.Name, loaded.Flow)
	assert.Equal(t, 2, loaded.CurrentStep)
	assert.Equal(t, "yes", loaded.FormData.String("required"))
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := NewSession(New(threeStepFlow(), nil))
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(31 * time.Minute)

	_, err := store.Get(ctx, sess.SessionID)
	assert.Error(t, err, "an expired session is simply gone")
}

func TestSessionStoreSaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := NewSession(New(threeStepFlow(), nil))
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(20 * time.Minute)
	require.NoError(t, store.Save(ctx, sess))
	mr.FastForward(20 * time.Minute)

	_, err := store.Get(ctx, sess.SessionID)
	assert.NoError(t, err, "each save restarts the inactivity clock")
}

func TestSessionStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := NewSession(New(threeStepFlow(), nil))
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.SessionID))

	_, err := store.Get(ctx, sess.SessionID)
	assert.Error(t, err)
}

func TestSessionStoreGetUnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.Error(t, err)
}
