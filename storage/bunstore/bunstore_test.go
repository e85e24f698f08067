package bunstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	portal "github.com/swdepot/go-portal"
	"github.com/swdepot/go-portal/storage/bunstore"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := bunstore.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	value, err := store.Get(ctx, portal.StorageKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.Set(ctx, portal.StorageKeyToken, "tok"))

	value, err = store.Get(ctx, portal.StorageKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	// upsert replaces in place
	require.NoError(t, store.Set(ctx, portal.StorageKeyToken, "tok-2"))
	value, err = store.Get(ctx, portal.StorageKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", value)

	require.NoError(t, store.Delete(ctx, portal.StorageKeyToken))
	value, err = store.Get(ctx, portal.StorageKeyToken)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestStoreDeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := bunstore.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Delete(ctx, "absent"))
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "session.db")

	store, err := bunstore.Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, portal.StorageKeyUserInfo, `{"username":"alice"}`))
	require.NoError(t, store.Close())

	reopened, err := bunstore.Open(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, portal.StorageKeyUserInfo)
	require.NoError(t, err)
	assert.Equal(t, `{"username":"alice"}`, value)
}

func TestStoreBacksSessionStore(t *testing.T) {
	ctx := context.Background()
	store, err := bunstore.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	session := portal.NewSessionStore(ctx, store)
	require.NoError(t, session.SetToken(ctx, "tok"))
	require.NoError(t, session.SetUserInfo(ctx, &portal.Profile{Username: "alice", Role: portal.RoleOps}))

	restored := portal.NewSessionStore(ctx, store)
	assert.Equal(t, "tok", restored.Token())
	require.NotNil(t, restored.UserInfo())
	assert.Equal(t, "alice", restored.UserInfo().Username)
	assert.True(t, restored.IsOps())
}
