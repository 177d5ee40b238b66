package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore()

	missing, err := store.ByEmail(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown email resolves to no user")

	created, err := store.Create(ctx, "Reader@Example.com", "Robin")
	require.NoError(t, err)
	require.NotNil(t, created)

	found, err := store.ByEmail(ctx, "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, found, "email lookup is case-insensitive")
	assert.Equal(t, created.ID, found.ID)

	byID, err := store.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Robin", byID.FirstName)

	require.NoError(t, store.SetLoginMethod(ctx, created.ID, "google"))
	updated, err := store.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "google", updated.LoginMethod)

	assert.Equal(t, 1, store.Len())
}
