package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryLocationStore(time.Minute)
	ctx := context.Background()

	// A miss is ("", nil), never an error.
	zip, err := store.GetLocation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, zip)

	require.NoError(t, store.SetLocation(ctx, "sess-1", "97202"))

	zip, err = store.GetLocation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "97202", zip)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	store := NewMemoryLocationStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.SetLocation(ctx, "sess-1", "97202"))
	require.NoError(t, store.SetLocation(ctx, "sess-1", "98101"))

	zip, err := store.GetLocation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "98101", zip)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryLocationStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.SetLocation(ctx, "sess-1", "97202"))
	time.Sleep(20 * time.Millisecond)

	zip, err := store.GetLocation(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, zip)
}

func TestMemoryStoreEmptySessionID(t *testing.T) {
	store := NewMemoryLocationStore(time.Minute)

	zip, err := store.GetLocation(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, zip)
}
