package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLookup(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token := store.Create("admin")
	require.NotEmpty(t, token)

	username, ok := store.Lookup(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)

	_, ok = store.Lookup("not-a-token")
	assert.False(t, ok)
	_, ok = store.Lookup("")
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(5 * time.Millisecond)

	token := store.Create("admin")
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Lookup(token)
	assert.False(t, ok)
}

func TestSessionStoreDestroy(t *testing.T) {
	store := NewSessionStore(time.Hour)

	token := store.Create("admin")
	store.Destroy(token)

	_, ok := store.Lookup(token)
	assert.False(t, ok)
}
