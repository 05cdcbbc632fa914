package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhisham/live-courses-frontend/internal/cache"
	"github.com/syedhisham/live-courses-frontend/internal/model"
)

type memIdentityCache struct {
	mu    sync.Mutex
	items map[string]cache.Identity
}

func newMemIdentityCache() *memIdentityCache {
	return &memIdentityCache{items: make(map[string]cache.Identity)}
}

func (c *memIdentityCache) Set(ctx context.Context, sessionID string, identity *cache.Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[sessionID] = *identity
	return nil
}

func (c *memIdentityCache) Get(ctx context.Context, sessionID string) (*cache.Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	identity, ok := c.items[sessionID]
	if !ok {
		return nil, cache.ErrNotFound
	}
	return &identity, nil
}

func (c *memIdentityCache) Delete(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, sessionID)
	return nil
}

func TestSaveAndCurrentRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemIdentityCache()
	provider := NewProvider(store)

	user := &model.UserSession{
		ID:    "u1",
		Name:  "Hira",
		Email: "hira@example.com",
		Role:  model.RoleInstructor,
	}
	require.NoError(t, provider.Save(ctx, "sid-1", user, "sid=backend-cookie"))

	got, credential, err := provider.Current(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "sid=backend-cookie", credential)
}

func TestCurrentUnknownSession(t *testing.T) {
	provider := NewProvider(newMemIdentityCache())
	_, _, err := provider.Current(context.Background(), "nope")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestClearForgetsSession(t *testing.T) {
	ctx := context.Background()
	provider := NewProvider(newMemIdentityCache())

	user := &model.UserSession{ID: "u2", Role: model.RoleStudent}
	require.NoError(t, provider.Save(ctx, "sid-2", user, "c"))
	require.NoError(t, provider.Clear(ctx, "sid-2"))

	_, _, err := provider.Current(ctx, "sid-2")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
