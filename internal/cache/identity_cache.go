package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no identity is cached for a session id.
var ErrNotFound = errors.New("identity not found")

// Identity is the persisted slice of a user session. Only the whitelisted
// fields (id, name, email, role) plus the backend credential survive a
// reload; everything else stays in memory.
type Identity struct {
	UserID     string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Credential string `json:"credential"`
}

type IdentityCache interface {
	Set(ctx context.Context, sessionID string, identity *Identity) error
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

type identityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdentityCache creates a redis-backed identity cache with the given TTL.
func NewIdentityCache(client *redis.Client, ttl time.Duration) IdentityCache {
	return &identityCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *identityCache) Set(ctx context.Context, sessionID string, identity *Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "user_session:"+sessionID, data, c.ttl).Err()
}

func (c *identityCache) Get(ctx context.Context, sessionID string) (*Identity, error) {
	data, err := c.client.Get(ctx, "user_session:"+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var identity Identity
	err = json.Unmarshal([]byte(data), &identity)
	return &identity, err
}

func (c *identityCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "user_session:"+sessionID).Err()
}
