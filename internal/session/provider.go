package session

import (
	"context"

	"github.com/syedhisham/live-courses-frontend/internal/cache"
	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// Provider is the explicit session boundary: who the current user is, how
// they got persisted, and how to forget them. Persistence is restricted to
// the whitelisted identity fields; the serialize/deserialize step lives here.
type Provider interface {
	Current(ctx context.Context, sessionID string) (*model.UserSession, string, error)
	Save(ctx context.Context, sessionID string, user *model.UserSession, credential string) error
	Clear(ctx context.Context, sessionID string) error
}

type cacheProvider struct {
	identities cache.IdentityCache
}

// NewProvider creates a Provider backed by the identity cache.
func NewProvider(identities cache.IdentityCache) Provider {
	return &cacheProvider{identities: identities}
}

// Current returns the persisted user and their backend credential.
func (p *cacheProvider) Current(ctx context.Context, sessionID string) (*model.UserSession, string, error) {
	identity, err := p.identities.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	user := &model.UserSession{
		ID:    identity.UserID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  model.Role(identity.Role),
	}
	return user, identity.Credential, nil
}

// Save persists the whitelisted subset of user along with the credential.
func (p *cacheProvider) Save(ctx context.Context, sessionID string, user *model.UserSession, credential string) error {
	identity := &cache.Identity{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Credential: credential,
	}
	return p.identities.Set(ctx, sessionID, identity)
}

// Clear forgets the session.
func (p *cacheProvider) Clear(ctx context.Context, sessionID string) error {
	return p.identities.Delete(ctx, sessionID)
}
