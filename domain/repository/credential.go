package repository

import (
	"context"
	"time"

	"video-field/domain/model"
)

// ICredentialStore persists the single shared provider credential.
type ICredentialStore interface {
	// Get returns (nil, nil) when no credential is stored for the provider.
	Get(ctx context.Context, provider string) (*model.Credential, error)
	Upsert(ctx context.Context, cred *model.Credential) error
	Delete(ctx context.Context, provider string) error
}

// IStateStore holds short-lived OAuth state nonces between the authorize
// redirect and the callback.
type IStateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	// Consume removes the state and reports whether it existed. A state is
	// valid exactly once.
	Consume(ctx context.Context, state string) (bool, error)
}
