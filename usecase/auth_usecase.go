package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/sync/singleflight"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/domain/repository"
	"video-field/infrastructure/configuration"
	"video-field/infrastructure/logger"
)

const stateTTL = 10 * time.Minute

// IAuthUseCase defines the OAuth credential lifecycle operations
type IAuthUseCase interface {
	// GetAuthorizationURL builds the provider consent URL and registers a
	// one-time state nonce.
	GetAuthorizationURL(ctx context.Context) (string, error)
	// HandleCallback validates the state and exchanges the one-time code
	// for a credential.
	HandleCallback(ctx context.Context, state, code string) error
	// EnsureValid returns an access token that is good for at least the
	// skew window, refreshing at most once.
	EnsureValid(ctx context.Context) (string, error)
	// Logout deletes the stored credential. The provider-side grant stays.
	Logout(ctx context.Context) error
	Status(ctx context.Context) (*dto.AuthStatusResponse, error)
	// CheckAndRefresh is the recurring-timer entry point; best effort.
	CheckAndRefresh(ctx context.Context)
}

// AuthUseCase implements the OAuth credential lifecycle
type AuthUseCase struct {
	youtubeConfig *configuration.YouTubeConfig
	store         repository.ICredentialStore
	states        repository.IStateStore
	provider      repository.IVideoProvider
	endpoint      oauth2.Endpoint
	group         singleflight.Group
	now           func() time.Time
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(cfg *configuration.YouTubeConfig, store repository.ICredentialStore, states repository.IStateStore, provider repository.IVideoProvider) *AuthUseCase {
	return &AuthUseCase{
		youtubeConfig: cfg,
		store:         store,
		states:        states,
		provider:      provider,
		endpoint:      google.Endpoint,
		now:           time.Now,
	}
}

// WithEndpoint overrides the provider token endpoint, for tests.
func (uc *AuthUseCase) WithEndpoint(endpoint oauth2.Endpoint) *AuthUseCase {
	uc.endpoint = endpoint
	return uc
}

// WithClock overrides the time source, for tests.
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// oauthConfig builds the oauth2 config, re-checking completeness on every
// call so a fixed deployment starts working without a restart.
func (uc *AuthUseCase) oauthConfig() (*oauth2.Config, error) {
	if missing := uc.youtubeConfig.Missing(); len(missing) > 0 {
		return nil, &model.ConfigurationError{Missing: missing}
	}
	return &oauth2.Config{
		ClientID:     uc.youtubeConfig.ClientID,
		ClientSecret: uc.youtubeConfig.ClientSecret,
		RedirectURL:  uc.youtubeConfig.RedirectURL,
		Scopes:       uc.youtubeConfig.Scopes,
		Endpoint:     uc.endpoint,
	}, nil
}

func (uc *AuthUseCase) GetAuthorizationURL(ctx context.Context) (string, error) {
	config, err := uc.oauthConfig()
	if err != nil {
		return "", err
	}
	state, err := generateState()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	if err := uc.states.Put(ctx, state, stateTTL); err != nil {
		return "", err
	}
	url := config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "select_account consent"),
	)
	return url, nil
}

func (uc *AuthUseCase) HandleCallback(ctx context.Context, state, code string) error {
	config, err := uc.oauthConfig()
	if err != nil {
		return err
	}
	ok, err := uc.states.Consume(ctx, state)
	if err != nil {
		return err
	}
	if !ok {
		return &model.AuthExchangeError{Err: fmt.Errorf("unknown or expired state")}
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return &model.AuthExchangeError{Err: err}
	}

	prev, err := uc.store.Get(ctx, model.ProviderYouTube)
	if err != nil {
		return err
	}
	cred := model.CredentialFromToken(token, prev, config.Scopes)
	if err := uc.store.Upsert(ctx, cred); err != nil {
		return err
	}
	logger.GetLogger().WithField("expires_at", cred.ExpiresAt).Info("YouTube credential stored")
	return nil
}

// EnsureValid loads the credential and refreshes it when expired. Concurrent
// callers hitting an expired token collapse to a single provider round-trip.
func (uc *AuthUseCase) EnsureValid(ctx context.Context) (string, error) {
	cred, err := uc.store.Get(ctx, model.ProviderYouTube)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", &model.TokenRefreshError{Reason: "no credential stored; authorize first"}
	}
	if !cred.Expired(uc.now()) {
		return cred.AccessToken, nil
	}
	if !cred.CanRefresh() {
		// No refresh token means the grant is unusable. Delete it without
		// touching the network so the caller sees a clean Unauthorized.
		if delErr := uc.store.Delete(ctx, model.ProviderYouTube); delErr != nil {
			logger.GetLogger().WithField("error", delErr).Error("Failed to delete credential without refresh token")
		}
		return "", &model.TokenRefreshError{Reason: "stored credential has no refresh token"}
	}

	token, err, _ := uc.group.Do(model.ProviderYouTube, func() (interface{}, error) {
		return uc.refresh(ctx, cred)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// refresh performs exactly one token-endpoint round-trip. A rejection means
// the grant is revoked or expired: the credential is deleted, never retried.
func (uc *AuthUseCase) refresh(ctx context.Context, cred *model.Credential) (string, error) {
	config, err := uc.oauthConfig()
	if err != nil {
		return "", err
	}
	token, err := config.TokenSource(ctx, cred.Token()).Token()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube token refresh rejected; deleting credential")
		if delErr := uc.store.Delete(ctx, model.ProviderYouTube); delErr != nil {
			logger.GetLogger().WithField("error", delErr).Error("Failed to delete rejected credential")
		}
		return "", &model.TokenRefreshError{Reason: "provider rejected refresh", Err: err}
	}

	updated := model.CredentialFromToken(token, cred, config.Scopes)
	if err := uc.store.Upsert(ctx, updated); err != nil {
		return "", err
	}
	return updated.AccessToken, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.store.Delete(ctx, model.ProviderYouTube)
}

func (uc *AuthUseCase) Status(ctx context.Context) (*dto.AuthStatusResponse, error) {
	accessToken, err := uc.EnsureValid(ctx)
	if err != nil {
		if _, ok := err.(*model.TokenRefreshError); ok {
			return &dto.AuthStatusResponse{Status: "unauthorized"}, nil
		}
		return nil, err
	}
	resp := &dto.AuthStatusResponse{Status: "authorized"}
	if info, infoErr := uc.provider.GetAccountInfo(ctx, accessToken); infoErr == nil {
		resp.Detail = info.Email
	} else {
		logger.GetLogger().WithField("error", infoErr).Warn("Failed to fetch account info for status")
	}
	return resp, nil
}

// CheckAndRefresh keeps the credential warm from the recurring timer. A miss
// is harmless; EnsureValid refreshes reactively on the next request.
func (uc *AuthUseCase) CheckAndRefresh(ctx context.Context) {
	if _, err := uc.EnsureValid(ctx); err != nil {
		if _, ok := err.(*model.TokenRefreshError); ok {
			logger.GetLogger().WithField("error", err).Debug("Scheduled token check: not authorized")
			return
		}
		logger.GetLogger().WithField("error", err).Warn("Scheduled token check failed")
	}
}

func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
