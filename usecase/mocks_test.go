package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"video-field/domain/dto"
	"video-field/domain/model"
)

// Mock implementations
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Get(ctx context.Context, provider string) (*model.Credential, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Credential), args.Error(1)
}

func (m *MockCredentialStore) Upsert(ctx context.Context, cred *model.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *MockCredentialStore) Delete(ctx context.Context, provider string) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	args := m.Called(ctx, state, ttl)
	return args.Error(0)
}

func (m *MockStateStore) Consume(ctx context.Context, state string) (bool, error) {
	args := m.Called(ctx, state)
	return args.Bool(0), args.Error(1)
}

type MockVideoProvider struct {
	mock.Mock
}

func (m *MockVideoProvider) ListPlaylists(ctx context.Context, accessToken string) ([]model.PlaylistEntry, string, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]model.PlaylistEntry), args.String(1), args.Error(2)
}

func (m *MockVideoProvider) ListPlaylistItems(ctx context.Context, accessToken, playlistID string) ([]model.VideoEntry, string, error) {
	args := m.Called(ctx, accessToken, playlistID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]model.VideoEntry), args.String(1), args.Error(2)
}

func (m *MockVideoProvider) GetVideo(ctx context.Context, accessToken, videoID string) (*model.VideoSnapshot, error) {
	args := m.Called(ctx, accessToken, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoSnapshot), args.Error(1)
}

func (m *MockVideoProvider) UpdateVideo(ctx context.Context, accessToken string, snapshot *model.VideoSnapshot) error {
	args := m.Called(ctx, accessToken, snapshot)
	return args.Error(0)
}

func (m *MockVideoProvider) DeleteVideo(ctx context.Context, accessToken, videoID string) error {
	args := m.Called(ctx, accessToken, videoID)
	return args.Error(0)
}

func (m *MockVideoProvider) GetAccountInfo(ctx context.Context, accessToken string) (*model.AccountInfo, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountInfo), args.Error(1)
}

type MockUploadBroker struct {
	mock.Mock
}

func (m *MockUploadBroker) CreateSession(ctx context.Context, accessToken string, meta dto.UploadMetadata, flags dto.UploadStatusFlags) (*model.UploadSession, error) {
	args := m.Called(ctx, accessToken, meta, flags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadSession), args.Error(1)
}

// stubAuth satisfies IAuthUseCase with a fixed token or error, for tests of
// use cases that only need EnsureValid.
type stubAuth struct {
	token string
	err   error
}

func (s *stubAuth) GetAuthorizationURL(ctx context.Context) (string, error) { return "", s.err }
func (s *stubAuth) HandleCallback(ctx context.Context, state, code string) error {
	return s.err
}
func (s *stubAuth) EnsureValid(ctx context.Context) (string, error) { return s.token, s.err }
func (s *stubAuth) Logout(ctx context.Context) error                { return s.err }
func (s *stubAuth) Status(ctx context.Context) (*dto.AuthStatusResponse, error) {
	return nil, s.err
}
func (s *stubAuth) CheckAndRefresh(ctx context.Context) {}
