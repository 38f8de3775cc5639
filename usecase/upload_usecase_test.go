package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/usecase"
)

func TestUploadUseCase_RequestUploadSession(t *testing.T) {
	broker := new(MockUploadBroker)
	broker.On("CreateSession", mock.Anything, "token",
		dto.UploadMetadata{Title: "My talk", Description: "Recorded live", CategoryID: "27", Tags: []string{"go"}},
		dto.UploadStatusFlags{PrivacyStatus: model.PrivacyPrivate, MadeForKids: true},
	).Return(&model.UploadSession{UploadURL: "https://upload.example/session/abc"}, nil)

	uc := usecase.NewUploadUseCase(&stubAuth{token: "token"}, broker, new(MockVideoProvider))

	session, err := uc.RequestUploadSession(context.Background(), &dto.UploadSessionRequest{
		Title:         "My talk",
		Description:   "Recorded live",
		CategoryID:    27,
		Tags:          []string{"go"},
		PrivacyStatus: model.PrivacyPrivate,
		MadeForKids:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://upload.example/session/abc", session.UploadURL)
	broker.AssertExpectations(t)
}

func TestUploadUseCase_RequestUploadSession_DefaultsToUnlisted(t *testing.T) {
	broker := new(MockUploadBroker)
	broker.On("CreateSession", mock.Anything, "token", mock.Anything,
		dto.UploadStatusFlags{PrivacyStatus: model.PrivacyUnlisted},
	).Return(&model.UploadSession{UploadURL: "https://upload.example/session/abc"}, nil)

	uc := usecase.NewUploadUseCase(&stubAuth{token: "token"}, broker, new(MockVideoProvider))

	_, err := uc.RequestUploadSession(context.Background(), &dto.UploadSessionRequest{Title: "Untitled privacy"})
	require.NoError(t, err)
	broker.AssertExpectations(t)
}

func TestUploadUseCase_RequestUploadSession_TitleRequired(t *testing.T) {
	uc := usecase.NewUploadUseCase(&stubAuth{token: "token"}, new(MockUploadBroker), new(MockVideoProvider))

	_, err := uc.RequestUploadSession(context.Background(), &dto.UploadSessionRequest{Title: "   "})
	require.Error(t, err)
}

func TestUploadUseCase_RequestUploadSession_Unauthorized(t *testing.T) {
	authErr := &model.TokenRefreshError{Reason: "provider rejected refresh"}
	uc := usecase.NewUploadUseCase(&stubAuth{err: authErr}, new(MockUploadBroker), new(MockVideoProvider))

	_, err := uc.RequestUploadSession(context.Background(), &dto.UploadSessionRequest{Title: "My talk"})
	var refreshErr *model.TokenRefreshError
	require.ErrorAs(t, err, &refreshErr)
}

func TestUploadUseCase_ConfirmUploadedVideo(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("GetVideo", mock.Anything, "token", "vid-9").
		Return(&model.VideoSnapshot{ID: "vid-9", Title: "Fresh upload"}, nil)

	uc := usecase.NewUploadUseCase(&stubAuth{token: "token"}, new(MockUploadBroker), provider)

	ref, err := uc.ConfirmUploadedVideo(context.Background(), "vid-9")
	require.NoError(t, err)
	assert.Equal(t, &model.VideoRef{VideoID: "vid-9"}, ref)
}

func TestUploadUseCase_ConfirmUploadedVideo_NotFound(t *testing.T) {
	provider := new(MockVideoProvider)
	provider.On("GetVideo", mock.Anything, "token", "missing").Return(nil, nil)

	uc := usecase.NewUploadUseCase(&stubAuth{token: "token"}, new(MockUploadBroker), provider)

	_, err := uc.ConfirmUploadedVideo(context.Background(), "missing")
	var notFoundErr *model.ReferenceNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "missing", notFoundErr.VideoID)
}
