package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/domain/repository"
)

// IUploadUseCase defines the browser-direct upload operations
type IUploadUseCase interface {
	// RequestUploadSession opens a resumable upload session and hands the
	// session URL to the browser.
	RequestUploadSession(ctx context.Context, req *dto.UploadSessionRequest) (*model.UploadSession, error)
	// ConfirmUploadedVideo resolves a freshly uploaded id into a validated
	// reference before the record persists it.
	ConfirmUploadedVideo(ctx context.Context, videoID string) (*model.VideoRef, error)
}

// UploadUseCase implements the upload session flow
type UploadUseCase struct {
	auth     IAuthUseCase
	broker   repository.IUploadBroker
	provider repository.IVideoProvider
}

// NewUploadUseCase creates a new upload use case instance
func NewUploadUseCase(auth IAuthUseCase, broker repository.IUploadBroker, provider repository.IVideoProvider) IUploadUseCase {
	return &UploadUseCase{auth: auth, broker: broker, provider: provider}
}

func (uc *UploadUseCase) RequestUploadSession(ctx context.Context, req *dto.UploadSessionRequest) (*model.UploadSession, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	privacy := req.PrivacyStatus
	if privacy == "" {
		privacy = model.PrivacyUnlisted
	}
	if !privacy.Valid() {
		return nil, fmt.Errorf("invalid privacy status %q", privacy)
	}
	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}

	meta := dto.UploadMetadata{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.CategoryID > 0 {
		meta.CategoryID = strconv.Itoa(req.CategoryID)
	}
	flags := dto.UploadStatusFlags{PrivacyStatus: privacy, MadeForKids: req.MadeForKids}
	return uc.broker.CreateSession(ctx, accessToken, meta, flags)
}

func (uc *UploadUseCase) ConfirmUploadedVideo(ctx context.Context, videoID string) (*model.VideoRef, error) {
	if videoID == "" {
		return nil, fmt.Errorf("video id is required")
	}
	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := uc.provider.GetVideo(ctx, accessToken, videoID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, &model.ReferenceNotFoundError{VideoID: videoID}
	}
	return &model.VideoRef{VideoID: snapshot.ID}, nil
}
