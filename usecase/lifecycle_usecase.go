package usecase

import (
	"context"
	"strconv"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/domain/repository"
	"video-field/infrastructure/logger"
)

// ILifecycleUseCase defines the record-lifecycle sync hooks. Saved/deleted
// hooks never return an error: a sync failure must not abort the record
// operation that triggered it.
type ILifecycleUseCase interface {
	OnRecordSaved(ctx context.Context, videoID string, record dto.RecordSnapshot, cfg model.FieldConfig) *model.SyncResult
	OnRecordDeleted(ctx context.Context, videoID string, cfg model.FieldConfig) *model.SyncResult
	// ValidateReference checks a video id before the record persists it.
	ValidateReference(ctx context.Context, videoID string) error
}

// LifecycleUseCase implements the sync hooks
type LifecycleUseCase struct {
	auth     IAuthUseCase
	provider repository.IVideoProvider
}

// NewLifecycleUseCase creates a new lifecycle use case instance
func NewLifecycleUseCase(auth IAuthUseCase, provider repository.IVideoProvider) ILifecycleUseCase {
	return &LifecycleUseCase{auth: auth, provider: provider}
}

// OnRecordSaved pushes the record's title and excerpt to the remote video
// when the field is configured to sync. One read plus one write per save.
func (uc *LifecycleUseCase) OnRecordSaved(ctx context.Context, videoID string, record dto.RecordSnapshot, cfg model.FieldConfig) *model.SyncResult {
	result := &model.SyncResult{Action: "saved", VideoID: videoID}
	if !cfg.SyncOnUpdate {
		result.Reason = "sync_on_update disabled"
		return result
	}
	if videoID == "" {
		result.Reason = "no video reference"
		return result
	}

	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return uc.failed(result, "credential unavailable", err)
	}
	snapshot, err := uc.provider.GetVideo(ctx, accessToken, videoID)
	if err != nil {
		return uc.failed(result, "failed to fetch remote video", err)
	}
	if snapshot == nil {
		return uc.failed(result, "remote video not found", nil)
	}

	snapshot.Title = record.Title
	// An empty excerpt keeps the remote description instead of blanking it
	if record.Excerpt != "" {
		snapshot.Description = record.Excerpt
	}
	if snapshot.CategoryID == "" && cfg.CategoryID > 0 {
		snapshot.CategoryID = strconv.Itoa(cfg.CategoryID)
	}

	if err := uc.provider.UpdateVideo(ctx, accessToken, snapshot); err != nil {
		return uc.failed(result, "failed to update remote video", err)
	}
	result.Synced = true
	return result
}

// OnRecordDeleted removes the remote video when the field is configured to
// delete on removal.
func (uc *LifecycleUseCase) OnRecordDeleted(ctx context.Context, videoID string, cfg model.FieldConfig) *model.SyncResult {
	result := &model.SyncResult{Action: "deleted", VideoID: videoID}
	if !cfg.DeleteOnRemove {
		result.Reason = "delete_on_remove disabled"
		return result
	}
	if videoID == "" {
		result.Reason = "no video reference"
		return result
	}

	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return uc.failed(result, "credential unavailable", err)
	}
	if err := uc.provider.DeleteVideo(ctx, accessToken, videoID); err != nil {
		return uc.failed(result, "failed to delete remote video", err)
	}
	result.Synced = true
	return result
}

func (uc *LifecycleUseCase) ValidateReference(ctx context.Context, videoID string) error {
	if videoID == "" {
		return &model.ReferenceNotFoundError{VideoID: videoID}
	}
	accessToken, err := uc.auth.EnsureValid(ctx)
	if err != nil {
		return err
	}
	snapshot, err := uc.provider.GetVideo(ctx, accessToken, videoID)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return &model.ReferenceNotFoundError{VideoID: videoID}
	}
	return nil
}

func (uc *LifecycleUseCase) failed(result *model.SyncResult, reason string, err error) *model.SyncResult {
	result.Reason = reason
	entry := logger.GetLogger().WithFields(map[string]interface{}{
		"action":   result.Action,
		"video_id": result.VideoID,
	})
	if err != nil {
		entry = entry.WithField("error", err)
	}
	entry.Warn("Video sync failed: " + reason)
	return result
}
