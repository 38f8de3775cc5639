package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-field/domain/dto"
	"video-field/domain/model"
	"video-field/usecase"
)

// IVideoFieldHandler defines the video field operations exposed to the
// content-management frontend and its record hooks.
type IVideoFieldHandler interface {
	RequestUploadSession(ctx *gin.Context)
	ConfirmUploadedVideo(ctx *gin.Context)
	ListPlaylists(ctx *gin.Context)
	ListPlaylistVideos(ctx *gin.Context)
	RecordSaved(ctx *gin.Context)
	RecordDeleted(ctx *gin.Context)
	ValidateReference(ctx *gin.Context)
}

// VideoFieldHandler implements the video field endpoints
type VideoFieldHandler struct {
	uploadUseCase    usecase.IUploadUseCase
	catalogUseCase   usecase.ICatalogUseCase
	lifecycleUseCase usecase.ILifecycleUseCase
}

// NewVideoFieldHandler creates a new video field handler
func NewVideoFieldHandler(uploadUseCase usecase.IUploadUseCase, catalogUseCase usecase.ICatalogUseCase, lifecycleUseCase usecase.ILifecycleUseCase) IVideoFieldHandler {
	return &VideoFieldHandler{
		uploadUseCase:    uploadUseCase,
		catalogUseCase:   catalogUseCase,
		lifecycleUseCase: lifecycleUseCase,
	}
}

// RequestUploadSession handles POST /api/youtube/upload-session
func (h *VideoFieldHandler) RequestUploadSession(ctx *gin.Context) {
	var req dto.UploadSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "Invalid request body"})
		return
	}
	session, err := h.uploadUseCase.RequestUploadSession(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    session,
	})
}

// ConfirmUploadedVideo handles POST /api/youtube/videos/confirm
func (h *VideoFieldHandler) ConfirmUploadedVideo(ctx *gin.Context) {
	var req dto.ConfirmVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "Invalid request body"})
		return
	}
	ref, err := h.uploadUseCase.ConfirmUploadedVideo(ctx.Request.Context(), req.VideoID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ref,
	})
}

// ListPlaylists handles GET /api/youtube/playlists?privacy_status=
func (h *VideoFieldHandler) ListPlaylists(ctx *gin.Context) {
	privacy := model.PrivacyStatus(ctx.DefaultQuery("privacy_status", string(model.PrivacyUnlisted)))
	playlists, err := h.catalogUseCase.ListPlaylists(ctx.Request.Context(), privacy)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    playlists,
	})
}

// ListPlaylistVideos handles GET /api/youtube/playlists/:playlistId/videos?privacy_status=
func (h *VideoFieldHandler) ListPlaylistVideos(ctx *gin.Context) {
	playlistID := ctx.Param("playlistId")
	privacy := model.PrivacyStatus(ctx.DefaultQuery("privacy_status", string(model.PrivacyUnlisted)))
	videos, err := h.catalogUseCase.ListPlaylistVideos(ctx.Request.Context(), playlistID, privacy)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    videos,
	})
}

// RecordSaved handles POST /api/records/hooks/saved
func (h *VideoFieldHandler) RecordSaved(ctx *gin.Context) {
	var req dto.RecordSavedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "Invalid request body"})
		return
	}
	result := h.lifecycleUseCase.OnRecordSaved(ctx.Request.Context(), req.VideoID, req.Record, req.Field)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// RecordDeleted handles POST /api/records/hooks/deleted
func (h *VideoFieldHandler) RecordDeleted(ctx *gin.Context) {
	var req dto.RecordDeletedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "Invalid request body"})
		return
	}
	result := h.lifecycleUseCase.OnRecordDeleted(ctx.Request.Context(), req.VideoID, req.Field)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// ValidateReference handles POST /api/records/hooks/validate
func (h *VideoFieldHandler) ValidateReference(ctx *gin.Context) {
	var req dto.ValidateReferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": "Invalid request body"})
		return
	}
	if err := h.lifecycleUseCase.ValidateReference(ctx.Request.Context(), req.VideoID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    model.VideoRef{VideoID: req.VideoID},
	})
}
