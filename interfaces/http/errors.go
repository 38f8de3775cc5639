package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-field/domain/model"
	"video-field/infrastructure/logger"
)

// respondError maps domain errors onto HTTP responses. Validation-category
// errors keep their message; infrastructure failures log the full cause and
// return a generic message so provider internals never leak to the frontend.
func respondError(ctx *gin.Context, err error) {
	var (
		configErr   *model.ConfigurationError
		exchangeErr *model.AuthExchangeError
		refreshErr  *model.TokenRefreshError
		quotaErr    *model.QuotaOrPermissionError
		emptyErr    *model.EmptyResultError
		notFoundErr *model.ReferenceNotFoundError
		uploadErr   *model.UploadInitError
	)
	switch {
	case errors.As(err, &configErr):
		logger.GetLogger().WithField("error", err).Error("YouTube integration not configured")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "configuration_error",
			"message": "YouTube integration is not configured",
		})
	case errors.As(err, &exchangeErr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "auth_exchange_failed",
			"message": "Authorization failed, please start over",
		})
	case errors.As(err, &refreshErr):
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": "YouTube account is not connected",
		})
	case errors.As(err, &emptyErr):
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "empty_result",
			"message": err.Error(),
		})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "reference_not_found",
			"message": err.Error(),
		})
	case errors.As(err, &quotaErr):
		logger.GetLogger().WithFields(map[string]interface{}{
			"status_code": quotaErr.StatusCode,
			"provider":    quotaErr.Message,
		}).Error("Provider rejected request")
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "provider_rejected",
			"message": "YouTube rejected the request",
		})
	case errors.As(err, &uploadErr):
		logger.GetLogger().WithField("error", err).Error("Upload session initiation failed")
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "upload_init_failed",
			"message": "Could not open an upload session",
		})
	default:
		logger.GetLogger().WithField("error", err).Error("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Something went wrong",
		})
	}
}
