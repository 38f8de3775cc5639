package youtube

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"video-field/domain/model"
)

// classifyError converts googleapi errors into the domain taxonomy. Quota
// and permission rejections keep the provider's own message; everything else
// passes through for the caller to wrap.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return &model.QuotaOrPermissionError{StatusCode: gerr.Code, Message: gerr.Message}
	}
	return err
}

// isNotFound reports whether the provider said the resource does not exist.
func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
