package model

import (
	"fmt"
	"strings"
)

// ConfigurationError reports missing OAuth client settings. It blocks every
// authorization attempt until the deployment is fixed.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("oauth client not configured: missing %s", strings.Join(e.Missing, ", "))
}

// AuthExchangeError means the provider rejected the one-time authorization
// code (expired, already used, or redirect URI mismatch). The user must start
// the authorize flow again.
type AuthExchangeError struct {
	Err error
}

func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("authorization code exchange failed: %v", e.Err)
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }

// TokenRefreshError means the stored credential can no longer be refreshed.
// The caller must treat this as "no longer authorized" and re-trigger the
// authorize flow, not retry.
type TokenRefreshError struct {
	Reason string
	Err    error
}

func (e *TokenRefreshError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token refresh failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token refresh failed: %s", e.Reason)
}

func (e *TokenRefreshError) Unwrap() error { return e.Err }

// QuotaOrPermissionError carries a provider quota or permission rejection.
// Message is the provider's own error.message when the response body parsed
// as JSON, otherwise the raw text. Never retried.
type QuotaOrPermissionError struct {
	StatusCode int
	Message    string
}

func (e *QuotaOrPermissionError) Error() string {
	return fmt.Sprintf("provider rejected request (%d): %s", e.StatusCode, e.Message)
}

// EmptyResultError means a video query for a chosen playlist matched nothing.
// Distinct from "zero playlists", which is a valid empty listing: the caller
// surfaces "nothing available" rather than a generic failure.
type EmptyResultError struct {
	PlaylistID string
	Privacy    PrivacyStatus
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s videos in playlist %s", e.Privacy, e.PlaylistID)
}

// ReferenceNotFoundError means a video id could not be resolved under the
// current credential. Surfaced to the end user as a validation error.
type ReferenceNotFoundError struct {
	VideoID string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("video %s not found on the connected channel", e.VideoID)
}

// UploadInitError means the resumable-upload initiation violated the provider
// contract, typically a missing Location header. Not retried automatically.
type UploadInitError struct {
	Reason string
	Err    error
}

func (e *UploadInitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload session init failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("upload session init failed: %s", e.Reason)
}

func (e *UploadInitError) Unwrap() error { return e.Err }
