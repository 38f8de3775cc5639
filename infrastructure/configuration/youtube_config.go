package configuration

import (
	"fmt"
	"os"
	"strings"
)

// defaultScopes cover reading channel data, managing videos, and uploading.
var defaultScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/youtube.readonly",
	"https://www.googleapis.com/auth/youtube.force-ssl",
	"https://www.googleapis.com/auth/youtube.upload",
}

const defaultUploadBase = "https://www.googleapis.com"

// YouTubeConfig holds the OAuth client settings for the YouTube integration.
// Tokens are not part of it; they live in the credential store.
type YouTubeConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	UploadBase   string
	Scopes       []string
}

// GetYouTubeConfig resolves the OAuth client settings from the JSON config
// with environment variable fallback. It never fails: completeness is checked
// per authorization attempt so a fixed deployment works without a restart.
func GetYouTubeConfig() *YouTubeConfig {
	scheme := "http"
	if C.App.TLSEnabled {
		scheme = "https"
	}
	port := C.App.Port
	if port == 0 {
		port = 10002
	}
	defaultRedirect := fmt.Sprintf("%s://localhost:%d/auth/youtube/callback", scheme, port)

	config := &YouTubeConfig{
		ClientID:     getConfigValue(C.YouTube.ClientID, "YOUTUBE_CLIENT_ID", ""),
		ClientSecret: getConfigValue(C.YouTube.ClientSecret, "YOUTUBE_CLIENT_SECRET", ""),
		RedirectURL:  getConfigValue(C.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URL", defaultRedirect),
		UploadBase:   getConfigValue(C.YouTube.UploadBase, "YOUTUBE_UPLOAD_BASE", defaultUploadBase),
		Scopes:       C.YouTube.Scopes,
	}
	if len(config.Scopes) == 0 {
		config.Scopes = defaultScopes
	}
	return config
}

// Missing lists the settings an authorization flow cannot run without.
func (c *YouTubeConfig) Missing() []string {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RedirectURL == "" {
		missing = append(missing, "redirect_url")
	}
	return missing
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Placeholder values from config templates do not count as configured
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
