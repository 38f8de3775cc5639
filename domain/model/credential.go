package model

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// ProviderYouTube keys the single stored credential. The service holds one
// shared channel identity per installation, not one per end user.
const ProviderYouTube = "youtube"

// expirySkew treats tokens about to expire as already expired so a request
// never goes out with a token that dies mid-flight.
const expirySkew = 30 * time.Second

// Credential is the stored OAuth access/refresh token pair with expiry.
type Credential struct {
	Provider     string    `json:"provider"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scopes       string    `json:"scopes"` // space-separated
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Expired reports whether the access token needs a refresh before use.
// A zero expiry is treated as expired.
func (c *Credential) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return !now.Add(expirySkew).Before(c.ExpiresAt)
}

// CanRefresh reports whether a refresh is possible at all. A credential
// without a refresh token is invalid: the only way forward is re-authorization.
func (c *Credential) CanRefresh() bool {
	return c != nil && c.RefreshToken != ""
}

// Token converts the stored credential into an oauth2 token.
func (c *Credential) Token() *oauth2.Token {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    tokenType,
		Expiry:       c.ExpiresAt,
	}
}

// CredentialFromToken builds a Credential from a provider token response.
// The provider may omit the refresh token on refresh responses; in that case
// the previous refresh token is carried over.
func CredentialFromToken(tok *oauth2.Token, prev *Credential, scopes []string) *Credential {
	cred := &Credential{
		Provider:     ProviderYouTube,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    tok.Expiry,
		Scopes:       strings.Join(scopes, " "),
	}
	if cred.RefreshToken == "" && prev != nil {
		cred.RefreshToken = prev.RefreshToken
	}
	if prev != nil {
		cred.CreatedAt = prev.CreatedAt
		if cred.Scopes == "" {
			cred.Scopes = prev.Scopes
		}
	}
	return cred
}
