package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"video-field/domain/model"
)

// CredentialRepository stores the single provider credential in PostgreSQL.
// The table is keyed by provider, so there is at most one row per platform.
type CredentialRepository struct{ db *sql.DB }

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Upsert(ctx context.Context, cred *model.Credential) error {
	now := time.Now().UTC()
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now
	q := `INSERT INTO provider_credentials (provider, access_token, refresh_token, token_type, expires_at, scopes, created_at, updated_at)
		  VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		  ON CONFLICT (provider) DO UPDATE SET
			access_token=EXCLUDED.access_token,
			refresh_token=EXCLUDED.refresh_token,
			token_type=EXCLUDED.token_type,
			expires_at=EXCLUDED.expires_at,
			scopes=EXCLUDED.scopes,
			updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q, cred.Provider, cred.AccessToken, cred.RefreshToken, cred.TokenType, cred.ExpiresAt, cred.Scopes, cred.CreatedAt, cred.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert credential: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when no credential is stored for the provider.
func (r *CredentialRepository) Get(ctx context.Context, provider string) (*model.Credential, error) {
	row := r.db.QueryRowContext(ctx, `SELECT provider, access_token, refresh_token, token_type, expires_at, scopes, created_at, updated_at FROM provider_credentials WHERE provider=$1`, provider)
	cred := &model.Credential{}
	var exp sql.NullTime
	var tokenType, scopes sql.NullString
	if err := row.Scan(&cred.Provider, &cred.AccessToken, &cred.RefreshToken, &tokenType, &exp, &scopes, &cred.CreatedAt, &cred.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	if exp.Valid {
		cred.ExpiresAt = exp.Time
	}
	if tokenType.Valid {
		cred.TokenType = tokenType.String
	}
	if scopes.Valid {
		cred.Scopes = scopes.String
	}
	return cred, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, provider string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM provider_credentials WHERE provider=$1`, provider); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// EnsureCredentialSchema creates the credential table if it is missing.
// Safe to call at startup.
func EnsureCredentialSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ddl := `CREATE TABLE IF NOT EXISTS provider_credentials (
		provider TEXT PRIMARY KEY,
		access_token TEXT NOT NULL,
		refresh_token TEXT NOT NULL DEFAULT '',
		token_type TEXT,
		expires_at TIMESTAMPTZ,
		scopes TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating provider_credentials table failed: %w", err)
	}
	return nil
}
