package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	repo "blog-platform/internal/auth/repository"
)

// CreateVerificationToken stores a hashed email verification token.
func (r *implRepository) CreateVerificationToken(ctx context.Context, opt repo.CreateVerificationTokenOptions) error {
	const query = `
		INSERT INTO verification_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), opt.UserID, opt.TokenHash, opt.ExpiresAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateVerificationToken"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetVerificationToken fetches a stored token by its hash. Returns a
// zero-value token (ID == "") when not found.
func (r *implRepository) GetVerificationToken(ctx context.Context, tokenHash string) (repo.VerificationToken, error) {
	const query = `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM verification_tokens
		WHERE token_hash = $1
		LIMIT 1`

	var t repo.VerificationToken
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return repo.VerificationToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetVerificationToken"), err)
		return repo.VerificationToken{}, repo.ErrFailedToGet
	}
	return t, nil
}

// DeleteVerificationTokens removes all stored tokens for a user.
func (r *implRepository) DeleteVerificationTokens(ctx context.Context, userID string) error {
	const query = `DELETE FROM verification_tokens WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteVerificationTokens"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
