package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"wb-labels/models"
)

// TokenRepository handles database operations for marketplace API tokens
// Implements TokenRepositoryInterface
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Ensure TokenRepository implements TokenRepositoryInterface
var _ TokenRepositoryInterface = (*TokenRepository)(nil)

// GetToken resolves the token scoped to brand, platform and API category.
// Returns "" without error when no token is registered for the combination
func (r *TokenRepository) GetToken(ctx context.Context, brand, platform, category string) (string, error) {
	var token string
	query := `
		SELECT token FROM apis
		JOIN brands ON apis.brand_id = brands.brand_id
		JOIN platforms ON apis.platform_id = platforms.platform_id
		JOIN api_categories ON apis.api_category_id = api_categories.api_category_id
		WHERE brand = $1 AND platform = $2 AND category = $3
	`
	err := r.db.QueryRowContext(ctx, query, brand, platform, category).Scan(&token)
	if err == sql.ErrNoRows {
		log.Printf("🔍 No token registered for %s/%s/%s", brand, platform, category)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token for %s/%s/%s: %w", brand, platform, category, err)
	}
	return token, nil
}

// GetAll returns every registered token with its scope
func (r *TokenRepository) GetAll(ctx context.Context) ([]models.APIToken, error) {
	query := `
		SELECT apis.api_id, apis.token, brands.brand, platforms.platform,
		       api_categories.category, COALESCE(apis.expiration_date::text, '')
		FROM apis
		JOIN brands ON apis.brand_id = brands.brand_id
		JOIN platforms ON apis.platform_id = platforms.platform_id
		JOIN api_categories ON apis.api_category_id = api_categories.api_category_id
		ORDER BY apis.api_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tokens: %w", err)
	}
	defer rows.Close()

	var tokens []models.APIToken
	for rows.Next() {
		var token models.APIToken
		if err := rows.Scan(&token.APIID, &token.Token, &token.Brand,
			&token.Platform, &token.Category, &token.ExpirationDate); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

// Create registers a new token for a brand/platform/category combination.
// The referenced dictionary rows must already exist
func (r *TokenRepository) Create(ctx context.Context, req *models.CreateTokenRequest) error {
	query := `
		INSERT INTO apis (token, brand_id, platform_id, api_category_id, expiration_date)
		VALUES (
			$1,
			(SELECT brand_id FROM brands WHERE brand = $2),
			(SELECT platform_id FROM platforms WHERE platform = $3),
			(SELECT api_category_id FROM api_categories WHERE category = $4),
			NULLIF($5, '')::date
		)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, req.Token, req.Brand, req.Platform, req.Category, req.ExpirationDate)
	if err != nil {
		return fmt.Errorf("failed to create token for %s/%s/%s: %w", req.Brand, req.Platform, req.Category, err)
	}
	log.Printf("✓ Token registered for %s/%s/%s", req.Brand, req.Platform, req.Category)
	return nil
}

// UpdateByID replaces the token value of one registration
func (r *TokenRepository) UpdateByID(ctx context.Context, apiID int, token string) error {
	query := `UPDATE apis SET token = $1 WHERE api_id = $2`
	if _, err := r.db.ExecContext(ctx, query, token, apiID); err != nil {
		return fmt.Errorf("failed to update token %d: %w", apiID, err)
	}
	return nil
}

// DeleteByID removes one token registration
func (r *TokenRepository) DeleteByID(ctx context.Context, apiID int) error {
	query := `DELETE FROM apis WHERE api_id = $1`
	if _, err := r.db.ExecContext(ctx, query, apiID); err != nil {
		return fmt.Errorf("failed to delete token %d: %w", apiID, err)
	}
	return nil
}
