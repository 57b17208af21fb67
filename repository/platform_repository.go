package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"wb-labels/models"
)

// PlatformRepository handles database operations for the platforms dictionary
// Implements PlatformRepositoryInterface
type PlatformRepository struct {
	db *sql.DB
}

// NewPlatformRepository creates a new PlatformRepository
func NewPlatformRepository(db *sql.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

// Ensure PlatformRepository implements PlatformRepositoryInterface
var _ PlatformRepositoryInterface = (*PlatformRepository)(nil)

// GetByID returns one platform by its identifier
func (r *PlatformRepository) GetByID(ctx context.Context, platformID int) (*models.Platform, error) {
	var platform models.Platform
	query := `SELECT platform_id, platform FROM platforms WHERE platform_id = $1`
	err := r.db.QueryRowContext(ctx, query, platformID).Scan(&platform.PlatformID, &platform.Platform)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform %d: %w", platformID, err)
	}
	return &platform, nil
}

// GetAll returns every platform
func (r *PlatformRepository) GetAll(ctx context.Context) ([]models.Platform, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT platform_id, platform FROM platforms ORDER BY platform_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get platforms: %w", err)
	}
	defer rows.Close()

	var platforms []models.Platform
	for rows.Next() {
		var platform models.Platform
		if err := rows.Scan(&platform.PlatformID, &platform.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, platform)
	}
	return platforms, rows.Err()
}

// Create inserts a new platform, ignoring duplicates
func (r *PlatformRepository) Create(ctx context.Context, platform string) error {
	query := `INSERT INTO platforms (platform) VALUES ($1) ON CONFLICT (platform) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, platform); err != nil {
		return fmt.Errorf("failed to create platform %s: %w", platform, err)
	}
	log.Printf("✓ Platform created: %s", platform)
	return nil
}

// UpdateByID renames a platform
func (r *PlatformRepository) UpdateByID(ctx context.Context, platformID int, platform string) error {
	query := `UPDATE platforms SET platform = $1 WHERE platform_id = $2`
	if _, err := r.db.ExecContext(ctx, query, platform, platformID); err != nil {
		return fmt.Errorf("failed to update platform %d: %w", platformID, err)
	}
	return nil
}

// DeleteByID removes a platform
func (r *PlatformRepository) DeleteByID(ctx context.Context, platformID int) error {
	query := `DELETE FROM platforms WHERE platform_id = $1`
	if _, err := r.db.ExecContext(ctx, query, platformID); err != nil {
		return fmt.Errorf("failed to delete platform %d: %w", platformID, err)
	}
	return nil
}
