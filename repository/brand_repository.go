package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"wb-labels/models"
)

// BrandRepository handles database operations for the brands dictionary
// Implements BrandRepositoryInterface
type BrandRepository struct {
	db *sql.DB
}

// NewBrandRepository creates a new BrandRepository
func NewBrandRepository(db *sql.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Ensure BrandRepository implements BrandRepositoryInterface
var _ BrandRepositoryInterface = (*BrandRepository)(nil)

// GetByID returns one brand by its identifier
func (r *BrandRepository) GetByID(ctx context.Context, brandID int) (*models.Brand, error) {
	var brand models.Brand
	query := `SELECT brand_id, brand FROM brands WHERE brand_id = $1`
	err := r.db.QueryRowContext(ctx, query, brandID).Scan(&brand.BrandID, &brand.Brand)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand %d: %w", brandID, err)
	}
	return &brand, nil
}

// GetAll returns every brand
func (r *BrandRepository) GetAll(ctx context.Context) ([]models.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT brand_id, brand FROM brands ORDER BY brand_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var brand models.Brand
		if err := rows.Scan(&brand.BrandID, &brand.Brand); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

// Create inserts a new brand, ignoring duplicates
func (r *BrandRepository) Create(ctx context.Context, brand string) error {
	query := `INSERT INTO brands (brand) VALUES ($1) ON CONFLICT (brand) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, brand); err != nil {
		return fmt.Errorf("failed to create brand %s: %w", brand, err)
	}
	log.Printf("✓ Brand created: %s", brand)
	return nil
}

// UpdateByID renames a brand
func (r *BrandRepository) UpdateByID(ctx context.Context, brandID int, brand string) error {
	query := `UPDATE brands SET brand = $1 WHERE brand_id = $2`
	if _, err := r.db.ExecContext(ctx, query, brand, brandID); err != nil {
		return fmt.Errorf("failed to update brand %d: %w", brandID, err)
	}
	return nil
}

// DeleteByID removes a brand
func (r *BrandRepository) DeleteByID(ctx context.Context, brandID int) error {
	query := `DELETE FROM brands WHERE brand_id = $1`
	if _, err := r.db.ExecContext(ctx, query, brandID); err != nil {
		return fmt.Errorf("failed to delete brand %d: %w", brandID, err)
	}
	return nil
}
