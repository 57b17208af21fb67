package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"wb-labels/models"
)

// ModelRepository handles database operations for registered models.
// Model rows reference the brand/platform/article/size dictionaries;
// articles and sizes are created on demand when a model is inserted.
// Implements ModelRepositoryInterface
type ModelRepository struct {
	db *sql.DB
}

// NewModelRepository creates a new ModelRepository
func NewModelRepository(db *sql.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// Ensure ModelRepository implements ModelRepositoryInterface
var _ ModelRepositoryInterface = (*ModelRepository)(nil)

const modelSelect = `
	SELECT
		m.model_id,
		b.brand,
		a.article,
		s.size,
		m.sku,
		m.pair,
		COALESCE(m.category, ''),
		COALESCE(m.gender, ''),
		COALESCE(m.color, ''),
		COALESCE(m.compound, ''),
		p.platform,
		m.updated_at,
		m.is_deleted
	FROM models m
	JOIN brands b ON m.brand_id = b.brand_id
	JOIN articles a ON m.article_id = a.article_id
	JOIN sizes s ON m.size_id = s.size_id
	JOIN platforms p ON m.platform_id = p.platform_id
`

// GetAll returns the joined view of every registered model
func (r *ModelRepository) GetAll(ctx context.Context) ([]models.ModelRecord, error) {
	rows, err := r.db.QueryContext(ctx, modelSelect+` ORDER BY m.model_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get models: %w", err)
	}
	defer rows.Close()
	return scanModels(rows)
}

// GetByBrandAndPlatform returns models registered for one brand on one platform
func (r *ModelRepository) GetByBrandAndPlatform(ctx context.Context, brand, platform string) ([]models.ModelRecord, error) {
	rows, err := r.db.QueryContext(ctx, modelSelect+` WHERE b.brand = $1 AND p.platform = $2 ORDER BY m.model_id`, brand, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to get models for %s/%s: %w", brand, platform, err)
	}
	defer rows.Close()
	return scanModels(rows)
}

// GetRegistered groups model rows into article -> size list form for the
// label filter
func (r *ModelRepository) GetRegistered(ctx context.Context, brand, platform string) ([]models.RegisteredModel, error) {
	records, err := r.GetByBrandAndPlatform(ctx, brand, platform)
	if err != nil {
		return nil, err
	}

	sizesByArticle := make(map[string][]string)
	var order []string
	for _, record := range records {
		if record.IsDeleted {
			continue
		}
		if _, seen := sizesByArticle[record.Article]; !seen {
			order = append(order, record.Article)
		}
		sizesByArticle[record.Article] = append(sizesByArticle[record.Article], record.Size)
	}

	registered := make([]models.RegisteredModel, 0, len(order))
	for _, article := range order {
		registered = append(registered, models.RegisteredModel{
			Article: article,
			Sizes:   sizesByArticle[article],
		})
	}
	return registered, nil
}

// ExistsBySku checks whether a model with this SKU is already registered
func (r *ModelRepository) ExistsBySku(ctx context.Context, sku string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM models WHERE sku = $1)`
	if err := r.db.QueryRowContext(ctx, query, sku).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check sku %s: %w", sku, err)
	}
	return exists, nil
}

// Create inserts a new model row. The brand and platform must already exist;
// the article and size dictionary rows are created on demand. Duplicate SKUs
// are rejected.
func (r *ModelRepository) Create(ctx context.Context, req *models.CreateModelRequest) error {
	if req.Sku != "" {
		exists, err := r.ExistsBySku(ctx, req.Sku)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("sku %s already registered, duplicates are not allowed", req.Sku)
		}
	}

	var brandID int
	err := r.db.QueryRowContext(ctx, `SELECT brand_id FROM brands WHERE brand = $1`, req.Brand).Scan(&brandID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("brand %s is not registered", req.Brand)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve brand %s: %w", req.Brand, err)
	}

	var platformID int
	err = r.db.QueryRowContext(ctx, `SELECT platform_id FROM platforms WHERE platform = $1`, req.Platform).Scan(&platformID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("platform %s is not registered", req.Platform)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve platform %s: %w", req.Platform, err)
	}

	articleID, err := r.ensureDictionaryRow(ctx, "articles", "article", "article_id", req.Article)
	if err != nil {
		return err
	}
	sizeID, err := r.ensureDictionaryRow(ctx, "sizes", "size", "size_id", req.Size)
	if err != nil {
		return err
	}

	pair := req.Pair
	if pair == 0 {
		pair = 20
	}

	query := `
		INSERT INTO models (brand_id, article_id, size_id, sku, pair, category, gender, color, compound, platform_id, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), false)
	`
	_, err = r.db.ExecContext(ctx, query,
		brandID, articleID, sizeID, req.Sku, pair,
		req.Category, req.Gender, req.Color, req.Compound, platformID)
	if err != nil {
		return fmt.Errorf("failed to create model %s/%s: %w", req.Article, req.Size, err)
	}

	log.Printf("✓ Model created: %s %s size %s", req.Brand, req.Article, req.Size)
	return nil
}

// ensureDictionaryRow returns the id of a dictionary value, inserting it first
// when absent
func (r *ModelRepository) ensureDictionaryRow(ctx context.Context, table, column, idColumn, value string) (int, error) {
	var id int
	selectQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, idColumn, table, column)
	err := r.db.QueryRowContext(ctx, selectQuery, value).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to resolve %s %s: %w", column, value, err)
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, table, column, idColumn)
	if err := r.db.QueryRowContext(ctx, insertQuery, value).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create %s %s: %w", column, value, err)
	}
	return id, nil
}

func scanModels(rows *sql.Rows) ([]models.ModelRecord, error) {
	var records []models.ModelRecord
	for rows.Next() {
		var record models.ModelRecord
		if err := rows.Scan(
			&record.ModelID, &record.Brand, &record.Article, &record.Size,
			&record.Sku, &record.Pair, &record.Category, &record.Gender,
			&record.Color, &record.Compound, &record.Platform,
			&record.UpdatedAt, &record.IsDeleted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
