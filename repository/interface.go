package repository

import (
	"context"

	"wb-labels/models"
)

// BrandRepositoryInterface defines the contract for brand dictionary operations
type BrandRepositoryInterface interface {
	GetByID(ctx context.Context, brandID int) (*models.Brand, error)
	GetAll(ctx context.Context) ([]models.Brand, error)
	Create(ctx context.Context, brand string) error
	UpdateByID(ctx context.Context, brandID int, brand string) error
	DeleteByID(ctx context.Context, brandID int) error
}

// PlatformRepositoryInterface defines the contract for platform dictionary operations
type PlatformRepositoryInterface interface {
	GetByID(ctx context.Context, platformID int) (*models.Platform, error)
	GetAll(ctx context.Context) ([]models.Platform, error)
	Create(ctx context.Context, platform string) error
	UpdateByID(ctx context.Context, platformID int, platform string) error
	DeleteByID(ctx context.Context, platformID int) error
}

// ModelRepositoryInterface defines the contract for registered model operations
type ModelRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.ModelRecord, error)
	GetByBrandAndPlatform(ctx context.Context, brand, platform string) ([]models.ModelRecord, error)
	// GetRegistered groups model rows into article -> size list form, used as
	// the label filter input
	GetRegistered(ctx context.Context, brand, platform string) ([]models.RegisteredModel, error)
	ExistsBySku(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, req *models.CreateModelRequest) error
}

// TokenRepositoryInterface defines the contract for marketplace API token lookup
type TokenRepositoryInterface interface {
	// GetToken resolves the token scoped to brand, platform and API category.
	// Returns "" without error when no token is registered
	GetToken(ctx context.Context, brand, platform, category string) (string, error)
	GetAll(ctx context.Context) ([]models.APIToken, error)
	Create(ctx context.Context, req *models.CreateTokenRequest) error
	UpdateByID(ctx context.Context, apiID int, token string) error
	DeleteByID(ctx context.Context, apiID int) error
}
