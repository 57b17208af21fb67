package service

import "context"

// ModelSyncServiceInterface defines the contract for importing WB catalog
// cards as registered models
type ModelSyncServiceInterface interface {
	// SyncModelsFromWB fetches the brand's WB catalog and inserts one model
	// row per (card, size) pair that is not yet registered.
	// inserted = new rows created, skipped = already existed (by SKU) or
	// failed to insert, total = total pairs seen in the catalog
	SyncModelsFromWB(ctx context.Context, brand, platform, apiCategory string) (inserted, skipped, total int, err error)
}
