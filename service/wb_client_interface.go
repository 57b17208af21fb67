package service

import (
	"context"

	"wb-labels/models"
)

// WBClientInterface defines the contract for the marketplace content API client
type WBClientInterface interface {
	// FetchAllCards pulls the full product catalog page by page.
	// Returns an error (and no cards) if any page request fails
	FetchAllCards(ctx context.Context, token string) ([]models.RawCard, error)
}
