package service

import (
	"context"
	"fmt"
	"log"

	"wb-labels/models"
	"wb-labels/repository"
	"wb-labels/utils"
)

// ModelSyncService imports WB catalog cards into the local model registry.
// Implements ModelSyncServiceInterface
type ModelSyncService struct {
	tokenRepo repository.TokenRepositoryInterface
	modelRepo repository.ModelRepositoryInterface
	wbClient  WBClientInterface
}

// NewModelSyncService creates a new ModelSyncService
func NewModelSyncService(tokenRepo repository.TokenRepositoryInterface, modelRepo repository.ModelRepositoryInterface, wbClient WBClientInterface) *ModelSyncService {
	return &ModelSyncService{
		tokenRepo: tokenRepo,
		modelRepo: modelRepo,
		wbClient:  wbClient,
	}
}

// Ensure ModelSyncService implements ModelSyncServiceInterface
var _ ModelSyncServiceInterface = (*ModelSyncService)(nil)

// SyncModelsFromWB fetches the brand's catalog and registers every
// (card, size) pair that is not yet present, insert-if-absent by SKU.
// Per-item insert failures are logged and counted as skipped, they do not
// abort the sync.
func (s *ModelSyncService) SyncModelsFromWB(ctx context.Context, brand, platform, apiCategory string) (int, int, int, error) {
	token, err := s.tokenRepo.GetToken(ctx, brand, platform, apiCategory)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to resolve API token: %w", err)
	}
	if token == "" {
		return 0, 0, 0, ErrTokenNotFound
	}

	rawCards, err := s.wbClient.FetchAllCards(ctx, token)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to fetch WB cards: %w", err)
	}
	cards := utils.NormalizeCards(rawCards)

	log.Printf("🔄 Syncing %d WB cards into the model registry for %s/%s", len(cards), brand, platform)

	inserted := 0
	skipped := 0
	total := 0

	for _, card := range cards {
		for _, size := range card.Sizes {
			total++

			exists, err := s.modelRepo.ExistsBySku(ctx, size.Sku)
			if err != nil {
				return inserted, skipped, total, err
			}
			if exists {
				skipped++
				continue
			}

			createErr := s.modelRepo.Create(ctx, &models.CreateModelRequest{
				Brand:    brand,
				Article:  card.Article,
				Size:     size.TechSize,
				Sku:      size.Sku,
				Category: card.Category,
				Gender:   card.Gender,
				Color:    card.Color,
				Compound: card.Compound,
				Platform: platform,
			})
			if createErr != nil {
				log.Printf("❌ Failed to register model %s/%s: %v", card.Article, size.TechSize, createErr)
				skipped++
				continue
			}
			inserted++
		}
	}

	log.Printf("🎉 Model sync completed: %d inserted, %d skipped out of %d pairs", inserted, skipped, total)
	return inserted, skipped, total, nil
}
