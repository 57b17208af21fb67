package utils

import (
	"log"

	"wb-labels/models"
)

// FilterCards intersects normalized cards with the locally registered models.
// A card is dropped entirely if its article has no registered model; otherwise
// its size list is reduced to the sizes registered for that article, and the
// card is kept only if at least one size survives.
func FilterCards(cards []models.NormalizedCard, registered []models.RegisteredModel) []models.NormalizedCard {
	// Build article -> set of registered size labels for fast lookup
	sizesByArticle := make(map[string]map[string]bool, len(registered))
	for _, model := range registered {
		if model.Sizes == nil {
			log.Printf("⚠️ Sizes for article %s are missing, skipping model", model.Article)
			continue
		}
		set := make(map[string]bool, len(model.Sizes))
		for _, size := range model.Sizes {
			set[size] = true
		}
		sizesByArticle[model.Article] = set
	}

	var filtered []models.NormalizedCard
	for _, card := range cards {
		registeredSizes, ok := sizesByArticle[card.Article]
		if !ok {
			continue
		}

		var kept []models.SizePair
		for _, size := range card.Sizes {
			if size.TechSize == "" {
				log.Printf("⚠️ Invalid size entry for article %s, skipping", card.Article)
				continue
			}
			if registeredSizes[size.TechSize] {
				kept = append(kept, size)
			}
		}

		if len(kept) == 0 {
			continue
		}
		card.Sizes = kept
		filtered = append(filtered, card)
	}

	return filtered
}
