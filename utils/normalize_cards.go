package utils

import (
	"fmt"
	"strings"

	"wb-labels/models"
)

// Default sentinel values for characteristics missing on a card
const (
	DefaultCharacteristic = "Не указан"
	DefaultCategory       = "Нет категории"
)

// NormalizeCards maps raw WB cards into canonical records. Pure and total:
// malformed input is tolerated by substituting the default sentinels, never
// by returning an error.
//
// Characteristic names are scanned case-insensitively for the substrings
// "пол" (gender), "состав" (compound) and "цвет" (color). The first match
// per category wins; later matches for the same category are ignored.
// List-valued characteristics are joined into one comma-separated string.
func NormalizeCards(rawCards []models.RawCard) []models.NormalizedCard {
	normalized := make([]models.NormalizedCard, 0, len(rawCards))

	for _, card := range rawCards {
		article := card.VendorCode
		if article == "" {
			article = "Нет артикула"
		}

		gender := DefaultCharacteristic
		compound := DefaultCharacteristic
		color := DefaultCharacteristic
		category := card.SubjectName
		if category == "" {
			category = DefaultCategory
		}

		for _, ch := range card.Characteristics {
			name := strings.ToLower(ch.Name)
			value := characteristicValue(ch.Value)

			switch {
			case strings.Contains(name, "пол"):
				if gender == DefaultCharacteristic {
					gender = value
				}
			case strings.Contains(name, "состав"):
				if compound == DefaultCharacteristic {
					compound = value
				}
			case strings.Contains(name, "цвет"):
				if color == DefaultCharacteristic {
					color = value
				}
			}
		}

		// Every size entry with N SKUs expands to N (techSize, sku) pairs
		var sizes []models.SizePair
		for _, size := range card.Sizes {
			techSize := size.TechSize
			if techSize == "" {
				techSize = DefaultCharacteristic
			}
			for _, sku := range size.Skus {
				sizes = append(sizes, models.SizePair{TechSize: techSize, Sku: sku})
			}
		}

		normalized = append(normalized, models.NormalizedCard{
			Article:  article,
			Gender:   gender,
			Compound: compound,
			Color:    color,
			Category: category,
			Sizes:    sizes,
		})
	}

	return normalized
}

// characteristicValue flattens a scalar or list characteristic value into a string
func characteristicValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
