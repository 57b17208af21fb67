package utils

import (
	"reflect"
	"testing"

	"wb-labels/models"
)

func TestNormalizeCards(t *testing.T) {
	tests := []struct {
		name string
		raw  []models.RawCard
		want []models.NormalizedCard
	}{
		{
			name: "full card with all characteristics",
			raw: []models.RawCard{
				{
					NmID:        12345,
					VendorCode:  "123ABC",
					SubjectName: "Тапочки",
					Characteristics: []models.Characteristic{
						{Name: "Пол", Value: "мужской"},
						{Name: "Состав", Value: "ЭВА 100%"},
						{Name: "Цвет", Value: "черный"},
					},
					Sizes: []models.RawSize{
						{TechSize: "36-37", Skus: []string{"2000000000017"}},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "123ABC",
					Gender:   "мужской",
					Compound: "ЭВА 100%",
					Color:    "черный",
					Category: "Тапочки",
					Sizes: []models.SizePair{
						{TechSize: "36-37", Sku: "2000000000017"},
					},
				},
			},
		},
		{
			name: "missing characteristics substitute defaults",
			raw: []models.RawCard{
				{
					NmID:       67890,
					VendorCode: "205-BLK",
					Sizes: []models.RawSize{
						{TechSize: "38", Skus: []string{"2000000000024"}},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "205-BLK",
					Gender:   DefaultCharacteristic,
					Compound: DefaultCharacteristic,
					Color:    DefaultCharacteristic,
					Category: DefaultCategory,
					Sizes: []models.SizePair{
						{TechSize: "38", Sku: "2000000000024"},
					},
				},
			},
		},
		{
			name: "empty vendor code gets placeholder article",
			raw: []models.RawCard{
				{NmID: 1, SubjectName: "Сланцы"},
			},
			want: []models.NormalizedCard{
				{
					Article:  "Нет артикула",
					Gender:   DefaultCharacteristic,
					Compound: DefaultCharacteristic,
					Color:    DefaultCharacteristic,
					Category: "Сланцы",
				},
			},
		},
		{
			name: "first matching characteristic wins",
			raw: []models.RawCard{
				{
					VendorCode:  "777",
					SubjectName: "Галоши",
					Characteristics: []models.Characteristic{
						{Name: "Цвет", Value: "синий"},
						{Name: "Основной цвет", Value: "красный"},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "777",
					Gender:   DefaultCharacteristic,
					Compound: DefaultCharacteristic,
					Color:    "синий",
					Category: "Галоши",
				},
			},
		},
		{
			name: "list-valued characteristic joined with commas",
			raw: []models.RawCard{
				{
					VendorCode:  "888",
					SubjectName: "Сабо",
					Characteristics: []models.Characteristic{
						{Name: "Состав", Value: []interface{}{"ЭВА", "текстиль"}},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "888",
					Gender:   DefaultCharacteristic,
					Compound: "ЭВА, текстиль",
					Color:    DefaultCharacteristic,
					Category: "Сабо",
				},
			},
		},
		{
			name: "size with multiple skus expands to pairs",
			raw: []models.RawCard{
				{
					VendorCode:  "999",
					SubjectName: "Тапочки",
					Sizes: []models.RawSize{
						{TechSize: "36-37", Skus: []string{"A", "B"}},
						{TechSize: "38-39", Skus: []string{"C"}},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "999",
					Gender:   DefaultCharacteristic,
					Compound: DefaultCharacteristic,
					Color:    DefaultCharacteristic,
					Category: "Тапочки",
					Sizes: []models.SizePair{
						{TechSize: "36-37", Sku: "A"},
						{TechSize: "36-37", Sku: "B"},
						{TechSize: "38-39", Sku: "C"},
					},
				},
			},
		},
		{
			name: "empty tech size substituted with default",
			raw: []models.RawCard{
				{
					VendorCode:  "111",
					SubjectName: "Тапочки",
					Sizes: []models.RawSize{
						{TechSize: "", Skus: []string{"X"}},
					},
				},
			},
			want: []models.NormalizedCard{
				{
					Article:  "111",
					Gender:   DefaultCharacteristic,
					Compound: DefaultCharacteristic,
					Color:    DefaultCharacteristic,
					Category: "Тапочки",
					Sizes: []models.SizePair{
						{TechSize: DefaultCharacteristic, Sku: "X"},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCards(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeCards() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCardsEmptyInput(t *testing.T) {
	got := NormalizeCards(nil)
	if len(got) != 0 {
		t.Errorf("NormalizeCards(nil) returned %d cards, want 0", len(got))
	}
}
