package models

// RegisteredModel is one locally registered article with the size labels
// known for it. Used as the filter predicate against normalized cards
type RegisteredModel struct {
	Article string   `json:"article"`
	Sizes   []string `json:"sizes"`
}
