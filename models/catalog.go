package models

import "time"

// Brand is one row of the brands dictionary
type Brand struct {
	BrandID int    `json:"brandId"`
	Brand   string `json:"brand"`
}

// Platform is one row of the platforms dictionary (e.g. "wb")
type Platform struct {
	PlatformID int    `json:"platformId"`
	Platform   string `json:"platform"`
}

// ModelRecord is the joined view of one registered model row
type ModelRecord struct {
	ModelID   int       `json:"modelId"`
	Brand     string    `json:"brand"`
	Article   string    `json:"article"`
	Size      string    `json:"size"`
	Sku       string    `json:"sku"`
	Pair      int       `json:"pair"`
	Category  string    `json:"category"`
	Gender    string    `json:"gender"`
	Color     string    `json:"color"`
	Compound  string    `json:"compound"`
	Platform  string    `json:"platform"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// CreateModelRequest is the body of POST /api/models
type CreateModelRequest struct {
	Brand    string `json:"brand"`
	Article  string `json:"article"`
	Size     string `json:"size"`
	Sku      string `json:"sku"`
	Pair     int    `json:"pair"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Color    string `json:"color"`
	Compound string `json:"compound"`
	Platform string `json:"platform"`
}

// APIToken is one row of the apis table: a marketplace token scoped to
// brand, platform and API category
type APIToken struct {
	APIID          int    `json:"apiId"`
	Token          string `json:"token"`
	Brand          string `json:"brand"`
	Platform       string `json:"platform"`
	Category       string `json:"category"`
	ExpirationDate string `json:"expirationDate"`
}

// CreateTokenRequest is the body of POST /api/tokens
type CreateTokenRequest struct {
	Token          string `json:"token"`
	Brand          string `json:"brand"`
	Platform       string `json:"platform"`
	Category       string `json:"category"`
	ExpirationDate string `json:"expirationDate"`
}
