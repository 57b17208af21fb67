package models

// RawCard represents a single product card as returned by the WB content API
type RawCard struct {
	NmID            int              `json:"nmID"`
	VendorCode      string           `json:"vendorCode"`
	SubjectName     string           `json:"subjectName"`
	Characteristics []Characteristic `json:"characteristics"`
	Sizes           []RawSize        `json:"sizes"`
}

// Characteristic is a loosely typed name/value pair from the WB card.
// Value may be a scalar or a list, so it is decoded as interface{}
type Characteristic struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// RawSize is one size entry of a raw card with its SKU barcodes
type RawSize struct {
	TechSize string   `json:"techSize"`
	Skus     []string `json:"skus"`
}

// SizePair is one (techSize, sku) combination after flattening
type SizePair struct {
	TechSize string `json:"techSize"`
	Sku      string `json:"sku"`
}

// NormalizedCard is the canonical card record used by the label pipeline
type NormalizedCard struct {
	Article  string     `json:"article"`
	Gender   string     `json:"gender"`
	Compound string     `json:"compound"`
	Color    string     `json:"color"`
	Category string     `json:"category"`
	Sizes    []SizePair `json:"sizes"`
}

// Cursor is the WB pagination cursor. Limit is sent with every request,
// UpdatedAt and NmID are echoed back from the previous response
type Cursor struct {
	Limit     int    `json:"limit"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	NmID      int    `json:"nmID,omitempty"`
}

// ResponseCursor is the cursor block of a WB response. Total is the number
// of cards actually returned in this page
type ResponseCursor struct {
	Total     int    `json:"total"`
	UpdatedAt string `json:"updatedAt"`
	NmID      int    `json:"nmID"`
}

// CardsResponse is the body of POST /content/v2/get/cards/list
type CardsResponse struct {
	Cards  []RawCard      `json:"cards"`
	Cursor ResponseCursor `json:"cursor"`
}
