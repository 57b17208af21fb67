package models

// LabelBatchRequest is the body of POST /api/barcodes
type LabelBatchRequest struct {
	Brand       string            `json:"brand"`
	Platform    string            `json:"platform"`
	APICategory string            `json:"apiCategory"`
	Models      []RegisteredModel `json:"models"`
}

// LabelJob carries everything the renderer needs for one label document.
// Created per (card, size) pair and consumed immediately, never persisted
type LabelJob struct {
	TechSize string
	Barcode  string
	Article  string
	Color    string
	Standard string
	Gender   string
}
