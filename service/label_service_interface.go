package service

import (
	"context"

	"wb-labels/models"
)

// LabelServiceInterface defines the contract for label batch production
type LabelServiceInterface interface {
	// ProduceLabels runs the full pipeline for one request and writes every
	// rendered document under a fresh temp directory. On success the caller
	// owns the directory and must remove it when done; on error it is
	// already cleaned up
	ProduceLabels(ctx context.Context, req *models.LabelBatchRequest) (tempDir string, files []string, err error)
}
