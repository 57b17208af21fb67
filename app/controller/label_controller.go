package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"wb-labels/models"
	"wb-labels/service"
)

// LabelController handles HTTP requests for label archive production
type LabelController struct {
	labelService   service.LabelServiceInterface
	archiveService service.ArchiveServiceInterface
}

// NewLabelController creates a new LabelController
func NewLabelController(labelService service.LabelServiceInterface, archiveService service.ArchiveServiceInterface) *LabelController {
	return &LabelController{
		labelService:   labelService,
		archiveService: archiveService,
	}
}

// CreateBarcodes handles POST /api/barcodes
// Runs the label pipeline for a brand/platform/category request and streams
// the rendered documents back as a zip archive
func (c *LabelController) CreateBarcodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LabelBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Ошибка введенных данных. Некорректное тело запроса")
		return
	}

	tempDir, files, err := c.labelService.ProduceLabels(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrMissingInput) || errors.Is(err, service.ErrUnsupportedBrand) {
			status = http.StatusBadRequest
		}
		log.Printf("❌ Label production failed: %v", err)
		writeError(w, status, err.Error())
		return
	}
	// The temp tree is removed whether streaming succeeds or the client
	// aborts mid-download
	defer os.RemoveAll(tempDir)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=barcodes.zip")

	if err := c.archiveService.Stream(w, tempDir, files); err != nil {
		// Headers are already sent; the broken stream is all we can signal
		log.Printf("❌ Archive streaming failed: %v", err)
		return
	}

	log.Printf("✅ Archive with %d labels sent", len(files))
}
