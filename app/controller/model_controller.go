package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"wb-labels/models"
	"wb-labels/repository"
	"wb-labels/service"
)

// ModelController handles HTTP requests for registered models
type ModelController struct {
	repository  repository.ModelRepositoryInterface
	syncService service.ModelSyncServiceInterface
}

// NewModelController creates a new ModelController
func NewModelController(repo repository.ModelRepositoryInterface, syncService service.ModelSyncServiceInterface) *ModelController {
	return &ModelController{
		repository:  repo,
		syncService: syncService,
	}
}

// Collection handles GET and POST /api/models
func (c *ModelController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records, err := c.repository.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(records) == 0 {
			writeError(w, http.StatusNotFound, "Модели не найдены")
			return
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		var req models.CreateModelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
			return
		}
		if req.Brand == "" || req.Article == "" || req.Size == "" || req.Platform == "" {
			writeError(w, http.StatusBadRequest, "Не полные необходимые данные")
			return
		}
		if err := c.repository.Create(r.Context(), &req); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Модель успешно создана"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByBrandAndPlatform handles POST /api/models/by-brand-platform
func (c *ModelController) ByBrandAndPlatform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Brand    string `json:"brand"`
		Platform string `json:"platform"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Brand == "" || body.Platform == "" {
		writeError(w, http.StatusBadRequest, "Не полные необходимые данные")
		return
	}

	records, err := c.repository.GetByBrandAndPlatform(r.Context(), body.Brand, body.Platform)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "Модели не найдены")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// SyncFromWB handles POST /api/models/wb
// Imports the brand's WB catalog into the local model registry
func (c *ModelController) SyncFromWB(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Brand       string `json:"brand"`
		Platform    string `json:"platform"`
		APICategory string `json:"apiCategory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Brand == "" || body.Platform == "" || body.APICategory == "" {
		writeError(w, http.StatusBadRequest, "Не полные необходимые данные")
		return
	}

	inserted, skipped, total, err := c.syncService.SyncModelsFromWB(r.Context(), body.Brand, body.Platform, body.APICategory)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrTokenNotFound) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"total":    total,
		"inserted": inserted,
		"skipped":  skipped,
	})
}
