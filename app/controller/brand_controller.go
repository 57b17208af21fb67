package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wb-labels/repository"
)

// BrandController handles HTTP requests for the brands dictionary
type BrandController struct {
	repository repository.BrandRepositoryInterface
}

// NewBrandController creates a new BrandController
func NewBrandController(repo repository.BrandRepositoryInterface) *BrandController {
	return &BrandController{repository: repo}
}

// Collection handles GET and POST /api/brands
func (c *BrandController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		brands, err := c.repository.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, brands)
	case http.MethodPost:
		var body struct {
			Brand string `json:"brand"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Brand == "" {
			writeError(w, http.StatusBadRequest, "Некорректное имя бренда")
			return
		}
		if err := c.repository.Create(r.Context(), body.Brand); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Бренд успешно создан"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles GET, PUT and DELETE /api/brands/{id}
func (c *BrandController) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/brands/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID бренда")
		return
	}

	switch r.Method {
	case http.MethodGet:
		brand, err := c.repository.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if brand == nil {
			writeError(w, http.StatusNotFound, "Бренд не найден")
			return
		}
		writeJSON(w, http.StatusOK, brand)
	case http.MethodPut:
		var body struct {
			Brand string `json:"brand"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Brand == "" {
			writeError(w, http.StatusBadRequest, "Некорректное имя бренда")
			return
		}
		if err := c.repository.UpdateByID(r.Context(), id, body.Brand); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Бренд успешно обновлен"})
	case http.MethodDelete:
		if err := c.repository.DeleteByID(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Бренд %d удален", id)})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
