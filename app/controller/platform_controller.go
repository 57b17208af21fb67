package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wb-labels/repository"
)

// PlatformController handles HTTP requests for the platforms dictionary
type PlatformController struct {
	repository repository.PlatformRepositoryInterface
}

// NewPlatformController creates a new PlatformController
func NewPlatformController(repo repository.PlatformRepositoryInterface) *PlatformController {
	return &PlatformController{repository: repo}
}

// Collection handles GET and POST /api/platforms
func (c *PlatformController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		platforms, err := c.repository.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, platforms)
	case http.MethodPost:
		var body struct {
			Platform string `json:"platform"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Platform == "" {
			writeError(w, http.StatusBadRequest, "Некорректное имя платформы")
			return
		}
		if err := c.repository.Create(r.Context(), body.Platform); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Платформа успешно создана"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles GET, PUT and DELETE /api/platforms/{id}
func (c *PlatformController) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/platforms/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID платформы")
		return
	}

	switch r.Method {
	case http.MethodGet:
		platform, err := c.repository.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if platform == nil {
			writeError(w, http.StatusNotFound, "Платформа не найдена")
			return
		}
		writeJSON(w, http.StatusOK, platform)
	case http.MethodPut:
		var body struct {
			Platform string `json:"platform"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Platform == "" {
			writeError(w, http.StatusBadRequest, "Некорректное имя платформы")
			return
		}
		if err := c.repository.UpdateByID(r.Context(), id, body.Platform); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Платформа успешно обновлена"})
	case http.MethodDelete:
		if err := c.repository.DeleteByID(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Платформа %d удалена", id)})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
