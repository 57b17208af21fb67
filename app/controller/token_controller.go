package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wb-labels/models"
	"wb-labels/repository"
)

// TokenController handles HTTP requests for marketplace API tokens
type TokenController struct {
	repository repository.TokenRepositoryInterface
}

// NewTokenController creates a new TokenController
func NewTokenController(repo repository.TokenRepositoryInterface) *TokenController {
	return &TokenController{repository: repo}
}

// Collection handles GET and POST /api/tokens
func (c *TokenController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tokens, err := c.repository.GetAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, tokens)
	case http.MethodPost:
		var req models.CreateTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Некорректное тело запроса")
			return
		}
		if req.Token == "" || req.Brand == "" || req.Platform == "" || req.Category == "" {
			writeError(w, http.StatusBadRequest, "Не полные необходимые данные")
			return
		}
		if err := c.repository.Create(r.Context(), &req); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Токен успешно создан"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles PUT and DELETE /api/tokens/{id}
func (c *TokenController) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/tokens/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID токена")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
			writeError(w, http.StatusBadRequest, "Некорректный токен")
			return
		}
		if err := c.repository.UpdateByID(r.Context(), id, body.Token); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Токен успешно обновлен"})
	case http.MethodDelete:
		if err := c.repository.DeleteByID(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Токен %d удален", id)})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
