package settings

import (
	"errors"
	"net/http"

	"hotleads/internal/domain"
	"hotleads/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/settings", h.GetSettings)
	protected.PUT("/settings", h.ReplaceSettings)
}

func (h *Handler) GetSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	s, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SETTINGS_FAILED", "Failed to load settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": s})
}

func (h *Handler) ReplaceSettings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req domain.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	saved, err := h.service.Replace(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrEmptyList) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "SETTINGS_FAILED", "Failed to save settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": saved})
}
