package lead

import (
	"errors"
	"net/http"

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
	leads := protected.Group("/leads")
	{
		leads.GET("", h.ListLeads)
		leads.POST("", h.CreateLead)
		leads.PUT("/:id", h.UpdateLead)
		leads.DELETE("/:id", h.DeleteLead)
	}
}

func (h *Handler) ListLeads(c *gin.Context) {
	userID := c.GetInt64("user_id")

	leads, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load leads")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

func (h *Handler) CreateLead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err, "CREATE_FAILED", "Failed to add lead")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": created})
}

func (h *Handler) UpdateLead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update lead")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": updated})
}

func (h *Handler) DeleteLead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete lead")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
	case errors.Is(err, ErrInvalidLead), errors.Is(err, ErrUnknownOption):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
