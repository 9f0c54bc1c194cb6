package goal

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
	goals := protected.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.PUT("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)
		goals.GET("/:id/progress", h.GetProgress)
	}
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID := c.GetInt64("user_id")

	goals, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load goals")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"goals": goals})
}

func (h *Handler) CreateGoal(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err, "CREATE_FAILED", "Failed to add goal")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"goal": created})
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update goal")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"goal": updated})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete goal")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetProgress returns the goal's realized metrics, progress clamped for
// display.
func (h *Handler) GetProgress(c *gin.Context) {
	userID := c.GetInt64("user_id")

	p, err := h.service.GetProgress(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "PROGRESS_FAILED", "Failed to compute goal progress")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"progress": p.Display()})
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Goal not found")
	case errors.Is(err, ErrInvalidGoal):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
