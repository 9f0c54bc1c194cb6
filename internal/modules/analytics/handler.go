package analytics

import (
	"context"
	"net/http"
	"time"

	"hotleads/internal/domain"
	"hotleads/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type LeadReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Lead, error)
}

type SettingsReader interface {
	GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error)
}

type Handler struct {
	leads    LeadReader
	settings SettingsReader
}

func NewHandler(leads LeadReader, settings SettingsReader) *Handler {
	return &Handler{leads: leads, settings: settings}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/analytics/dashboard", h.GetDashboard)
}

// GetDashboard returns the KPI summary and chart groupings for the current
// user, optionally narrowed by ?period=all|thisMonth|thisYear and ?owner=.
func (h *Handler) GetDashboard(c *gin.Context) {
	userID := c.GetInt64("user_id")

	leads, err := h.leads.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to load leads")
		return
	}

	settings, err := h.settings.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		// Aggregation still works against the built-in taxonomy.
		settings = domain.DefaultSettings()
	}

	f := Filter{
		Period: Period(c.DefaultQuery("period", string(PeriodAll))),
		Owner:  c.Query("owner"),
	}

	response.Success(c, http.StatusOK, gin.H{
		"dashboard": Summarize(leads, settings, f, time.Now()),
	})
}
