package stream

import (
	"context"
	"net/http"
	"time"

	"hotleads/internal/domain"
	"hotleads/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // restrict in prod
}

type LeadReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Lead, error)
}

type GoalReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
}

type SettingsReader interface {
	GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error)
}

type Handler struct {
	hub      *Hub
	leads    LeadReader
	goals    GoalReader
	settings SettingsReader
}

func NewHandler(hub *Hub, leads LeadReader, goals GoalReader, settings SettingsReader) *Handler {
	return &Handler{hub: hub, leads: leads, goals: goals, settings: settings}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/stream", h.Subscribe)
}

// Subscribe upgrades to websocket and streams snapshots of the three
// collections until the client disconnects. Each connection is fully
// independent; re-authenticating opens a fresh one with fresh snapshots.
func (h *Handler) Subscribe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	initial := h.initialSnapshots(c.Request.Context(), userID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPGRADE_FAILED", "Websocket upgrade failed")
		return
	}

	h.hub.ServeWS(conn, userID, initial)
}

func (h *Handler) initialSnapshots(ctx context.Context, userID int64) []Event {
	now := time.Now()
	initial := make([]Event, 0, 3)

	// A failed settings read falls back to the defaults rather than leaving
	// the dashboard without a taxonomy.
	settings, err := h.settings.GetOrCreate(ctx, userID)
	if err != nil {
		settings = domain.DefaultSettings()
	}
	initial = append(initial, Event{Type: EventSnapshot, Collection: CollectionSettings, At: now, Payload: settings})

	if leads, err := h.leads.ListByUser(ctx, userID); err == nil {
		initial = append(initial, Event{Type: EventSnapshot, Collection: CollectionLeads, At: now, Payload: leads})
	}
	if goals, err := h.goals.ListByUser(ctx, userID); err == nil {
		initial = append(initial, Event{Type: EventSnapshot, Collection: CollectionGoals, At: now, Payload: goals})
	}

	return initial
}
