package planner

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/models"
	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/observability/metrics"
)

const chatSessionKey = "chat_session"

type Handler struct {
	service Service
	log     *zap.Logger
	// states holds one ConversationState per chat session. Entries
	// expire with the session cookie's useful life; a stale session
	// simply starts over at Idle.
	states *cache.Cache
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
		states:  cache.New(30*time.Minute, 10*time.Minute),
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type generateRequest struct {
	Travelers    int   `json:"travelers" binding:"required,min=1,max=20"`
	DurationDays int   `json:"duration" binding:"required"`
	Budget       int64 `json:"budget" binding:"required,min=1"`
}

type planSummary struct {
	Circuit            string `json:"circuit"`
	PackageName        string `json:"packageName"`
	Travelers          int    `json:"travelers"`
	Duration           int    `json:"duration"`
	TotalPlaces        int    `json:"totalPlaces"`
	EstimatedTotalCost int64  `json:"estimatedTotalCost"`
	BudgetMatch        bool   `json:"budgetMatch"`
	Description        string `json:"description"`
}

type generateResponse struct {
	Summary   planSummary      `json:"summary"`
	Itinerary []models.DayPlan `json:"itinerary"`
	Plan      *models.TripPlan `json:"plan"`
}

// Message handles one conversational turn. Session identity comes from
// the cookie session; the per-session state lives in the TTL store and
// is replaced wholesale each turn.
func (h *Handler) Message(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := h.sessionID(c)
	state := NewConversationState()
	if cached, found := h.states.Get(sessionID); found {
		state = cached.(ConversationState)
	}

	nextState, reply := h.service.GenerateFromText(c.Request.Context(), state, req.Message)
	h.states.SetDefault(sessionID, nextState)
	metrics.Get().ChatMessagesTotal.Add(c.Request.Context(), 1)

	c.JSON(http.StatusOK, gin.H{
		"reply": reply.Narrative,
		"plan":  reply.Plan,
		"stage": nextState.Stage,
	})
}

// Generate handles the structured planner form. The duration select on
// the client only offers supported circuits, so selector misses map to
// a 400 rather than a clarifying flow.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "travelers, duration and budget are required"})
		return
	}

	plan, err := h.service.GenerateFromForm(c.Request.Context(), req.Travelers, req.DurationDays, req.Budget)
	if err != nil {
		h.log.Error("Failed to generate itinerary",
			zap.Int("duration", req.DurationDays),
			zap.Error(err))
		status := http.StatusInternalServerError
		if errorsIsClientFault(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "could not generate itinerary"})
		return
	}

	metrics.Get().PlansGeneratedTotal.Add(c.Request.Context(), 1)
	c.JSON(http.StatusOK, generateResponse{
		Summary: planSummary{
			Circuit:            plan.Title,
			PackageName:        plan.Title,
			Travelers:          req.Travelers,
			Duration:           plan.DurationDays,
			TotalPlaces:        plan.TotalPlaces(),
			EstimatedTotalCost: plan.TotalCost,
			BudgetMatch:        plan.BudgetMatch != nil && *plan.BudgetMatch,
			Description:        plan.Description,
		},
		Itinerary: plan.Days,
		Plan:      plan,
	})
}

func errorsIsClientFault(err error) bool {
	return errors.Is(err, models.ErrBadRequest) || errors.Is(err, models.ErrValidation)
}

func (h *Handler) sessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(chatSessionKey).(string); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	session.Set(chatSessionKey, id)
	if err := session.Save(); err != nil {
		h.log.Warn("Failed to persist chat session cookie", zap.Error(err))
	}
	return id
}
