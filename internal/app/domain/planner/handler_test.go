package planner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NSooriya/yaalir-travel-planning-app/internal/app/observability/metrics"
)

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	metrics.InitAppMetrics()

	handler := NewHandler(service, zap.NewNop())
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/api/chat/message", handler.Message)
	r.POST("/api/itinerary/generate", handler.Generate)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMessageEndpoint(t *testing.T) {
	catalog := new(MockCatalog)
	r := newTestRouter(newTestService(catalog))

	w := postJSON(t, r, "/api/chat/message", gin.H{"message": "plan a 3 day trip"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply string          `json:"reply"`
		Plan  json.RawMessage `json:"plan"`
		Stage string          `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "3-Day Chennai Weekend Package")
	assert.Equal(t, string(StagePlanPresented), resp.Stage)
	assert.NotEqual(t, "null", string(resp.Plan))
}

func TestMessageEndpointRequiresMessage(t *testing.T) {
	r := newTestRouter(newTestService(new(MockCatalog)))

	w := postJSON(t, r, "/api/chat/message", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	catalog := new(MockCatalog)
	catalog.On("ListSites", mock.Anything).Return(testCatalog(), nil)
	r := newTestRouter(newTestService(catalog))

	w := postJSON(t, r, "/api/itinerary/generate", gin.H{
		"travelers": 2,
		"duration":  3,
		"budget":    20000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary struct {
			Circuit            string `json:"circuit"`
			Travelers          int    `json:"travelers"`
			Duration           int    `json:"duration"`
			TotalPlaces        int    `json:"totalPlaces"`
			EstimatedTotalCost int64  `json:"estimatedTotalCost"`
			BudgetMatch        bool   `json:"budgetMatch"`
		} `json:"summary"`
		Itinerary []json.RawMessage `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "3-Day Chennai Weekend Package", resp.Summary.Circuit)
	assert.Equal(t, 2, resp.Summary.Travelers)
	assert.Equal(t, 3, resp.Summary.Duration)
	assert.Equal(t, 6, resp.Summary.TotalPlaces)
	assert.Equal(t, int64(12190), resp.Summary.EstimatedTotalCost)
	assert.True(t, resp.Summary.BudgetMatch)
	assert.Len(t, resp.Itinerary, 3)
}

func TestGenerateEndpointValidation(t *testing.T) {
	r := newTestRouter(newTestService(new(MockCatalog)))

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "Missing travelers", body: gin.H{"duration": 3, "budget": 20000}},
		{name: "Too many travelers", body: gin.H{"travelers": 21, "duration": 3, "budget": 20000}},
		{name: "Unsupported duration", body: gin.H{"travelers": 2, "duration": 4, "budget": 20000}},
		{name: "Zero budget", body: gin.H{"travelers": 2, "duration": 3, "budget": 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/itinerary/generate", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
