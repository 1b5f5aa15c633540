package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavoura/entities"
)

func soyRequest() PlanRequest {
	return PlanRequest{
		Name:             "Talhão Norte",
		CropType:         entities.CropSoy,
		AreaHa:           10,
		SoilType:         entities.SoilMixed,
		ProductivityGoal: "70 sc/ha",
	}
}

func TestFallbackPlanIsAlwaysUsable(t *testing.T) {
	p := FallbackPlan(soyRequest())
	assert.Equal(t, 10*FallbackCostPerHa, p.EstimatedCost)
	assert.Equal(t, FallbackAdvice, p.Advice)
	assert.NotNil(t, p.Materials)
	assert.NotNil(t, p.Timeline)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, FallbackCycleDays), p.EstimatedHarvestDate, time.Minute)
}

func TestMockPlanScalesWithArea(t *testing.T) {
	m := NewMock()
	out, err := m.GeneratePlan(soyRequest())
	require.NoError(t, err)
	assert.False(t, out.Degraded)
	assert.Equal(t, 42000.0, out.Plan.EstimatedCost)
	require.Len(t, out.Plan.Timeline, 4)
	for _, st := range out.Plan.Timeline {
		assert.Equal(t, entities.StagePending, st.Status)
		assert.NotEmpty(t, st.StageID)
	}

	req := soyRequest()
	req.CropType = "mandioca"
	out, err = m.GeneratePlan(req)
	require.NoError(t, err)
	assert.Equal(t, 10*FallbackCostPerHa, out.Plan.EstimatedCost, "unknown culture uses fallback figures")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

func TestOpenAIPlanParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"estimated_cost\":50000,\"estimated_harvest_date\":\"2026-12-20\",\"materials\":[{\"name\":\"Ureia\",\"quantity\":80,\"unit\":\"sc\",\"unit_price_estimate\":160,\"category\":\"adubo\"}],\"timeline\":[{\"title\":\"Plantio\",\"target_date\":\"2026-10-01\",\"tasks\":[\"Semeadura\"]}],\"advice\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "test-key", "test-model")
	out, err := c.GeneratePlan(soyRequest())
	require.NoError(t, err)
	assert.False(t, out.Degraded)
	assert.Equal(t, 50000.0, out.Plan.EstimatedCost)
	assert.Equal(t, time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC), out.Plan.EstimatedHarvestDate)
	require.Len(t, out.Plan.Materials, 1)
	assert.Equal(t, entities.MatOther, out.Plan.Materials[0].Category, "unknown category normalizes")
	require.Len(t, out.Plan.Timeline, 1)
	assert.NotEmpty(t, out.Plan.Timeline[0].Tasks[0].TaskID)
}

func TestOpenAIPlanDegradesNeverErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"desculpe, não consigo"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.URL, "k", "m")
	out, err := c.GeneratePlan(soyRequest())
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, FallbackAdvice, out.Plan.Advice)

	// unreachable endpoint degrades the same way
	c = NewOpenAI("http://127.0.0.1:1", "k", "m")
	out, err = c.GeneratePlan(soyRequest())
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.NotEmpty(t, out.Reason)
}

func TestOpenAIChatApologizesOnFailure(t *testing.T) {
	c := NewOpenAI("http://127.0.0.1:1", "k", "m")
	out := c.Chat("pergunta", "")
	assert.True(t, out.Degraded)
	assert.Equal(t, ApologyMessage, out.Text)
}
