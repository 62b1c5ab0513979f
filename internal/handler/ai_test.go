package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
)

func TestAssistant_PolicyGuidance(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/v1/ai/generate-policy-guidance", map[string]any{"policy_text": "An Ambiguous requirement"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[map[string][]model.AIGuidance](t, w)
	require.Len(t, out["suggestions"], 2)
	assert.Equal(t, "Ambiguity", out["suggestions"][0].Type)
	assert.Equal(t, "Conflict Check", out["suggestions"][1].Type)

	w = do(r, http.MethodPost, "/api/v1/ai/generate-policy-guidance", map[string]any{"policy_text": "Clear text", "context": map[string]any{"k": 1}})
	out = decode[map[string][]model.AIGuidance](t, w)
	require.Len(t, out["suggestions"], 1)
	assert.Equal(t, "AI Model Y", out["suggestions"][0].Source)

	w = do(r, http.MethodPost, "/api/v1/ai/generate-policy-guidance", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistant_TextEndpoints(t *testing.T) {
	r := newRouter(t)
	id := uuid.NewString()
	pol := uuid.NewString()

	cases := []struct {
		name string
		path string
		body map[string]any
		key  string
		want string
	}{
		{"site justification", "generate-site-justification", map[string]any{"site_id": id, "relevant_policy_ids": []string{pol}}, "justificationText",
			"AI-generated draft justification for site " + id + " considering policies " + pol + " (stub)."},
		{"scenario commentary", "generate-scenario-commentary", map[string]any{"scenario_id": id}, "commentary",
			"AI-generated commentary for scenario " + id + " (stub)."},
		{"trade-off narrative", "generate-dm-tradeoff-narrative", map[string]any{
			"application_id":  id,
			"competing_goals": []map[string]string{{"goalA": "Housing Delivery", "goalB": "Heritage Protection", "tension": "Balancing needs"}},
		}, "aiNarrative", "AI-generated trade-off narrative for application " + id + " considering competing goals (stub)."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/ai/"+tc.path, tc.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]string](t, w)[tc.key], tc.want)

			w = do(r, http.MethodPost, "/api/v1/ai/"+tc.path, map[string]any{})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAssistant_GoalRisks(t *testing.T) {
	r := newRouter(t)
	goal := uuid.NewString()
	w := do(r, http.MethodPost, "/api/v1/ai/analyze-goal-risks", map[string]any{"goal_id": goal})
	require.Equal(t, http.StatusOK, w.Code)
	risks := decode[map[string][]string](t, w)["risks"]
	assert.Equal(t, []string{
		"Risk 1 for goal " + goal + " (stub)",
		"Risk 2: Dependency on policy N/A (stub)",
	}, risks)

	w = do(r, http.MethodPost, "/api/v1/ai/analyze-goal-risks", map[string]any{"goal_id": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistant_ReasoningAndDraft(t *testing.T) {
	r := newRouter(t)
	app := uuid.New()

	w := do(r, http.MethodPost, "/api/v1/ai/generate-dm-reasoning-steps", map[string]any{"application_id": app})
	require.Equal(t, http.StatusOK, w.Code)
	steps := decode[map[string][]model.ReasoningStep](t, w)["reasoningSteps"]
	require.Len(t, steps, 2)
	assert.Equal(t, 2, steps[1].Step)

	w = do(r, http.MethodPost, "/api/v1/ai/generate-report-draft", map[string]any{"applicationId": app})
	require.Equal(t, http.StatusOK, w.Code)
	draft := decode[map[string]model.OfficerReport](t, w)["report"]
	assert.Equal(t, app, draft.ApplicationID)
	assert.Equal(t, model.ReportDraft, draft.Status)
	assert.Len(t, draft.Sections, 1)

	// the draft is not stored
	w = do(r, http.MethodGet, "/api/v1/officer-reports", nil)
	assert.Contains(t, w.Body.String(), `"total":0`)
}
