package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
)

func applicationBody(ref string) map[string]any {
	return map[string]any{
		"referenceNumber": ref,
		"address":         "2 Church Road",
		"proposalDetails": "Change of use to residential",
		"applicationType": "Full",
		"status":          "Received",
		"receivedDate":    "2025-04-01T00:00:00Z",
	}
}

func create[T any](t *testing.T, r http.Handler, path string, body any) T {
	t.Helper()
	w := do(r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[T](t, w)
}

func TestPolicies_SubViews(t *testing.T) {
	r := newRouter(t)
	b := policyBody("DM5")
	b["linkedPolicies"] = []map[string]any{{"policyId": uuid.NewString(), "policyReference": "H1", "relationship": "SUPPORTS"}}
	p := create[model.Policy](t, r, "/api/v1/policies", b)
	base := "/api/v1/policies/" + p.ID.String()

	w := do(r, http.MethodGet, base+"/linked-policies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	links := decode[[]model.LinkedPolicy](t, w)
	require.Len(t, links, 1)
	assert.Equal(t, model.RelationshipSupports, links[0].Relationship)

	w = do(r, http.MethodGet, base+"/goal-alignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = do(r, http.MethodGet, base+"/site-impacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[service.Message](t, w).Message, p.ID.String())
}

func TestSites_AssessmentViews(t *testing.T) {
	r := newRouter(t)
	s := create[model.Site](t, r, "/api/v1/sites", map[string]any{"name": "Mill Lane"})
	for _, v := range []string{"applicable-policies", "constraints", "goal-contributions", "deliverability-soundness"} {
		t.Run(v, func(t *testing.T) {
			w := do(r, http.MethodGet, "/api/v1/sites/"+s.ID.String()+"/"+v, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			w = do(r, http.MethodGet, "/api/v1/sites/"+uuid.NewString()+"/"+v, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestDocuments_Nodes(t *testing.T) {
	r := newRouter(t)
	doc := create[model.PlanDocument](t, r, "/api/v1/plan-documents", map[string]any{
		"name":     "Design Code",
		"type":     "Design Code",
		"rootNode": map[string]any{"title": "Design Code", "type": "DocumentRoot"},
	})
	assert.NotEqual(t, uuid.Nil, doc.RootNode.ID)
	base := "/api/v1/plan-documents/" + doc.ID.String() + "/nodes"

	n := create[model.DocumentNode](t, r, base, map[string]any{"title": "Streets", "type": "Chapter"})
	assert.Equal(t, doc.ID, n.DocumentID)

	page := decode[repository.PageResult[model.DocumentNode]](t, do(r, http.MethodGet, base, nil))
	assert.Equal(t, 1, page.Total)

	w := do(r, http.MethodPatch, base+"/"+n.ID.String(), map[string]any{"content": "Street widths"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Street widths", decode[model.DocumentNode](t, w).Content)

	w = do(r, http.MethodGet, "/api/v1/plan-documents/"+uuid.NewString()+"/nodes/"+n.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, base+"/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, base+"/"+n.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, base+"/"+n.ID.String(), nil).Code)
}

func TestScenarios_DuplicateAndCompare(t *testing.T) {
	r := newRouter(t)
	a := create[model.Scenario](t, r, "/api/v1/scenarios", map[string]any{"name": "Option A"})
	b := create[model.Scenario](t, r, "/api/v1/scenarios", map[string]any{"name": "Option B"})

	w := do(r, http.MethodPost, "/api/v1/scenarios/"+a.ID.String()+"/duplicate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cp := decode[model.Scenario](t, w)
	assert.Equal(t, "Option A (Copy)", cp.Name)
	assert.NotEqual(t, a.ID, cp.ID)

	cmp := "/api/v1/scenarios/" + a.ID.String() + "/comparison"
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, cmp, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, cmp+"?baseline_scenario_id=nope", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, cmp+"?baseline_scenario_id="+uuid.NewString(), nil).Code)

	w = do(r, http.MethodGet, cmp+"?baseline_scenario_id="+b.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[service.Message](t, w).Message, b.ID.String())
}

func TestGoals_PerformanceSummary(t *testing.T) {
	r := newRouter(t)
	g := create[model.Goal](t, r, "/api/v1/goals", map[string]any{
		"name": "Affordable homes", "category": "Housing", "targetMetric": "Units per year",
		"targetValue": 300, "status": "On Track", "type": "Policy",
	})
	w := do(r, http.MethodGet, "/api/v1/goals/"+g.ID.String()+"/performance-summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[map[string]any](t, w)
	assert.Equal(t, g.ID.String(), sum["goal_id"])
	assert.Equal(t, 300.0, sum["target_value"])
	assert.Nil(t, sum["current_value"])
}

func TestApplications_OfficerReport(t *testing.T) {
	r := newRouter(t)
	app := create[model.PlanningApplication](t, r, "/api/v1/planning-applications", applicationBody("25/0100/FUL"))
	base := "/api/v1/planning-applications/" + app.ID.String() + "/officer-report"

	w := do(r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	rep := create[model.OfficerReport](t, r, base, map[string]any{"version": "1", "status": "Draft"})
	assert.Equal(t, app.ID, rep.ApplicationID)
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, base, map[string]any{"version": "2", "status": "Draft"}).Code)

	create[model.OfficerReportSection](t, r, base+"/sections", map[string]any{"title": "Conclusion", "content": "Approve", "order": 2})
	create[model.OfficerReportSection](t, r, base+"/sections", map[string]any{"title": "Site", "content": "Corner plot", "order": 1})
	secs := decode[[]model.OfficerReportSection](t, do(r, http.MethodGet, base+"/sections", nil))
	require.Len(t, secs, 2)
	assert.Equal(t, "Site", secs[0].Title)

	w = do(r, http.MethodPatch, base, map[string]any{"recommendation": "Approve with conditions"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Approve with conditions", decode[model.OfficerReport](t, w).Recommendation)

	byApp := decode[repository.PageResult[model.OfficerReport]](t, do(r, http.MethodGet, "/api/v1/officer-reports?applicationId="+app.ID.String(), nil))
	assert.Equal(t, 1, byApp.Total)

	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, base, nil).Code)
	assert.Equal(t, "null", do(r, http.MethodGet, base, nil).Body.String())

	missing := "/api/v1/planning-applications/" + uuid.NewString() + "/officer-report"
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, missing, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, missing, map[string]any{"version": "1", "status": "Draft"}).Code)
}

func TestApplications_ReasoningAndPrecedents(t *testing.T) {
	r := newRouter(t)
	app := create[model.PlanningApplication](t, r, "/api/v1/planning-applications", applicationBody("25/0200/FUL"))
	base := "/api/v1/planning-applications/" + app.ID.String()

	step := create[model.ReasoningStep](t, r, base+"/reasoning/steps", map[string]any{"step": 1, "description": "Principle"})
	assert.NotEqual(t, uuid.Nil, step.ID)

	w := do(r, http.MethodGet, base+"/reasoning", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"relevantPolicies":[],"reasoningSteps":[{"id":"`+step.ID.String()+`","step":1,"description":"Principle"}],"tradeOffAnalysis":null}`, w.Body.String())

	w = do(r, http.MethodGet, base+"/site-assessment", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	prec := create[model.PrecedentCase](t, r, "/api/v1/precedent-cases", map[string]any{
		"caseReference": "APP/1/W/24/2", "address": "Old Yard", "decisionType": "Appeal",
		"decisionDate": "2024-02-02T00:00:00Z", "outcome": "Allowed",
	})
	w = do(r, http.MethodPost, base+"/linked-precedents", map[string]any{"precedentCaseId": prec.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	linked := decode[model.PlanningApplication](t, w)
	require.Len(t, linked.LinkedPrecedents, 1)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, base+"/linked-precedents", map[string]any{}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, base+"/linked-precedents", map[string]any{"precedentCaseId": uuid.NewString()}).Code)
}

func TestApplications_DeleteRemovesReport(t *testing.T) {
	r := newRouter(t)
	app := create[model.PlanningApplication](t, r, "/api/v1/planning-applications", applicationBody("25/0300/FUL"))
	rep := create[model.OfficerReport](t, r, "/api/v1/officer-reports", map[string]any{
		"applicationId": app.ID, "version": "1", "status": "Draft",
	})
	require.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/v1/planning-applications/"+app.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/officer-reports/"+rep.ID.String(), nil).Code)
}
