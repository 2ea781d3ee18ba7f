package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/planner"
	"github.com/kron12345/coreplanx/pkg/solver/solvertest"
)

func newTestHandler() *SolveHandler {
	return NewSolveHandler(planner.New(solvertest.NewExhaustive(), planner.Config{Workers: 2}))
}

func postSolve(t *testing.T, h *SolveHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)
	return rec
}

func TestSolve_CandidatesMode(t *testing.T) {
	h := newTestHandler()
	rec := postSolve(t, h, map[string]interface{}{
		"rulesetId":      "rs1",
		"rulesetVersion": "v1",
		"candidates": []map[string]interface{}{
			{"id": "a", "templateId": "t1", "type": "X", "params": map[string]interface{}{"serviceId": "S1", "gapMinutes": 5}},
			{"id": "b", "templateId": "t1", "type": "X", "params": map[string]interface{}{"serviceId": "S1", "gapMinutes": 2}},
		},
		"options": map[string]interface{}{"maxPerServiceType": 1},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "OPTIMAL", resp.Status)
	assert.Equal(t, []string{"a"}, resp.SelectedIDs)
	require.NotNil(t, resp.Score)
	assert.Equal(t, int64(5), *resp.Score)
	assert.Equal(t, "1 of 2 candidates selected (status: OPTIMAL).", resp.Summary)
	assert.Equal(t, model.SolverStats{TotalCandidates: 2, SelectedCandidates: 1, GroupCount: 1}, resp.Stats)
	assert.Empty(t, resp.DutyGroups)
}

func TestSolve_ProblemMode(t *testing.T) {
	h := newTestHandler()
	rec := postSolve(t, h, map[string]interface{}{
		"rulesetId":      "rs1",
		"rulesetVersion": "v1",
		"candidates":     []interface{}{},
		"problem": map[string]interface{}{
			"groups": []map[string]interface{}{
				{
					"id": "g1", "ownerId": "veh-1", "ownerKind": "vehicle", "dayKey": "2026-08-31",
					"activities": []map[string]interface{}{
						{"id": "1", "startMs": 0, "endMs": 10},
						{"id": "2", "startMs": 20, "endMs": 30},
						{"id": "3", "startMs": 40, "endMs": 50},
					},
					"edges": []map[string]interface{}{
						{"fromId": "1", "toId": "2", "gapMinutes": 5, "travelMinutes": 2},
						{"fromId": "2", "toId": "3", "gapMinutes": 5, "travelMinutes": 2},
					},
				},
			},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "OPTIMAL", resp.Status)
	require.Len(t, resp.DutyGroups, 1)
	assert.Equal(t, [][]string{{"1", "2", "3"}}, resp.DutyGroups[0].Duties)
	assert.Equal(t, "1 duties from 3 activities (status: OPTIMAL).", resp.Summary)
	assert.Nil(t, resp.Score)
	assert.Empty(t, resp.SelectedIDs)
}

func TestSolve_EmptyCandidates(t *testing.T) {
	h := newTestHandler()
	rec := postSolve(t, h, map[string]interface{}{
		"rulesetId":      "rs1",
		"rulesetVersion": "v1",
		"candidates":     []interface{}{},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "NO_CANDIDATES", resp.Status)
	assert.Equal(t, "No candidates provided.", resp.Summary)
	assert.Empty(t, resp.SelectedIDs)
	assert.Equal(t, model.SolverStats{}, resp.Stats)
}

func TestSolve_MethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/solve", nil)
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSolve_MalformedBody(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()
	h.Solve(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestSolve_MissingRulesetID(t *testing.T) {
	h := newTestHandler()
	rec := postSolve(t, h, map[string]interface{}{
		"rulesetVersion": "v1",
		"candidates":     []interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"coreplanx"}`, rec.Body.String())
}
