package scenario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valuationengine/pkg/core/model"
	"valuationengine/pkg/store"
)

func newTestRouter() (*chi.Mux, *Handlers) {
	h := NewHandler(store.New(), zap.NewNop())
	r := chi.NewRouter()
	h.Routes(r)
	return r, h
}

func validScenario(id string) model.ScenarioInput {
	return model.ScenarioInput{
		Meta:      model.ScenarioMeta{ID: id, Name: "test"},
		Timeframe: model.TimeframeSettings{Months: 3},
	}
}

func TestHandleHealth(t *testing.T) {
	r, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleCreateScenario_AssignsIDWhenOmitted(t *testing.T) {
	r, h := newTestRouter()
	payload := createScenarioRequest{Scenario: model.ScenarioInput{Timeframe: model.TimeframeSettings{Months: 1}}}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp createScenarioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ScenarioID)

	_, err := h.store.Get(resp.ScenarioID)
	assert.NoError(t, err)
}

func TestHandleCreateScenario_CloneFrom(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("source"))

	payload := createScenarioRequest{CloneFrom: "source", Scenario: model.ScenarioInput{Meta: model.ScenarioMeta{ID: "clone"}}}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp createScenarioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "clone", resp.ScenarioID)
}

func TestHandleCreateScenario_CloneFromUnknownSourceIs404(t *testing.T) {
	r, _ := newTestRouter()
	payload := createScenarioRequest{CloneFrom: "missing"}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListScenarios(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("a"))
	h.store.Save(validScenario("b"))

	req := httptest.NewRequest(http.MethodGet, "/scenarios", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp listScenariosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.Scenarios)
}

func TestHandleGetScenario_RunsCalculatorOverStoredScenario(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("s1"))

	req := httptest.NewRequest(http.MethodGet, "/scenarios/s1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Monthly, 3)
}

func TestHandleGetScenario_UnknownIDIs404(t *testing.T) {
	r, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/scenarios/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRunScenario_ByScenarioID(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("s1"))

	body, _ := json.Marshal(runScenarioRequest{ScenarioID: "s1"})
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleRunScenario_InlineScenarioWithMonthsOverride(t *testing.T) {
	r, _ := newTestRouter()
	scenario := validScenario("inline")
	body, _ := json.Marshal(runScenarioRequest{Scenario: &scenario, Months: 6})
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Monthly, 6)
}

func TestHandleRunScenario_NeitherFieldResolvesIs404(t *testing.T) {
	r, _ := newTestRouter()
	body, _ := json.Marshal(runScenarioRequest{})
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCompareScenarios(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("a"))
	h.store.Save(validScenario("b"))

	req := httptest.NewRequest(http.MethodGet, "/scenarios/a/compare?ids=b", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp compareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.ScenarioIDs)
	assert.Len(t, resp.Valuation, 2)
}

func TestHandleCompareScenarios_UnknownIDIs404(t *testing.T) {
	r, h := newTestRouter()
	h.store.Save(validScenario("a"))

	req := httptest.NewRequest(http.MethodGet, "/scenarios/a/compare?ids=missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
