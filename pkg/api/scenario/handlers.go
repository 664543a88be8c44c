// Package scenario implements the HTTP surface over the scenario store and
// calculator: the six endpoints spec.md §6 names. Grounded on the teacher's
// one-handler-per-resource pkg/api/* layout (NewHandler constructors taking
// their collaborators), adapted from raw http.HandleFunc to chi routing per
// SPEC_FULL.md §3.1.
package scenario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"valuationengine/pkg/core/calc"
	"valuationengine/pkg/core/model"
	"valuationengine/pkg/store"
)

// Handlers bundles the store and logger every scenario endpoint needs.
type Handlers struct {
	store  *store.ScenarioStore
	logger *zap.Logger
}

// NewHandler constructs the scenario resource's handlers.
func NewHandler(s *store.ScenarioStore, logger *zap.Logger) *Handlers {
	return &Handlers{store: s, logger: logger}
}

// Routes mounts the six scenario endpoints onto r.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Post("/scenarios", h.HandleCreateScenario)
	r.Get("/scenarios", h.HandleListScenarios)
	r.Get("/scenarios/{id}", h.HandleGetScenario)
	r.Get("/scenarios/{id}/compare", h.HandleCompareScenarios)
	r.Post("/run", h.HandleRunScenario)
}

type createScenarioRequest struct {
	Scenario  model.ScenarioInput `json:"scenario"`
	CloneFrom string              `json:"clone_from,omitempty"`
}

type createScenarioResponse struct {
	ScenarioID string `json:"scenario_id"`
}

// HandleCreateScenario implements POST /scenarios: stores a new scenario,
// or a deep-copied clone of an existing one (SPEC_FULL.md §4.1).
func (h *Handlers) HandleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.CloneFrom != "" {
		newID := req.Scenario.Meta.ID
		if newID == "" {
			newID = uuid.NewString()
		}
		cloned, err := h.store.Clone(req.CloneFrom, newID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		h.logger.Info("scenario cloned", zap.String("source", req.CloneFrom), zap.String("id", cloned.Meta.ID))
		writeJSON(w, http.StatusOK, createScenarioResponse{ScenarioID: cloned.Meta.ID})
		return
	}

	scenario := req.Scenario
	if scenario.Meta.ID == "" {
		scenario.Meta.ID = uuid.NewString()
	}
	h.store.Save(scenario)
	h.logger.Info("scenario created", zap.String("id", scenario.Meta.ID))
	writeJSON(w, http.StatusOK, createScenarioResponse{ScenarioID: scenario.Meta.ID})
}

type listScenariosResponse struct {
	Scenarios []string `json:"scenarios"`
}

// HandleListScenarios implements GET /scenarios.
func (h *Handlers) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listScenariosResponse{Scenarios: h.store.List()})
}

type runResponse struct {
	Result model.ScenarioResult `json:"result"`
}

// HandleGetScenario implements GET /scenarios/{id}: runs the calculator over
// the stored scenario.
func (h *Handlers) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	scenario, err := h.store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.runAndRespond(w, scenario)
}

type runScenarioRequest struct {
	ScenarioID string               `json:"scenario_id,omitempty"`
	Scenario   *model.ScenarioInput `json:"scenario,omitempty"`
	Months     int                  `json:"months,omitempty"`
}

// HandleRunScenario implements POST /run: resolves a scenario from either
// field, optionally overrides timeframe.months, runs the calculator.
func (h *Handlers) HandleRunScenario(w http.ResponseWriter, r *http.Request) {
	var req runScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var scenario model.ScenarioInput
	switch {
	case req.Scenario != nil:
		scenario = *req.Scenario
	case req.ScenarioID != "":
		stored, err := h.store.Get(req.ScenarioID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		scenario = stored
	default:
		writeError(w, http.StatusNotFound, errors.New("scenario not found"))
		return
	}

	if req.Months > 0 {
		scenario.Timeframe.Months = req.Months
	}
	h.runAndRespond(w, scenario)
}

type compareResponse struct {
	ScenarioIDs []string  `json:"scenario_ids"`
	Valuation   []float64 `json:"valuation"`
}

// HandleCompareScenarios implements GET /scenarios/{id}/compare?ids=a,b,c.
func (h *Handlers) HandleCompareScenarios(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ids := []string{id}
	if raw := r.URL.Query().Get("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part != "" {
				ids = append(ids, part)
			}
		}
	}

	values := make([]float64, 0, len(ids))
	for _, scenarioID := range ids {
		scenario, err := h.store.Get(scenarioID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		result, err := calc.Run(scenario)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		values = append(values, result.Valuation.DCF.EnterpriseValue)
	}

	writeJSON(w, http.StatusOK, compareResponse{ScenarioIDs: ids, Valuation: values})
}

// HandleHealth implements GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) runAndRespond(w http.ResponseWriter, scenario model.ScenarioInput) {
	result, err := calc.Run(scenario)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		h.logger.Error("scenario run failed", zap.String("id", scenario.Meta.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, runResponse{Result: result})
}

func writeStoreError(w http.ResponseWriter, err error) {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
