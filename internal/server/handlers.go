package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs a full analysis synchronously and records the run. The
// response carries the run ID so clients can fetch the report again later.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run, err := s.store.CreateRun(r.Context(), profile)
	if err != nil {
		zap.L().Error("create run failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not record run")
		return
	}

	if err := s.store.UpdateRunStatus(r.Context(), run.ID, model.RunStatusRunning); err != nil {
		zap.L().Warn("update run status failed", zap.String("run_id", run.ID), zap.Error(err))
	}

	report, err := s.engine.Analyze(r.Context(), &profile)
	if err != nil {
		if ferr := s.store.FailRun(r.Context(), run.ID, err.Error()); ferr != nil {
			zap.L().Warn("fail run failed", zap.String("run_id", run.ID), zap.Error(ferr))
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.CompleteRun(r.Context(), run.ID, report); err != nil {
		zap.L().Warn("complete run failed", zap.String("run_id", run.ID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, struct {
		RunID  string        `json:"run_id"`
		Report *model.Report `json:"report"`
	}{RunID: run.ID, Report: report})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.RunFilter{
		Status: model.RunStatus(q.Get("status")),
		City:   q.Get("city"),
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	runs, err := s.store.ListRuns(r.Context(), filter)
	if err != nil {
		zap.L().Error("list runs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not list runs")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Runs []model.Run `json:"runs"`
	}{Runs: runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
