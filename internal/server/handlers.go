package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	logs := s.store.ListLogs(r.Context())
	if logs == nil {
		logs = []models.WorkoutLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleUpsertLog(w http.ResponseWriter, r *http.Request) {
	var candidate models.WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	finalized, err := s.store.UpsertLog(r.Context(), candidate)
	if errors.Is(err, storage.ErrInvalidLog) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("upsert log failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, finalized)
}

func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	var ref models.LogRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.store.DeleteLog(r.Context(), ref); err != nil {
		s.log.Error("delete log failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVolumeSeries(w http.ResponseWriter, r *http.Request) {
	limit := 7
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	writeJSON(w, http.StatusOK, s.store.VolumeSeries(r.Context(), limit))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": s.store.GetProfileStats(r.Context(), time.Now()),
		"records": s.store.PersonalRecords(r.Context()),
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DayID string `json:"dayId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DayID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "dayId is required"})
		return
	}

	start, err := s.store.StartSession(r.Context(), body.DayID)
	if err != nil {
		s.log.Error("start session failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, models.SessionMarker{DayID: body.DayID, StartTime: start})
}

func (s *Server) handleActiveSession(w http.ResponseWriter, r *http.Request) {
	dayID := r.URL.Query().Get("day")
	if dayID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day parameter required"})
		return
	}

	start, ok := s.store.ActiveStart(r.Context(), dayID)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"startTime": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"startTime": start})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.EndSession(r.Context()); err != nil {
		s.log.Error("end session failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Program(r.Context()))
}

func (s *Server) handleSaveProgram(w http.ResponseWriter, r *http.Request) {
	var days []models.WorkoutDay
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	saved, err := s.store.SaveProgram(r.Context(), days)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidProgram) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("save program failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleNextWorkout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"dayId": s.store.NextRecommendedDayID(r.Context())})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Settings(r.Context()))
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var st models.Settings
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.store.SaveSettings(r.Context(), st); err != nil {
		s.log.Error("save settings failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.store.Settings(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
