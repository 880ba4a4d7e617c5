package server

import (
	"encoding/json"
	"net/http"
)

// recentLogsForAnalysis caps how many sessions are summarized for the coach.
const recentLogsForAnalysis = 5

func (s *Server) handleAskCoach(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Question == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	answer := s.coach.AskCoach(r.Context(), body.Question, body.Context)
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	logs := s.store.RecentLogs(r.Context(), recentLogsForAnalysis)
	program := s.store.Program(r.Context())

	analysis := s.coach.Analyze(r.Context(), logs, program)
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}
