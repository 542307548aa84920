package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, MsgResponse{Msg: "Welcome to the Content Idea Generator API"}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.StatusRepo.Ping(r.Context()); err != nil {
		h.Logger.Error("health check failed", zap.Error(err))
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	tables, err := h.StatusRepo.CountTablesDB(r.Context())
	if err != nil {
		h.Logger.Error("failed to count tables", zap.Error(err))
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, HealthResponse{Status: "ok", Tables: tables}, http.StatusOK)
}
