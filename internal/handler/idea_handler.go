package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ideagen/internal/apperrors"
	"ideagen/internal/service"
)

type CreateIdeaRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ContentType string   `json:"contentType" validate:"required,oneof=blog video social"`
	Keywords    []string `json:"keywords"`
	Industry    string   `json:"industry"`
}

type UpdateIdeaRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ContentType *string  `json:"contentType" validate:"omitempty,oneof=blog video social"`
	Keywords    []string `json:"keywords"`
	Industry    *string  `json:"industry"`
	Saved       *bool    `json:"saved"`
}

type GenerateRequest struct {
	Topic       string `json:"topic"`
	ContentType string `json:"contentType"`
	Industry    string `json:"industry"`
}

// writeIdeaError maps the service error taxonomy onto the idea API
// contract. Ownership failures use the configured status; existing
// clients expect 401 where 403 would be the obvious choice.
func (h *Handlers) writeIdeaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, "Idea not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		WriteError(w, "User not authorized", h.Cfg.OwnershipForbiddenStatus)
	default:
		h.Logger.Error("idea operation failed", zap.Error(err))
		WriteError(w, "Server Error", http.StatusInternalServerError)
	}
}

func (h *Handlers) GetIdeas(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	ideas, err := h.IdeaService.ListByOwner(r.Context(), user.UserID)
	if err != nil {
		h.writeIdeaError(w, err)
		return
	}

	WriteSuccess(w, ideas, http.StatusOK)
}

func (h *Handlers) CreateIdea(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	var req CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title, description and content type are required", http.StatusBadRequest)
		return
	}

	idea, err := h.IdeaService.Create(r.Context(), user.UserID, service.CreateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Keywords:    req.Keywords,
		Industry:    req.Industry,
	})
	if err != nil {
		h.writeIdeaError(w, err)
		return
	}

	WriteSuccess(w, idea, http.StatusOK)
}

func (h *Handlers) GetIdea(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	ideaID := mux.Vars(r)["id"]

	idea, err := h.IdeaService.GetByID(r.Context(), user.UserID, ideaID)
	if err != nil {
		h.writeIdeaError(w, err)
		return
	}

	WriteSuccess(w, idea, http.StatusOK)
}

func (h *Handlers) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	ideaID := mux.Vars(r)["id"]

	var req UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	idea, err := h.IdeaService.Update(r.Context(), user.UserID, ideaID, service.UpdateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Keywords:    req.Keywords,
		Industry:    req.Industry,
		Saved:       req.Saved,
	})
	if err != nil {
		h.writeIdeaError(w, err)
		return
	}

	WriteSuccess(w, idea, http.StatusOK)
}

func (h *Handlers) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	ideaID := mux.Vars(r)["id"]

	if err := h.IdeaService.Delete(r.Context(), user.UserID, ideaID); err != nil {
		h.writeIdeaError(w, err)
		return
	}

	WriteSuccess(w, MsgResponse{Msg: "Idea removed"}, http.StatusOK)
}

func (h *Handlers) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFromContext(r.Context()); !ok {
		WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Topic == "" || req.ContentType == "" || req.Industry == "" {
		WriteError(w, "Please provide content type, industry, and topic", http.StatusBadRequest)
		return
	}

	drafts, err := h.Generator.Generate(r.Context(), req.Topic, req.ContentType, req.Industry)
	if err != nil {
		h.Logger.Error("generation failed", zap.Error(err))
		WriteError(w, "Server Error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, drafts, http.StatusOK)
}
