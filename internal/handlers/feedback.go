package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
)

type FeedbackService interface {
	Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackHandlers struct {
	ResponseHandler response.ResponseHandler
	FeedbackSvc     FeedbackService
}

func NewFeedbackHandlers(deps *Deps) *feedbackHandlers {
	return &feedbackHandlers{
		ResponseHandler: deps.ResponseHandler,
		FeedbackSvc:     deps.FeedbackSvc,
	}
}

func (h *feedbackHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Submit)
	return r
}

func (h *feedbackHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var body dto.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.FeedbackSvc.Submit(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, resp)
}
