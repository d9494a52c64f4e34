package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
)

type ExecuteService interface {
	Execute(ctx context.Context, req dto.ExecuteRequest) (*dto.ExecuteResponse, error)
}

type executeHandlers struct {
	ResponseHandler response.ResponseHandler
	ExecuteSvc      ExecuteService
}

func NewExecuteHandlers(deps *Deps) *executeHandlers {
	return &executeHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExecuteSvc:      deps.ExecuteSvc,
	}
}

func (h *executeHandlers) Execute(w http.ResponseWriter, r *http.Request) {
	var body dto.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.ExecuteSvc.Execute(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, resp)
}
