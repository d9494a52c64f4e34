package handlers

import (
	"context"
	"net/http"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
)

type UserService interface {
	Status(ctx context.Context, userID string) dto.UserStatus
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("user_id is required"))
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, h.UserSvc.Status(r.Context(), userID))
}
