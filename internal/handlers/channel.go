package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
	"github.com/creatorpilot/context-hub-gateway/internal/services"
)

const defaultPeriod = "7d"

type ChannelService interface {
	Stats(ctx context.Context, userID, period string) (json.RawMessage, error)
	TopVideo(ctx context.Context, userID, period string) (*dto.TopVideo, error)
}

type channelHandlers struct {
	ResponseHandler response.ResponseHandler
	ChannelSvc      ChannelService
}

func NewChannelHandlers(deps *Deps) *channelHandlers {
	return &channelHandlers{
		ResponseHandler: deps.ResponseHandler,
		ChannelSvc:      deps.ChannelSvc,
	}
}

func (h *channelHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/stats", h.Stats)
	r.Get("/top-video", h.TopVideo)
	return r
}

func (h *channelHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	userID, period := channelQuery(r)

	stats, err := h.ChannelSvc.Stats(r.Context(), userID, period)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, stats)
}

func (h *channelHandlers) TopVideo(w http.ResponseWriter, r *http.Request) {
	userID, period := channelQuery(r)

	video, err := h.ChannelSvc.TopVideo(r.Context(), userID, period)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, video)
}

// channelQuery applies the single-user-mode defaults the dashboard relies on.
func channelQuery(r *http.Request) (userID, period string) {
	q := r.URL.Query()

	userID = q.Get("user_id")
	if userID == "" {
		userID = services.DefaultUserID
	}
	period = q.Get("period")
	if period == "" {
		period = defaultPeriod
	}
	return userID, period
}
