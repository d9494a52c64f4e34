package handlers

import (
	"context"
	"net/http"

	"github.com/creatorpilot/context-hub-gateway/internal/config"
	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
)

type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

type infoHandlers struct {
	ResponseHandler response.ResponseHandler
	Cfg             *config.Config
	HealthSvc       HealthService
}

func NewInfoHandlers(deps *Deps) *infoHandlers {
	return &infoHandlers{
		ResponseHandler: deps.ResponseHandler,
		Cfg:             deps.Cfg,
		HealthSvc:       deps.HealthSvc,
	}
}

func (h *infoHandlers) Root(w http.ResponseWriter, r *http.Request) {
	docs := "Not available"
	if h.Cfg.Debug() {
		docs = "/docs"
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.RootInfo{
		Name:        h.Cfg.AppName,
		Version:     h.Cfg.AppVersion,
		Environment: h.Cfg.Environment,
		Docs:        docs,
	})
}

// Health always returns 200; a degraded MCP shows up in dependencies, not
// in the status code.
func (h *infoHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, h.HealthSvc.Check(r.Context()))
}
