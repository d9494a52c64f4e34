package handlers

import (
	"log/slog"

	"github.com/creatorpilot/context-hub-gateway/internal/config"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

// newTestDeps builds a Deps with a discard logger; tests fill in the
// service fakes they need.
func newTestDeps() *Deps {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return &Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		Cfg:             config.New(),
	}
}
