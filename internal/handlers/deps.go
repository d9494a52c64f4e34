package handlers

import (
	"log/slog"

	"github.com/creatorpilot/context-hub-gateway/internal/config"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Cfg             *config.Config
	ExecuteSvc      ExecuteService
	HealthSvc       HealthService
	ChannelSvc      ChannelService
	UserSvc         UserService
	FeedbackSvc     FeedbackService
	OAuthSvc        OAuthService
}
