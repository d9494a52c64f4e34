package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/creatorpilot/context-hub-gateway/internal/bootstrap"
	"github.com/creatorpilot/context-hub-gateway/internal/config"
	"github.com/creatorpilot/context-hub-gateway/internal/handlers"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
	"github.com/creatorpilot/context-hub-gateway/internal/router"
	"github.com/creatorpilot/context-hub-gateway/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs := bootstrap.Run(cfg)

	// services
	execSvc := services.NewExecuteService(bs.MCP)
	healthSvc := services.NewHealthService(bs.MCP, cfg.AppVersion, cfg.LLMProvider)
	chanSvc := services.NewChannelService(bs.MCP)
	userSvc := services.NewUserService(bs.MCP)
	fbSvc := services.NewFeedbackService()
	oauthSvc := services.NewOAuthService(bs.Google, bs.MCP, cfg.GoogleClientID, cfg.GoogleRedirectURI)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Cfg = cfg
	deps.ExecuteSvc = execSvc
	deps.HealthSvc = healthSvc
	deps.ChannelSvc = chanSvc
	deps.UserSvc = userSvc
	deps.FeedbackSvc = fbSvc
	deps.OAuthSvc = oauthSvc

	// router
	r := router.NewRouter(deps)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	bs.Log.Info("starting server",
		"app", cfg.AppName,
		"version", cfg.AppVersion,
		"environment", cfg.Environment,
		"mcp_base_url", cfg.MCPBaseURL,
		"addr", addr,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := srv.ListenAndServe()
	exitOnError("server start failed", err, bs.Log)
}
