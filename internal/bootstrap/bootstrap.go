package bootstrap

import (
	"log/slog"
	"strings"

	googleclient "github.com/creatorpilot/context-hub-gateway/internal/client/google"
	mcpclient "github.com/creatorpilot/context-hub-gateway/internal/client/mcp"
	"github.com/creatorpilot/context-hub-gateway/internal/config"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

// Result holds everything main needs that has process lifetime.
type Result struct {
	Log    *slog.Logger
	MCP    *mcpclient.Adapter
	Google *googleclient.Adapter
}

func Run(cfg *config.Config) *Result {
	log := logger.New(cfg.LogLevel)

	mcp := mcpclient.NewAdapter(cfg.MCPBaseURL, cfg.MCPTimeout)

	google := googleclient.NewAdapter(googleclient.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURI:  cfg.GoogleRedirectURI,
		AuthURL:      cfg.GoogleAuthURL,
		TokenURL:     cfg.GoogleTokenURL,
		ChannelsAPI:  cfg.YouTubeChannelsAPI,
		Scopes:       splitScopes(cfg.YouTubeScopes),
	})

	return &Result{
		Log:    log,
		MCP:    mcp,
		Google: google,
	}
}

func splitScopes(raw string) []string {
	var scopes []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
