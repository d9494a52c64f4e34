package services

import (
	"context"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

type mcpPinger interface {
	Ping(ctx context.Context) bool
}

type HealthService struct {
	mcp         mcpPinger
	version     string
	llmProvider string
}

func NewHealthService(mcp mcpPinger, version, llmProvider string) *HealthService {
	return &HealthService{mcp: mcp, version: version, llmProvider: llmProvider}
}

// Check reports the gateway as healthy whenever it can accept traffic;
// dependencies are reported ok/degraded so orchestrators don't restart the
// gateway for a flaky backend.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponse {
	mcpStatus := "ok"
	if !s.mcp.Ping(ctx) {
		logger.FromContext(ctx).Warn("mcp dependency degraded")
		mcpStatus = "degraded"
	}

	return dto.HealthResponse{
		Status:       "healthy",
		Version:      s.version,
		LLMProvider:  s.llmProvider,
		Dependencies: map[string]string{"mcp": mcpStatus},
	}
}
