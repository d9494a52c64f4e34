package services

import (
	"context"
	"time"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

// statusTimeout keeps the status lookup snappy; the frontend polls it.
const statusTimeout = 5 * time.Second

type mcpUserClient interface {
	UserStatus(ctx context.Context, userID string) (*dto.UserStatus, error)
}

type UserService struct {
	mcp mcpUserClient
}

func NewUserService(mcp mcpUserClient) *UserService {
	return &UserService{mcp: mcp}
}

// Status returns the user's plan and usage. Fail-open: any backend failure
// yields the free-plan default so the frontend never blocks on MCP.
func (s *UserService) Status(ctx context.Context, userID string) dto.UserStatus {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	status, err := s.mcp.UserStatus(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("user status lookup failed, returning default", "error", err)
		return dto.DefaultUserStatus()
	}
	return *status
}
