package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	mcpclient "github.com/creatorpilot/context-hub-gateway/internal/client/mcp"
	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

type mcpChannelClient interface {
	ChannelStats(ctx context.Context, userID, period string) (json.RawMessage, error)
	TopVideo(ctx context.Context, userID, period string) (*dto.TopVideo, error)
}

type ChannelService struct {
	mcp mcpChannelClient
}

func NewChannelService(mcp mcpChannelClient) *ChannelService {
	return &ChannelService{mcp: mcp}
}

// Stats proxies channel statistics from MCP. Fail-closed: a missing
// connection surfaces as 404, other upstream statuses pass through, and an
// unreachable backend becomes 503.
func (s *ChannelService) Stats(ctx context.Context, userID, period string) (json.RawMessage, error) {
	stats, err := s.mcp.ChannelStats(ctx, userID, period)
	if err != nil {
		var statusErr *mcpclient.StatusError
		if errors.As(err, &statusErr) {
			if statusErr.StatusCode == http.StatusNotFound {
				return nil, errs.NewNotFoundError("No connected YouTube channel found")
			}
			return nil, errs.NewUpstreamError(statusErr.StatusCode, "Failed to fetch channel stats")
		}
		return nil, errs.NewExternalServiceError("mcp", err.Error(), true)
	}
	return stats, nil
}

// TopVideo proxies the top-performing video. Fail-open: if the backend is
// unreachable the dashboard gets an empty state instead of an error.
func (s *ChannelService) TopVideo(ctx context.Context, userID, period string) (*dto.TopVideo, error) {
	video, err := s.mcp.TopVideo(ctx, userID, period)
	if err != nil {
		var netErr *url.Error
		if errors.As(err, &netErr) {
			logger.FromContext(ctx).Warn("top-video request failed, returning empty state", "error", err)
			return &dto.TopVideo{}, nil
		}
		return nil, err
	}
	return video, nil
}
