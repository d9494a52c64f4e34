package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	mcpclient "github.com/creatorpilot/context-hub-gateway/internal/client/mcp"
	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/helpers"
)

type stubMCPChannel struct {
	stats    json.RawMessage
	statsErr error
	video    *dto.TopVideo
	videoErr error
}

func (s *stubMCPChannel) ChannelStats(_ context.Context, _, _ string) (json.RawMessage, error) {
	return s.stats, s.statsErr
}

func (s *stubMCPChannel) TopVideo(_ context.Context, _, _ string) (*dto.TopVideo, error) {
	return s.video, s.videoErr
}

func TestStatsPassThrough(t *testing.T) {
	raw := json.RawMessage(`{"subscriberCount":1250,"viewCount":15420}`)
	svc := NewChannelService(&stubMCPChannel{stats: raw})

	stats, err := svc.Stats(helpers.TestCtx(), "user-1", "7d")
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if string(stats) != string(raw) {
		t.Fatalf("stats = %s", stats)
	}
}

func TestStatsNotFound(t *testing.T) {
	svc := NewChannelService(&stubMCPChannel{
		statsErr: &mcpclient.StatusError{StatusCode: http.StatusNotFound, URL: "u"},
	})

	_, err := svc.Stats(helpers.TestCtx(), "user-1", "7d")
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestStatsUpstreamStatusPropagates(t *testing.T) {
	svc := NewChannelService(&stubMCPChannel{
		statsErr: &mcpclient.StatusError{StatusCode: http.StatusForbidden, URL: "u"},
	})

	_, err := svc.Stats(helpers.TestCtx(), "user-1", "7d")
	var upErr *errs.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upErr.Status != http.StatusForbidden {
		t.Fatalf("status = %d", upErr.Status)
	}
}

func TestStatsFailsClosedOnTransportError(t *testing.T) {
	svc := NewChannelService(&stubMCPChannel{
		statsErr: &url.Error{Op: "Get", URL: "u", Err: errors.New("connection refused")},
	})

	_, err := svc.Stats(helpers.TestCtx(), "user-1", "7d")
	var svcErr *errs.ExternalServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("err = %v, want ExternalServiceError", err)
	}
	if !svcErr.Transient {
		t.Fatalf("expected transient error")
	}
}

func TestTopVideoFailsOpenOnTransportError(t *testing.T) {
	svc := NewChannelService(&stubMCPChannel{
		videoErr: &url.Error{Op: "Get", URL: "u", Err: errors.New("connection refused")},
	})

	video, err := svc.TopVideo(helpers.TestCtx(), "user-1", "7d")
	if err != nil {
		t.Fatalf("TopVideo must fail open, got: %v", err)
	}
	if video.VideoID != nil || video.Views != 0 || video.GrowthPercentage != 0 {
		t.Fatalf("expected empty state, got %+v", video)
	}
}

func TestTopVideoSurfacesUpstreamStatus(t *testing.T) {
	svc := NewChannelService(&stubMCPChannel{
		videoErr: &mcpclient.StatusError{StatusCode: http.StatusInternalServerError, URL: "u"},
	})

	if _, err := svc.TopVideo(helpers.TestCtx(), "user-1", "7d"); err == nil {
		t.Fatalf("expected error for upstream status failure")
	}
}

func TestTopVideoPassThrough(t *testing.T) {
	id := "vid-1"
	svc := NewChannelService(&stubMCPChannel{
		video: &dto.TopVideo{VideoID: &id, Views: 1500, GrowthPercentage: 12.5},
	})

	video, err := svc.TopVideo(helpers.TestCtx(), "user-1", "30d")
	if err != nil {
		t.Fatalf("TopVideo returned error: %v", err)
	}
	if video.VideoID == nil || *video.VideoID != "vid-1" || video.Views != 1500 {
		t.Fatalf("unexpected video: %+v", video)
	}
}
