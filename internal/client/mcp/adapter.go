package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
)

// pingTimeout is the budget for reachability checks, independent of the
// configured request timeout so a slow MCP doesn't stall /health.
const pingTimeout = 2 * time.Second

// StatusError captures non-2xx MCP responses with status-aware context.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mcp: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Adapter is the HTTP client for the internal MCP backend.
type Adapter struct {
	baseURL    string
	httpClient *http.Client
	pingClient *http.Client
}

func NewAdapter(baseURL string, timeout time.Duration) *Adapter {
	return &Adapter{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		pingClient: &http.Client{Timeout: pingTimeout},
	}
}

// Execute forwards a message to MCP /execute and returns the decoded wire
// response. Declared failures (success=false) are returned to the caller
// undecided; the service layer owns the pass-through policy.
func (a *Adapter) Execute(ctx context.Context, req dto.MCPExecuteRequest) (*dto.MCPExecuteResponse, error) {
	if req.Metadata == nil {
		req.Metadata = map[string]any{}
	}

	var resp dto.MCPExecuteResponse
	if err := a.postJSON(ctx, a.baseURL+"/execute", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping reports MCP reachability. It posts a harmless execute payload rather
// than relying on a dedicated health endpoint.
func (a *Adapter) Ping(ctx context.Context) bool {
	payload := dto.MCPExecuteRequest{
		UserID:    "health_check",
		ChannelID: "health_check",
		Message:   "ping",
		Metadata:  map[string]any{},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.pingClient.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	return res.StatusCode == http.StatusOK
}

// ChannelStats proxies MCP channel statistics verbatim.
func (a *Adapter) ChannelStats(ctx context.Context, userID, period string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/channels/%s/stats?%s",
		a.baseURL, url.PathEscape(userID), url.Values{"period": {period}}.Encode())

	raw, err := a.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// TopVideo fetches the top-performing video for the period.
func (a *Adapter) TopVideo(ctx context.Context, userID, period string) (*dto.TopVideo, error) {
	u := fmt.Sprintf("%s/analytics/top-video?%s",
		a.baseURL, url.Values{"user_id": {userID}, "period": {period}}.Encode())

	raw, err := a.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}

	var video dto.TopVideo
	if err := json.Unmarshal(raw, &video); err != nil {
		return nil, fmt.Errorf("mcp: decode top video: %w", err)
	}
	return &video, nil
}

// UserStatus fetches the user's plan and usage without incrementing it.
func (a *Adapter) UserStatus(ctx context.Context, userID string) (*dto.UserStatus, error) {
	u := fmt.Sprintf("%s/api/v1/user/status?%s",
		a.baseURL, url.Values{"user_id": {userID}}.Encode())

	raw, err := a.getJSON(ctx, u)
	if err != nil {
		return nil, err
	}

	var status dto.UserStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("mcp: decode user status: %w", err)
	}
	return &status, nil
}

// ConnectChannel forwards an OAuth channel connection to MCP for
// persistence. Both 200 and 201 count as success.
func (a *Adapter) ConnectChannel(ctx context.Context, req dto.ChannelConnectRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("mcp: marshal channel connect: %w", err)
	}

	u := a.baseURL + "/channels/connect"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mcp: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := a.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		// Body deliberately not captured: it may echo tokens back.
		return &StatusError{StatusCode: res.StatusCode, URL: u}
	}
	return nil
}

func (a *Adapter) postJSON(ctx context.Context, u string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mcp: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mcp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := a.do(req, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("mcp: decode response: %w", err)
	}
	return nil
}

func (a *Adapter) getJSON(ctx context.Context, u string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("mcp: create request: %w", err)
	}

	return a.do(req, u)
}

func (a *Adapter) do(req *http.Request, u string) ([]byte, error) {
	res, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &StatusError{
			StatusCode: res.StatusCode,
			URL:        u,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("mcp: read response body: %w", err)
	}
	return buf, nil
}
