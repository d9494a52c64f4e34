package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

func newTestHandler() *responseHandler {
	return New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
}

func TestWriteJSONBarePayload(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.WriteJSON(rr, req, http.StatusOK, map[string]string{"answer": "hi"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// No envelope: the payload is at the top level.
	if payload["answer"] != "hi" {
		t.Fatalf("payload = %v", payload)
	}
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", errs.NewNotFoundError("missing"), http.StatusNotFound, "not_found"},
		{"validation", errs.NewValidationError("bad input"), http.StatusBadRequest, "invalid_input"},
		{"oauth", errs.NewOAuthError("exchange failed", "Token exchange failed"), http.StatusBadRequest, "oauth_error"},
		{"upstream", errs.NewUpstreamError(http.StatusForbidden, "denied"), http.StatusForbidden, "upstream_error"},
		{"transient external", errs.NewExternalServiceError("mcp", "timeout", true), http.StatusServiceUnavailable, "service_unavailable"},
		{"hard external", errs.NewExternalServiceError("mcp", "bad gateway", false), http.StatusBadGateway, "service_unavailable"},
		{"unknown", assertError{}, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			h.HandleError(rr, req, tc.err)

			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tc.code {
				t.Fatalf("code = %q, want %q", resp.Code, tc.code)
			}
		})
	}
}

type assertError struct{}

func (assertError) Error() string { return "boom" }
