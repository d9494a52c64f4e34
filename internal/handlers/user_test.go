package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
)

type fakeUserSvc struct {
	status    dto.UserStatus
	gotUserID string
}

func (f *fakeUserSvc) Status(_ context.Context, userID string) dto.UserStatus {
	f.gotUserID = userID
	return f.status
}

func TestUserStatusHandler(t *testing.T) {
	svc := &fakeUserSvc{status: dto.UserStatus{
		UserPlan: "PRO",
		Usage:    dto.Usage{Used: 2, Limit: 100},
	}}
	deps := newTestDeps()
	deps.UserSvc = svc
	h := NewUserHandlers(deps)

	req := httptest.NewRequest(http.MethodGet, "/user/status?user_id=u-1", nil)
	rr := httptest.NewRecorder()

	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", rr.Code, rr.Body.String())
	}
	var status dto.UserStatus
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if status.UserPlan != "PRO" || status.Usage.Used != 2 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if svc.gotUserID != "u-1" {
		t.Fatalf("service called with %q", svc.gotUserID)
	}
}

func TestUserStatusHandlerRequiresUserID(t *testing.T) {
	deps := newTestDeps()
	deps.UserSvc = &fakeUserSvc{}
	h := NewUserHandlers(deps)

	req := httptest.NewRequest(http.MethodGet, "/user/status", nil)
	rr := httptest.NewRecorder()

	h.Status(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
