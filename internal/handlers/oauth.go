package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/internal/response"
	"github.com/creatorpilot/context-hub-gateway/internal/services"
)

// mobileDeepLink is where the callback sends the browser so the app can
// pick the result up.
const mobileDeepLink = "creatorpilot://auth/callback"

type OAuthService interface {
	AuthURL(ctx context.Context, userID string) (string, error)
	HandleCallback(ctx context.Context, code, state string) (*dto.ConnectionResult, error)
	MobileExchange(ctx context.Context, req dto.MobileExchangeRequest) (*dto.MobileExchangeResponse, error)
}

type oauthHandlers struct {
	ResponseHandler response.ResponseHandler
	OAuthSvc        OAuthService
}

func NewOAuthHandlers(deps *Deps) *oauthHandlers {
	return &oauthHandlers{
		ResponseHandler: deps.ResponseHandler,
		OAuthSvc:        deps.OAuthSvc,
	}
}

func (h *oauthHandlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/start", h.Start)
	r.Get("/login", h.Login)
	r.Get("/callback", h.Callback)
	r.Post("/mobile/exchange", h.MobileExchange)
	return r
}

// Start is the API flow: returns the consent URL as JSON for clients that
// open the browser themselves.
func (h *oauthHandlers) Start(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("user_id is required"))
		return
	}

	authURL, err := h.OAuthSvc.AuthURL(r.Context(), userID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, dto.AuthURLResponse{AuthURL: authURL})
}

// Login is the mobile flow: redirects straight to the consent screen so the
// system browser needs no JSON parsing.
func (h *oauthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = services.DefaultUserID
	}

	authURL, err := h.OAuthSvc.AuthURL(r.Context(), userID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles the Google redirect. Success and failure both redirect
// to the app deep link; the browser never sees a JSON error here.
func (h *oauthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.OAuthSvc.HandleCallback(r.Context(), q.Get("code"), q.Get("state"))
	if err != nil {
		detail := "OAuth callback failed"
		var oauthErr *errs.OAuthError
		if errors.As(err, &oauthErr) {
			detail = oauthErr.Detail
		}
		h.redirectDeepLink(w, r, url.Values{
			"status": {"error"},
			"detail": {detail},
		})
		return
	}

	h.redirectDeepLink(w, r, url.Values{
		"status":       {"success"},
		"user_id":      {result.UserID},
		"channel_id":   {result.ChannelID},
		"channel_name": {result.ChannelName},
	})
}

func (h *oauthHandlers) MobileExchange(w http.ResponseWriter, r *http.Request) {
	var body dto.MobileExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.OAuthSvc.MobileExchange(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, resp)
}

func (h *oauthHandlers) redirectDeepLink(w http.ResponseWriter, r *http.Request, params url.Values) {
	http.Redirect(w, r, mobileDeepLink+"?"+params.Encode(), http.StatusFound)
}
