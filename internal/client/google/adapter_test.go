package googleclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newTestAdapter(tokenURL, channelsAPI string) *Adapter {
	return NewAdapter(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:3000/auth/youtube/callback",
		AuthURL:      "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:     tokenURL,
		ChannelsAPI:  channelsAPI,
		Scopes: []string{
			"https://www.googleapis.com/auth/youtube.readonly",
			"https://www.googleapis.com/auth/yt-analytics.readonly",
		},
	})
}

func TestAuthCodeURL(t *testing.T) {
	a := newTestAdapter("https://oauth2.googleapis.com/token", "")

	raw := a.AuthCodeURL("user-1:token-1")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse auth url: %v", err)
	}

	q := u.Query()
	if q.Get("client_id") != "client-id" {
		t.Fatalf("client_id = %q", q.Get("client_id"))
	}
	if q.Get("response_type") != "code" {
		t.Fatalf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("state") != "user-1:token-1" {
		t.Fatalf("state = %q", q.Get("state"))
	}
	if q.Get("access_type") != "offline" || q.Get("prompt") != "consent" {
		t.Fatalf("offline consent params missing: %v", q)
	}
	if !strings.Contains(q.Get("scope"), "youtube.readonly") {
		t.Fatalf("scope = %q", q.Get("scope"))
	}
}

func TestExchange(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "access-1",
			"refresh_token": "refresh-1",
			"token_type": "Bearer",
			"expires_in": 3600
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, "")
	tok, err := a.Exchange(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("Exchange returned error: %v", err)
	}

	if tok.AccessToken != "access-1" || tok.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected token: %+v", tok)
	}
	if gotForm.Get("code") != "code-1" || gotForm.Get("grant_type") != "authorization_code" {
		t.Fatalf("unexpected form: %v", gotForm)
	}
}

func TestExchangeMobileSendsVerifier(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-m","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, "")
	tok, err := a.ExchangeMobile(context.Background(), "code-m", "verifier-1")
	if err != nil {
		t.Fatalf("ExchangeMobile returned error: %v", err)
	}

	if tok.AccessToken != "access-m" {
		t.Fatalf("access token = %q", tok.AccessToken)
	}
	if gotForm.Get("code_verifier") != "verifier-1" {
		t.Fatalf("code_verifier = %q", gotForm.Get("code_verifier"))
	}
	// Public client: the iOS client id, no secret.
	if gotForm.Get("client_id") != iosClientID {
		t.Fatalf("client_id = %q", gotForm.Get("client_id"))
	}
	if gotForm.Get("client_secret") != "" {
		t.Fatalf("mobile exchange must not send a client secret")
	}
}

func TestExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad Request"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL, "")
	if _, err := a.Exchange(context.Background(), "expired"); err == nil {
		t.Fatalf("expected error for rejected code")
	}
}

func TestFetchChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("mine") != "true" {
			http.Error(w, "missing mine", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "UC123", "snippet": {"title": "My Channel"}}
			]
		}`))
	}))
	defer srv.Close()

	a := newTestAdapter("", srv.URL)
	channel, err := a.FetchChannel(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("FetchChannel returned error: %v", err)
	}
	if channel.ID != "UC123" || channel.Title != "My Channel" {
		t.Fatalf("unexpected channel: %+v", channel)
	}
}

func TestFetchChannelNoChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter("", srv.URL)
	if _, err := a.FetchChannel(context.Background(), "access-1"); err == nil {
		t.Fatalf("expected error when account has no channel")
	}
}

func TestFetchChannelAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter("", srv.URL)
	_, err := a.FetchChannel(context.Background(), "access-1")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("err = %v, want quota message", err)
	}
}
