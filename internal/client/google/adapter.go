package googleclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
)

// iOS client from Google Cloud Console. Public client: no secret, the
// redirect URI is the reversed client id scheme flutter_appauth uses.
const (
	iosClientID    = "697429001294-2mrf5v637ash0uj522spsoill1r9oqpq.apps.googleusercontent.com"
	iosRedirectURI = "com.googleusercontent.apps.697429001294-2mrf5v637ash0uj522spsoill1r9oqpq:/oauthredirect"
)

// Config carries the Google OAuth endpoints and credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	TokenURL     string
	ChannelsAPI  string
	Scopes       []string
}

// Adapter wraps the Google OAuth code exchange and the YouTube Data API
// channel lookup.
type Adapter struct {
	web         *oauth2.Config
	mobile      *oauth2.Config
	channelsAPI string
	httpClient  *http.Client
}

func NewAdapter(cfg Config) *Adapter {
	endpoint := oauth2.Endpoint{
		AuthURL:  cfg.AuthURL,
		TokenURL: cfg.TokenURL,
	}

	return &Adapter{
		web: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       cfg.Scopes,
		},
		mobile: &oauth2.Config{
			ClientID:    iosClientID,
			RedirectURL: iosRedirectURI,
			Endpoint:    endpoint,
		},
		channelsAPI: cfg.ChannelsAPI,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthCodeURL builds the consent URL. Offline access plus a forced consent
// prompt so Google always returns a refresh token.
func (a *Adapter) AuthCodeURL(state string) string {
	return a.web.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades a web-flow authorization code for tokens.
func (a *Adapter) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return a.web.Exchange(a.oauthContext(ctx), code)
}

// ExchangeMobile trades a native-app authorization code for tokens using
// the iOS public client. The PKCE verifier is forwarded when the app used
// one.
func (a *Adapter) ExchangeMobile(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error) {
	opts := []oauth2.AuthCodeOption{}
	if codeVerifier != "" {
		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", codeVerifier))
	}
	return a.mobile.Exchange(a.oauthContext(ctx), code, opts...)
}

// FetchChannel returns the authenticated user's YouTube channel identity.
func (a *Adapter) FetchChannel(ctx context.Context, accessToken string) (*dto.Channel, error) {
	u := a.channelsAPI + "?" + url.Values{
		"part": {"snippet,statistics"},
		"mine": {"true"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("google: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google: channels request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("google: read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		detail := "unknown error"
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		return nil, fmt.Errorf("google: youtube api error: %s", detail)
	}

	var payload struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("google: decode channels response: %w", err)
	}

	if len(payload.Items) == 0 {
		return nil, errors.New("google: no YouTube channel found for this account")
	}

	return &dto.Channel{
		ID:    payload.Items[0].ID,
		Title: payload.Items[0].Snippet.Title,
	}, nil
}

// oauthContext makes the token exchange use the adapter's HTTP client so a
// timeout applies.
func (a *Adapter) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
}
