package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

// DefaultUserID is the single-user-mode placeholder accepted while the
// product has no account system of its own.
const DefaultUserID = "00000000-0000-0000-0000-000000000001"

type googleOAuthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	ExchangeMobile(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error)
	FetchChannel(ctx context.Context, accessToken string) (*dto.Channel, error)
}

type mcpConnectClient interface {
	ConnectChannel(ctx context.Context, req dto.ChannelConnectRequest) error
}

// OAuthService runs the YouTube connection handshake: issue consent URLs
// with CSRF state, exchange callback codes for tokens, look up the channel,
// and hand everything to MCP for persistence.
type OAuthService struct {
	google      googleOAuthClient
	mcp         mcpConnectClient
	clientID    string
	redirectURI string

	// pendingStates maps state token to user id. Entries are consumed on
	// callback. Process-local on purpose: a state token is only valid for
	// the instance that issued it within a single browser round trip.
	mu            sync.Mutex
	pendingStates map[string]string
}

func NewOAuthService(google googleOAuthClient, mcp mcpConnectClient, clientID, redirectURI string) *OAuthService {
	return &OAuthService{
		google:        google,
		mcp:           mcp,
		clientID:      clientID,
		redirectURI:   redirectURI,
		pendingStates: make(map[string]string),
	}
}

// AuthURL builds the Google consent URL for the given user, binding a
// one-time CSRF token into the state parameter.
func (s *OAuthService) AuthURL(ctx context.Context, userID string) (string, error) {
	if s.clientID == "" || s.redirectURI == "" {
		return "", errors.New("google oauth is not configured")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return "", errs.NewValidationError("Invalid user_id format. Expected UUID.")
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.pendingStates[token] = userID
	s.mu.Unlock()

	state := userID + ":" + token

	logger.FromContext(ctx).Info("generated oauth url", "user_id", userID)

	return s.google.AuthCodeURL(state), nil
}

// consumeState validates the callback state and removes the token so it
// can't be replayed. Bare-UUID states from before token binding are still
// accepted.
func (s *OAuthService) consumeState(state string) (string, error) {
	if !strings.Contains(state, ":") {
		if _, err := uuid.Parse(state); err != nil {
			return "", fmt.Errorf("invalid state parameter")
		}
		return state, nil
	}

	parts := strings.SplitN(state, ":", 2)
	userID, token := parts[0], parts[1]

	if _, err := uuid.Parse(userID); err != nil {
		return "", fmt.Errorf("invalid state parameter")
	}

	s.mu.Lock()
	stored, ok := s.pendingStates[token]
	delete(s.pendingStates, token)
	s.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("unknown or expired state token")
	}
	if stored != userID {
		return "", fmt.Errorf("state token user_id mismatch")
	}
	return userID, nil
}

// HandleCallback completes the web OAuth flow. Every failure comes back as
// an OAuthError whose Detail is a fixed, non-sensitive string the handler
// can embed in the deep-link redirect.
func (s *OAuthService) HandleCallback(ctx context.Context, code, state string) (*dto.ConnectionResult, error) {
	log := logger.FromContext(ctx)

	userID, err := s.consumeState(state)
	if err != nil {
		log.Error("invalid state parameter", "error", err)
		return nil, errs.NewOAuthError("state validation failed", err.Error())
	}

	tok, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.Error("token exchange failed", "error", err)
		return nil, errs.NewOAuthError("token exchange failed", "Token exchange failed")
	}
	if tok.AccessToken == "" {
		log.Error("no access token in token response")
		return nil, errs.NewOAuthError("empty access token", "No access token received")
	}

	channel, err := s.google.FetchChannel(ctx, tok.AccessToken)
	if err != nil {
		log.Error("youtube api call failed", "error", err)
		return nil, errs.NewOAuthError("channel lookup failed", "Failed to fetch channel info")
	}

	if err := s.connectChannel(ctx, userID, channel, tok); err != nil {
		log.Error("mcp forwarding failed", "error", err)
		return nil, errs.NewOAuthError("channel connect failed", "Failed to save connection")
	}

	log.Info("youtube channel connected",
		"user_id", userID, "channel", channel.Title)

	return &dto.ConnectionResult{
		UserID:      userID,
		ChannelID:   channel.ID,
		ChannelName: channel.Title,
	}, nil
}

// MobileExchange completes the native-app flow: the app already holds an
// authorization code from flutter_appauth and posts it here.
func (s *OAuthService) MobileExchange(ctx context.Context, req dto.MobileExchangeRequest) (*dto.MobileExchangeResponse, error) {
	log := logger.FromContext(ctx)

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, errs.NewValidationError("Invalid user_id format")
	}
	if req.Code == "" {
		return nil, errs.NewValidationError("code is required")
	}

	tok, err := s.google.ExchangeMobile(ctx, req.Code, req.CodeVerifier)
	if err != nil {
		log.Error("mobile token exchange failed", "error", err)
		return nil, errs.NewOAuthError("mobile token exchange failed", "Token exchange failed")
	}
	if tok.AccessToken == "" {
		log.Error("no access token in mobile token response")
		return nil, errors.New("google did not return an access token")
	}

	channel, err := s.google.FetchChannel(ctx, tok.AccessToken)
	if err != nil {
		log.Error("youtube api call failed", "error", err)
		return nil, fmt.Errorf("fetch youtube channel: %w", err)
	}

	if err := s.connectChannel(ctx, userID, channel, tok); err != nil {
		log.Error("mcp forwarding failed", "error", err)
		return nil, fmt.Errorf("save channel connection: %w", err)
	}

	log.Info("mobile oauth success", "user_id", userID, "channel", channel.Title)

	return &dto.MobileExchangeResponse{
		Success:     true,
		UserID:      userID,
		ChannelID:   channel.ID,
		ChannelName: channel.Title,
	}, nil
}

func (s *OAuthService) connectChannel(ctx context.Context, userID string, channel *dto.Channel, tok *oauth2.Token) error {
	var refresh *string
	if tok.RefreshToken != "" {
		refresh = &tok.RefreshToken
	}

	return s.mcp.ConnectChannel(ctx, dto.ChannelConnectRequest{
		UserID:           userID,
		YouTubeChannelID: channel.ID,
		ChannelName:      channel.Title,
		AccessToken:      tok.AccessToken,
		RefreshToken:     refresh,
	})
}
