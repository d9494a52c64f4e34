package dto

type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// ConnectionResult is the outcome of a completed OAuth callback.
type ConnectionResult struct {
	UserID      string
	ChannelID   string
	ChannelName string
}

type MobileExchangeRequest struct {
	Code         string `json:"code"`
	CodeVerifier string `json:"code_verifier,omitempty"`
	UserID       string `json:"user_id"`
}

type MobileExchangeResponse struct {
	Success     bool   `json:"success"`
	UserID      string `json:"user_id"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}
