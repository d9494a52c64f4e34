package dto

// TopVideo is the top-performing video for a period. The zero value doubles
// as the fail-open payload when MCP is unreachable.
type TopVideo struct {
	VideoID          *string `json:"video_id"`
	Title            *string `json:"title"`
	ThumbnailURL     *string `json:"thumbnail_url"`
	Views            int64   `json:"views"`
	GrowthPercentage float64 `json:"growth_percentage"`
}

// Channel holds the YouTube channel identity fetched after OAuth.
type Channel struct {
	ID    string
	Title string
}

// ChannelConnectRequest is forwarded to MCP /channels/connect so the backend
// can persist the OAuth connection. The gateway itself stores nothing.
type ChannelConnectRequest struct {
	UserID           string  `json:"user_id"`
	YouTubeChannelID string  `json:"youtube_channel_id"`
	ChannelName      string  `json:"channel_name"`
	AccessToken      string  `json:"access_token"`
	RefreshToken     *string `json:"refresh_token"`
}
