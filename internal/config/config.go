package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	// LLM provider label reported by /health. The provider itself is
	// configured inside MCP; this is metadata only.
	LLMProvider string

	MCPBaseURL string
	MCPTimeout time.Duration

	Host string
	Port string

	// Comma-separated origins. Empty disables CORS entirely.
	CORSOrigins string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	GoogleAuthURL      string
	GoogleTokenURL     string
	YouTubeChannelsAPI string

	// Comma-separated OAuth scopes requested for the YouTube connection.
	YouTubeScopes string
}

func New() *Config {
	return &Config{
		AppName:     getEnv("APPNAME", "Context Hub API"),
		AppVersion:  getEnv("APPVERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    os.Getenv("LOGLEVEL"),

		LLMProvider: getEnv("LLMPROVIDER", "gemini-flash-latest"),

		MCPBaseURL: getEnv("MCPBASEURL", "http://context-hub-mcp:8001"),
		MCPTimeout: getDuration("MCPTIMEOUT", 30*time.Second),

		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8000"),

		CORSOrigins: getEnv("CORSORIGINS", "http://localhost:3000,http://localhost:8080"),

		RateLimitRequests: getInt("RATELIMITREQUESTS", 100),
		RateLimitWindow:   getDuration("RATELIMITWINDOW", 60*time.Second),

		GoogleClientID:     os.Getenv("GOOGLECLIENTID"),
		GoogleClientSecret: os.Getenv("GOOGLECLIENTSECRET"),
		GoogleRedirectURI:  getEnv("GOOGLEREDIRECTURI", "http://localhost:3000/auth/youtube/callback"),
		GoogleAuthURL:      getEnv("GOOGLEAUTHURL", "https://accounts.google.com/o/oauth2/v2/auth"),
		GoogleTokenURL:     getEnv("GOOGLETOKENURL", "https://oauth2.googleapis.com/token"),
		YouTubeChannelsAPI: getEnv("YOUTUBECHANNELSAPI", "https://www.googleapis.com/youtube/v3/channels"),

		YouTubeScopes: getEnv("YOUTUBESCOPES",
			"https://www.googleapis.com/auth/youtube.readonly,https://www.googleapis.com/auth/yt-analytics.readonly"),
	}
}

// Debug reports whether the app runs in development mode. Controls the root
// endpoint's docs hint.
func (c *Config) Debug() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// getDuration reads a duration env var. Plain integers are treated as
// seconds so existing deployments with e.g. MCPTIMEOUT=30 keep working.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return fallback
}
