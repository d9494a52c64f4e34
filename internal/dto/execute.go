package dto

// ExecuteRequest is the public payload for POST /api/v1/execute.
type ExecuteRequest struct {
	UserID    string         `json:"user_id"`
	ChannelID string         `json:"channel_id"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ExecuteResponse is the gateway-shaped answer returned to the frontend.
// Error is populated only for pass-through failures such as
// PLAN_LIMIT_REACHED, where the frontend needs the usage metadata.
type ExecuteResponse struct {
	Answer      string         `json:"answer"`
	Confidence  float64        `json:"confidence"`
	ToolsUsed   []string       `json:"tools_used"`
	ContentType string         `json:"content_type,omitempty"`
	ToolOutputs map[string]any `json:"tool_outputs,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Success     bool           `json:"success"`
	Error       map[string]any `json:"error,omitempty"`
}
