package dto

// MCPExecuteRequest is the wire payload sent to MCP /execute.
type MCPExecuteRequest struct {
	UserID    string         `json:"user_id"`
	ChannelID string         `json:"channel_id"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata"`
}

// MCPExecuteResponse is the wire shape returned by MCP /execute. Error is
// kept as a loose map so failure payloads pass through to the frontend
// unmodified.
type MCPExecuteResponse struct {
	Success     bool           `json:"success"`
	Content     string         `json:"content"`
	ContentType string         `json:"content_type,omitempty"`
	ToolsUsed   []string       `json:"tools_used"`
	ToolOutputs map[string]any `json:"tool_outputs,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Error       map[string]any `json:"error,omitempty"`
}

// ErrorCode extracts the machine-readable code from an MCP error payload.
func (r *MCPExecuteResponse) ErrorCode() string {
	code, _ := r.Error["code"].(string)
	return code
}

// ErrorMessage extracts the human-readable message from an MCP error payload.
func (r *MCPExecuteResponse) ErrorMessage() string {
	msg, _ := r.Error["message"].(string)
	return msg
}
