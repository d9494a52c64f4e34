package services

import (
	"context"
	"unicode/utf8"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

// maxMessageLength caps the message in characters, not bytes.
const maxMessageLength = 10000

// planLimitCode is the MCP failure code passed through to the frontend so
// it can render the usage metadata instead of a generic error.
const planLimitCode = "PLAN_LIMIT_REACHED"

type mcpExecuteClient interface {
	Execute(ctx context.Context, req dto.MCPExecuteRequest) (*dto.MCPExecuteResponse, error)
}

type ExecuteService struct {
	mcp mcpExecuteClient
}

func NewExecuteService(mcp mcpExecuteClient) *ExecuteService {
	return &ExecuteService{mcp: mcp}
}

// Execute validates the request, forwards it to MCP, and reshapes the wire
// response into the gateway's public contract.
func (s *ExecuteService) Execute(ctx context.Context, req dto.ExecuteRequest) (*dto.ExecuteResponse, error) {
	if err := validateExecuteRequest(req); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("forwarding execute request to mcp",
		"user_id", req.UserID, "channel_id", req.ChannelID)

	resp, err := s.mcp.Execute(ctx, dto.MCPExecuteRequest{
		UserID:    req.UserID,
		ChannelID: req.ChannelID,
		Message:   req.Message,
		Metadata:  req.Metadata,
	})
	if err != nil {
		return nil, errs.NewExternalServiceError("mcp", err.Error(), true)
	}

	if !resp.Success {
		if resp.ErrorCode() == planLimitCode {
			log.Info("plan limit reached", "user_id", req.UserID)

			answer := resp.ErrorMessage()
			if answer == "" {
				answer = "Plan limit reached"
			}
			return &dto.ExecuteResponse{
				Answer:    answer,
				ToolsUsed: []string{},
				Metadata:  resp.Metadata,
				Success:   false,
				Error:     resp.Error,
			}, nil
		}

		return nil, errs.NewExternalServiceError("mcp", "mcp execution failed: "+resp.ErrorMessage(), true)
	}

	result := &dto.ExecuteResponse{
		Answer:      resp.Content,
		Confidence:  confidenceFrom(resp.Metadata),
		ToolsUsed:   resp.ToolsUsed,
		ContentType: resp.ContentType,
		ToolOutputs: resp.ToolOutputs,
		Metadata:    resp.Metadata,
		Success:     true,
	}
	if result.ToolsUsed == nil {
		result.ToolsUsed = []string{}
	}

	log.Info("mcp execute succeeded",
		"user_id", req.UserID, "confidence", result.Confidence)

	return result, nil
}

func validateExecuteRequest(req dto.ExecuteRequest) error {
	if req.UserID == "" {
		return errs.NewValidationError("user_id is required")
	}
	if req.ChannelID == "" {
		return errs.NewValidationError("channel_id is required")
	}
	if req.Message == "" {
		return errs.NewValidationError("message is required")
	}
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		return errs.NewValidationError("message exceeds maximum length")
	}
	return nil
}

func confidenceFrom(metadata map[string]any) float64 {
	c, _ := metadata["confidence"].(float64)
	return c
}
