package services

import (
	"context"

	"github.com/creatorpilot/context-hub-gateway/internal/dto"
	"github.com/creatorpilot/context-hub-gateway/internal/errs"
	"github.com/creatorpilot/context-hub-gateway/pkg/logger"
)

type FeedbackService struct{}

func NewFeedbackService() *FeedbackService {
	return &FeedbackService{}
}

// Submit records user feedback. Persistence belongs to the backend; for now
// the feedback lands in the structured logs.
// TODO: forward to an MCP feedback endpoint once the backend grows one.
func (s *FeedbackService) Submit(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.MessageID == "" {
		return nil, errs.NewValidationError("message_id is required")
	}
	if req.Feedback != "positive" && req.Feedback != "negative" {
		return nil, errs.NewValidationError("Invalid feedback type. Must be 'positive' or 'negative'.")
	}

	logger.FromContext(ctx).Info("feedback received",
		"message_id", req.MessageID, "feedback", req.Feedback)

	return &dto.FeedbackResponse{Success: true, Message: "Feedback received"}, nil
}
