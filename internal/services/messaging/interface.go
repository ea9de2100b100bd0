package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetNotificationMessage returns the toast text for a scoring notification
	GetNotificationMessage(ctx context.Context, input *GetNotificationMessageInput) (*GetNotificationMessageOutput, error)

	// GetMatchCompleteMessage returns the announcement for a finished match
	GetMatchCompleteMessage(ctx context.Context, input *GetMatchCompleteMessageInput) (*GetMatchCompleteMessageOutput, error)

	// GetMatchDeletedMessage returns the confirmation for a deleted history entry
	GetMatchDeletedMessage(ctx context.Context, input *GetMatchDeletedMessageInput) (*GetMatchDeletedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
