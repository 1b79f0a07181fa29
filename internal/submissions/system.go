package submissions

import "context"

// System defines the interface for submission persistence.
type System interface {
	// Create validates and stores a new submission.
	Create(ctx context.Context, cmd CreateCommand) (*Submission, error)
}
