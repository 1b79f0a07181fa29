package submissions

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/JaimeStill/suggestion-box/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a Postgres-backed System.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "submissions"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Submission, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	args := []any{string(cmd.Kind), cmd.Subject, cmd.Body, cmd.Contact}
	sub, err := repository.QueryOne(ctx, r.db, insertSQL, args, scanSubmission)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrInvalid)
	}

	r.logger.Info("submission created", "id", sub.ID, "kind", sub.Kind)
	return &sub, nil
}
