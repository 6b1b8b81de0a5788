package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/todo-api/internal/config"
	"github.com/deppfellow/todo-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// InitHandlers builds the dependencies task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.email = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask sends the welcome email. A payload that cannot be
// decoded is dropped instead of retried.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("task", t.Type()).
		Int64("user_id", p.UserID).
		Logger()

	if err := j.email.SendWelcomeEmail(p.To, p.Name); err != nil {
		logger.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	logger.Info().Msg("sent welcome email")
	return nil
}
