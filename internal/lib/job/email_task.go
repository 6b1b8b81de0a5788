package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome = "email:welcome"

	welcomeRetention = 24 * time.Hour
)

// WelcomeEmailPayload is the JSON body of a TaskWelcome task.
type WelcomeEmailPayload struct {
	UserID int64  `json:"user_id"`
	To     string `json:"to"`
	Name   string `json:"name"`
}

// NewWelcomeEmailTask builds the task queued after a signup. The task id is
// derived from the user, so a user is welcomed at most once while the task
// is retained.
func NewWelcomeEmailTask(userID int64, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		UserID: userID,
		To:     to,
		Name:   name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.TaskID(fmt.Sprintf("welcome:%d", userID)),
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
		asynq.Retention(welcomeRetention),
	), nil
}
