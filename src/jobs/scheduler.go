package jobs

import (
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"Backend-SurveyHub/src/database"
)

// Scheduler enqueues deferred publication closes. It satisfies
// publications.CloseScheduler.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler returns nil when Asynq is not initialized, which disables
// scheduled closes instead of failing publishes.
func NewScheduler() *Scheduler {
	if database.AsynqClient == nil {
		return nil
	}
	return &Scheduler{client: database.AsynqClient}
}

func (s *Scheduler) ScheduleClose(tenantID, publicationID string, at time.Time) error {
	if s == nil || s.client == nil {
		return errors.New("asynq client not initialized")
	}

	task, err := NewClosePublicationTask(tenantID, publicationID)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, asynq.ProcessAt(at))
	return err
}
