package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/database"
	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
	"Backend-SurveyHub/src/services/publications"
)

// StartWorker runs the Asynq server that executes deferred publication
// closes. It blocks until the server stops.
func StartWorker(store *repositories.Store) error {
	if database.RedisURI == "" {
		return errors.New("redis not configured")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeClosePublication, closePublicationHandler(store))

	return srv.Run(mux)
}

func closePublicationHandler(store *repositories.Store) asynq.HandlerFunc {
	svc := publications.NewService(store, nil)

	return func(ctx context.Context, t *asynq.Task) error {
		var payload ClosePublicationPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("[jobs] payload decode error:", err)
			return err
		}

		tenantID, err := primitive.ObjectIDFromHex(payload.TenantID)
		if err != nil {
			return err
		}
		publicationID, err := primitive.ObjectIDFromHex(payload.PublicationID)
		if err != nil {
			return err
		}

		err = svc.Close(ctx, tenantID, publicationID)
		switch {
		case err == nil:
			log.Println("[jobs] publication auto-closed:", payload.PublicationID)
			return nil
		case errors.Is(err, models.ErrPublicationAlreadyClosed),
			errors.Is(err, models.ErrPublicationNotFound):
			// Closed manually in the meantime, or deleted. Nothing to do.
			return nil
		default:
			return err
		}
	}
}
