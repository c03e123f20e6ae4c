package publications

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// CloseScheduler enqueues a deferred close for a publication with a
// closeAt deadline. Implemented by the jobs package; nil disables
// scheduling.
type CloseScheduler interface {
	ScheduleClose(tenantID, publicationID string, at time.Time) error
}

type Service struct {
	store     *repositories.Store
	scheduler CloseScheduler
}

func NewService(store *repositories.Store, scheduler CloseScheduler) *Service {
	return &Service{store: store, scheduler: scheduler}
}

// Publish opens a new publication for a survey. The first publish moves the
// survey from draft to published; a published survey can be published again,
// each time opening an independent publication. Archived or question-less
// surveys cannot be published.
func (s *Service) Publish(ctx context.Context, tenantID, surveyID primitive.ObjectID, req *models.PublishSurveyRequest) (*models.Publication, error) {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, models.ErrSurveyNotFound
	}

	if err := survey.MarkPublished(); err != nil {
		return nil, err
	}

	now := time.Now()
	publication := &models.Publication{
		ID:           primitive.NewObjectID(),
		TenantID:     tenantID,
		SurveyID:     survey.ID,
		Name:         req.Name,
		AccessCode:   uuid.NewString(),
		DisplayOrder: req.DisplayOrder,
		Required:     req.Required,
		PublishedAt:  now,
		CloseAt:      req.CloseAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.store.UnitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.store.Publications.Add(txCtx, publication); err != nil {
			return err
		}
		return s.store.Surveys.Update(txCtx, survey)
	})
	if err != nil {
		return nil, err
	}

	if req.CloseAt != nil && s.scheduler != nil {
		if err := s.scheduler.ScheduleClose(tenantID.Hex(), publication.ID.Hex(), *req.CloseAt); err != nil {
			// The publication is live either way; the deadline can still be
			// enforced by closing manually.
			log.Printf("[publications] failed to schedule close for %s: %v", publication.ID.Hex(), err)
		}
	}

	return publication, nil
}

// Close ends a publication. Closing is idempotent: the first call sets
// closedAt, any later call reports ErrPublicationAlreadyClosed without
// touching the timestamp. Responses stay readable for statistics.
func (s *Service) Close(ctx context.Context, tenantID, publicationID primitive.ObjectID) error {
	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil {
		return err
	}
	if publication == nil {
		return models.ErrPublicationNotFound
	}
	if publication.ClosedAt != nil {
		return models.ErrPublicationAlreadyClosed
	}

	applied, err := s.store.Publications.Close(ctx, tenantID, publicationID, time.Now())
	if err != nil {
		return err
	}
	if !applied {
		// Lost the race against a concurrent close.
		return models.ErrPublicationAlreadyClosed
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, tenantID, publicationID primitive.ObjectID) (*models.Publication, error) {
	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, models.ErrPublicationNotFound
	}
	return publication, nil
}

func (s *Service) GetByAccessCode(ctx context.Context, code string) (*models.Publication, error) {
	publication, err := s.store.Publications.GetByAccessCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, models.ErrPublicationNotFound
	}
	return publication, nil
}

func (s *Service) GetBySurvey(ctx context.Context, tenantID, surveyID primitive.ObjectID) ([]models.Publication, error) {
	return s.store.Publications.GetBySurvey(ctx, tenantID, surveyID)
}
