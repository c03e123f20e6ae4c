package respondents

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// Service fronts the respondent directory. The directory itself is an
// external collaborator; this service only reads it.
type Service struct {
	store *repositories.Store
}

func NewService(store *repositories.Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetByID(ctx context.Context, tenantID, respondentID primitive.ObjectID) (*models.Respondent, error) {
	respondent, err := s.store.Respondents.GetByID(ctx, tenantID, respondentID)
	if err != nil {
		return nil, err
	}
	if respondent == nil {
		return nil, models.ErrRespondentNotFound
	}
	return respondent, nil
}

// CountEligible counts the tenant's active respondents; survey statistics
// use it as the response-rate denominator.
func (s *Service) CountEligible(ctx context.Context, tenantID primitive.ObjectID) (int, error) {
	return s.store.Respondents.CountEligible(ctx, tenantID)
}
