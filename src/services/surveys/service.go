package surveys

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

type Service struct {
	store *repositories.Store
}

func NewService(store *repositories.Store) *Service {
	return &Service{store: store}
}

// Create builds a draft survey with its questions in sequence order.
// Multiple-choice questions must reference an existing scale of the tenant.
func (s *Service) Create(ctx context.Context, tenantID primitive.ObjectID, req *models.CreateSurveyRequest) (*models.Survey, error) {
	questions, err := s.buildQuestions(ctx, tenantID, req.Questions)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	survey := &models.Survey{
		ID:          primitive.NewObjectID(),
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.SurveyDraft,
		Questions:   questions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Surveys.Add(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Update replaces a draft survey's metadata and question set. Published and
// archived surveys are frozen; structural changes need a new survey.
func (s *Service) Update(ctx context.Context, tenantID, surveyID primitive.ObjectID, req *models.CreateSurveyRequest) (*models.Survey, error) {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, models.ErrSurveyNotFound
	}
	if survey.Status != models.SurveyDraft {
		return nil, models.ErrSurveyNotDraft
	}

	questions, err := s.buildQuestions(ctx, tenantID, req.Questions)
	if err != nil {
		return nil, err
	}

	survey.Title = req.Title
	survey.Description = req.Description
	survey.Questions = questions
	survey.UpdatedAt = time.Now()

	if err := s.store.Surveys.Update(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Archive retires a survey; archived surveys cannot be published again.
func (s *Service) Archive(ctx context.Context, tenantID, surveyID primitive.ObjectID) error {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return models.ErrSurveyNotFound
	}

	survey.Archive()
	return s.store.Surveys.Update(ctx, survey)
}

// Delete removes a draft survey. Published surveys keep their publications
// and responses, so they can only be archived.
func (s *Service) Delete(ctx context.Context, tenantID, surveyID primitive.ObjectID) error {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return models.ErrSurveyNotFound
	}
	if survey.Status != models.SurveyDraft {
		return models.ErrSurveyNotDraft
	}

	return s.store.Surveys.Delete(ctx, tenantID, surveyID)
}

func (s *Service) GetByID(ctx context.Context, tenantID, surveyID primitive.ObjectID) (*models.Survey, error) {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, models.ErrSurveyNotFound
	}
	return survey, nil
}

func (s *Service) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Survey, error) {
	return s.store.Surveys.GetAll(ctx, tenantID)
}

func (s *Service) buildQuestions(ctx context.Context, tenantID primitive.ObjectID, reqs []models.CreateQuestionRequest) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(reqs))
	for i, q := range reqs {
		question := models.Question{
			ID:        primitive.NewObjectID(),
			Text:      q.Text,
			Type:      q.Type,
			Sequence:  q.Sequence,
			Required:  q.Required,
			MaxLength: q.MaxLength,
		}
		if question.Sequence == 0 {
			question.Sequence = i + 1
		}

		if q.Type == models.MultipleChoice {
			scaleID, err := primitive.ObjectIDFromHex(q.ScaleID)
			if err != nil {
				return nil, models.ErrScaleNotFound
			}
			scale, err := s.store.Scales.GetByID(ctx, tenantID, scaleID)
			if err != nil {
				return nil, err
			}
			if scale == nil {
				return nil, models.ErrScaleNotFound
			}
			question.ScaleID = &scaleID
		}

		questions = append(questions, question)
	}

	sort.Slice(questions, func(i, j int) bool { return questions[i].Sequence < questions[j].Sequence })
	return questions, nil
}
