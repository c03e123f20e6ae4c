package scales

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

// Create builds a scale with its ordered choices. Choice sequences must be
// unique within the scale.
func (s *Service) Create(ctx context.Context, tenantID primitive.ObjectID, req *models.CreateScaleRequest) (*models.Scale, error) {
	choices, err := buildChoices(req.Choices)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	scale := &models.Scale{
		ID:        primitive.NewObjectID(),
		TenantID:  tenantID,
		Title:     req.Title,
		Shareable: req.Shareable,
		Choices:   choices,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Scales.Add(ctx, scale); err != nil {
		return nil, err
	}
	return scale, nil
}

// Update replaces the scale's title, shareable flag and choice set.
func (s *Service) Update(ctx context.Context, tenantID, scaleID primitive.ObjectID, req *models.CreateScaleRequest) (*models.Scale, error) {
	scale, err := s.store.Scales.GetByID(ctx, tenantID, scaleID)
	if err != nil {
		return nil, err
	}
	if scale == nil {
		return nil, models.ErrScaleNotFound
	}

	choices, err := buildChoices(req.Choices)
	if err != nil {
		return nil, err
	}

	scale.Title = req.Title
	scale.Shareable = req.Shareable
	scale.Choices = choices
	scale.UpdatedAt = time.Now()

	if err := s.store.Scales.Update(ctx, scale); err != nil {
		return nil, err
	}
	return scale, nil
}

// Delete removes a scale unless a question still references it.
func (s *Service) Delete(ctx context.Context, tenantID, scaleID primitive.ObjectID) error {
	scale, err := s.store.Scales.GetByID(ctx, tenantID, scaleID)
	if err != nil {
		return err
	}
	if scale == nil {
		return models.ErrScaleNotFound
	}

	inUse, err := s.store.Scales.IsInUse(ctx, tenantID, scaleID)
	if err != nil {
		return err
	}
	if inUse {
		return models.ErrScaleInUse
	}

	return s.store.Scales.Delete(ctx, tenantID, scaleID)
}

func (s *Service) GetByID(ctx context.Context, tenantID, scaleID primitive.ObjectID) (*models.Scale, error) {
	scale, err := s.store.Scales.GetByID(ctx, tenantID, scaleID)
	if err != nil {
		return nil, err
	}
	if scale == nil {
		return nil, models.ErrScaleNotFound
	}
	return scale, nil
}

func (s *Service) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Scale, error) {
	return s.store.Scales.GetAll(ctx, tenantID)
}

func buildChoices(reqs []models.CreateChoiceRequest) ([]models.Choice, error) {
	seen := map[int]bool{}
	choices := make([]models.Choice, 0, len(reqs))
	for _, c := range reqs {
		if seen[c.Sequence] {
			return nil, models.ErrDuplicateChoiceSequence
		}
		seen[c.Sequence] = true
		choices = append(choices, models.Choice{
			ID:       primitive.NewObjectID(),
			Text:     c.Text,
			Sequence: c.Sequence,
			Value:    c.Value,
		})
	}
	sort.Slice(choices, func(i, j int) bool { return choices[i].Sequence < choices[j].Sequence })
	return choices, nil
}
