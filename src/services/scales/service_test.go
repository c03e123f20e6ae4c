package scales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

func agreementRequest() *models.CreateScaleRequest {
	return &models.CreateScaleRequest{
		Title: "Agreement",
		Choices: []models.CreateChoiceRequest{
			{Text: "Disagree", Sequence: 3, Value: 1},
			{Text: "Agree", Sequence: 1, Value: 3},
			{Text: "Neutral", Sequence: 2, Value: 2},
		},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()

	t.Run("SortsChoicesBySequence", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store)

		scale, err := svc.Create(ctx, tenantID, agreementRequest())
		require.NoError(t, err)

		require.Len(t, scale.Choices, 3)
		assert.Equal(t, "Agree", scale.Choices[0].Text)
		assert.Equal(t, "Neutral", scale.Choices[1].Text)
		assert.Equal(t, "Disagree", scale.Choices[2].Text)
	})

	t.Run("RejectsDuplicateSequence", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store)

		req := agreementRequest()
		req.Choices[1].Sequence = 3

		_, err := svc.Create(ctx, tenantID, req)
		assert.ErrorIs(t, err, models.ErrDuplicateChoiceSequence)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()
	store := repositories.NewMemoryStore()
	svc := NewService(store)

	scale, err := svc.Create(ctx, tenantID, agreementRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tenantID, scale.ID, &models.CreateScaleRequest{
		Title:   "Yes / No",
		Choices: []models.CreateChoiceRequest{{Text: "Yes", Sequence: 1}, {Text: "No", Sequence: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Yes / No", updated.Title)
	assert.Len(t, updated.Choices, 2)

	_, err = svc.Update(ctx, tenantID, primitive.NewObjectID(), agreementRequest())
	assert.ErrorIs(t, err, models.ErrScaleNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()

	t.Run("RefusesWhileReferenced", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store)

		scale, err := svc.Create(ctx, tenantID, agreementRequest())
		require.NoError(t, err)

		survey := &models.Survey{
			TenantID: tenantID,
			Title:    "Feedback",
			Status:   models.SurveyDraft,
			Questions: []models.Question{
				{ID: primitive.NewObjectID(), Text: "Q", Type: models.MultipleChoice, Sequence: 1, ScaleID: &scale.ID},
			},
		}
		require.NoError(t, store.Surveys.Add(ctx, survey))

		assert.ErrorIs(t, svc.Delete(ctx, tenantID, scale.ID), models.ErrScaleInUse)

		_, err = svc.GetByID(ctx, tenantID, scale.ID)
		assert.NoError(t, err)
	})

	t.Run("DeletesUnreferencedScale", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store)

		scale, err := svc.Create(ctx, tenantID, agreementRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, tenantID, scale.ID))

		_, err = svc.GetByID(ctx, tenantID, scale.ID)
		assert.ErrorIs(t, err, models.ErrScaleNotFound)
	})
}
