package publications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

func seedSurvey(t *testing.T, store *repositories.Store, tenantID primitive.ObjectID, questions []models.Question) *models.Survey {
	t.Helper()
	survey := &models.Survey{
		TenantID:  tenantID,
		Title:     "Course Feedback",
		Status:    models.SurveyDraft,
		Questions: questions,
	}
	require.NoError(t, store.Surveys.Add(context.Background(), survey))
	return survey
}

func oneQuestion() []models.Question {
	return []models.Question{
		{ID: primitive.NewObjectID(), Text: "How was it?", Type: models.FreeText, Sequence: 1},
	}
}

// fakeScheduler records scheduled closes so tests can assert on them.
type fakeScheduler struct {
	tenantIDs      []string
	publicationIDs []string
	deadlines      []time.Time
}

func (f *fakeScheduler) ScheduleClose(tenantID, publicationID string, at time.Time) error {
	f.tenantIDs = append(f.tenantIDs, tenantID)
	f.publicationIDs = append(f.publicationIDs, publicationID)
	f.deadlines = append(f.deadlines, at)
	return nil
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()

	t.Run("OpensPublicationAndMarksSurveyPublished", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)
		survey := seedSurvey(t, store, tenantID, oneQuestion())

		pub, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Spring run"})
		require.NoError(t, err)

		assert.Equal(t, survey.ID, pub.SurveyID)
		assert.NotEmpty(t, pub.AccessCode)
		assert.True(t, pub.IsOpen())
		assert.Nil(t, pub.ClosedAt)

		stored, err := store.Surveys.GetByID(ctx, tenantID, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SurveyPublished, stored.Status)
	})

	t.Run("EachPublishOpensIndependentPublication", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)
		survey := seedSurvey(t, store, tenantID, oneQuestion())

		first, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run 1"})
		require.NoError(t, err)
		second, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run 2"})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.NotEqual(t, first.AccessCode, second.AccessCode)

		pubs, err := svc.GetBySurvey(ctx, tenantID, survey.ID)
		require.NoError(t, err)
		assert.Len(t, pubs, 2)
	})

	t.Run("RejectsSurveyWithoutQuestions", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)
		survey := seedSurvey(t, store, tenantID, nil)

		_, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run"})
		assert.ErrorIs(t, err, models.ErrSurveyHasNoQuestions)
	})

	t.Run("RejectsArchivedSurvey", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)
		survey := seedSurvey(t, store, tenantID, oneQuestion())
		survey.Archive()
		require.NoError(t, store.Surveys.Update(ctx, survey))

		_, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run"})
		assert.ErrorIs(t, err, models.ErrSurveyNotPublishable)
	})

	t.Run("RejectsUnknownSurvey", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)

		_, err := svc.Publish(ctx, tenantID, primitive.NewObjectID(), &models.PublishSurveyRequest{Name: "Run"})
		assert.ErrorIs(t, err, models.ErrSurveyNotFound)
	})

	t.Run("SchedulesAutoCloseWhenDeadlineGiven", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		scheduler := &fakeScheduler{}
		svc := NewService(store, scheduler)
		survey := seedSurvey(t, store, tenantID, oneQuestion())

		closeAt := time.Now().Add(time.Hour)
		pub, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run", CloseAt: &closeAt})
		require.NoError(t, err)

		require.Len(t, scheduler.publicationIDs, 1)
		assert.Equal(t, pub.ID.Hex(), scheduler.publicationIDs[0])
		assert.Equal(t, tenantID.Hex(), scheduler.tenantIDs[0])
		assert.True(t, scheduler.deadlines[0].Equal(closeAt))
	})
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()

	t.Run("FirstCloseWins", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)
		survey := seedSurvey(t, store, tenantID, oneQuestion())
		pub, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run"})
		require.NoError(t, err)

		require.NoError(t, svc.Close(ctx, tenantID, pub.ID))

		closed, err := svc.GetByID(ctx, tenantID, pub.ID)
		require.NoError(t, err)
		require.NotNil(t, closed.ClosedAt)
		firstClosedAt := *closed.ClosedAt
		assert.False(t, closed.IsOpen())

		err = svc.Close(ctx, tenantID, pub.ID)
		assert.ErrorIs(t, err, models.ErrPublicationAlreadyClosed)

		again, err := svc.GetByID(ctx, tenantID, pub.ID)
		require.NoError(t, err)
		assert.True(t, again.ClosedAt.Equal(firstClosedAt))
	})

	t.Run("UnknownPublication", func(t *testing.T) {
		store := repositories.NewMemoryStore()
		svc := NewService(store, nil)

		err := svc.Close(ctx, tenantID, primitive.NewObjectID())
		assert.ErrorIs(t, err, models.ErrPublicationNotFound)
	})
}

func TestGetByAccessCode(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()
	store := repositories.NewMemoryStore()
	svc := NewService(store, nil)
	survey := seedSurvey(t, store, tenantID, oneQuestion())

	pub, err := svc.Publish(ctx, tenantID, survey.ID, &models.PublishSurveyRequest{Name: "Run"})
	require.NoError(t, err)

	found, err := svc.GetByAccessCode(ctx, pub.AccessCode)
	require.NoError(t, err)
	assert.Equal(t, pub.ID, found.ID)

	_, err = svc.GetByAccessCode(ctx, "no-such-code")
	assert.ErrorIs(t, err, models.ErrPublicationNotFound)
}
