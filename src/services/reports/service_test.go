package reports

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

type fixture struct {
	store        *repositories.Store
	tenantID     primitive.ObjectID
	respondentID primitive.ObjectID
	publication  *models.Publication
	scale        *models.Scale
	questions    []models.Question
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	tenantID := primitive.NewObjectID()

	respondent := &models.Respondent{
		TenantID:  tenantID,
		Email:     "bob@example.com",
		FirstName: "Bob",
		LastName:  "Smith",
		Active:    true,
	}
	repositories.AddRespondent(store, respondent)

	scale := &models.Scale{
		TenantID: tenantID,
		Title:    "Agreement",
		Choices: []models.Choice{
			{ID: primitive.NewObjectID(), Text: "Agree", Sequence: 1, Value: 2},
			{ID: primitive.NewObjectID(), Text: "Disagree", Sequence: 2, Value: 1},
		},
	}
	require.NoError(t, store.Scales.Add(ctx, scale))

	questions := []models.Question{
		{ID: primitive.NewObjectID(), Text: "Useful?", Type: models.MultipleChoice, Sequence: 1, ScaleID: &scale.ID},
		{ID: primitive.NewObjectID(), Text: "Remarks?", Type: models.FreeText, Sequence: 2},
		{ID: primitive.NewObjectID(), Text: "Recommend?", Type: models.MultipleChoice, Sequence: 3, ScaleID: &scale.ID},
	}
	survey := &models.Survey{
		TenantID:  tenantID,
		Title:     "Course Feedback",
		Status:    models.SurveyPublished,
		Questions: questions,
	}
	require.NoError(t, store.Surveys.Add(ctx, survey))

	publication := &models.Publication{
		TenantID:    tenantID,
		SurveyID:    survey.ID,
		Name:        "Spring run",
		AccessCode:  "code-1",
		PublishedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.Publications.Add(ctx, publication))

	return &fixture{
		store:        store,
		tenantID:     tenantID,
		respondentID: respondent.ID,
		publication:  publication,
		scale:        scale,
		questions:    questions,
	}
}

func (f *fixture) answerChoice(t *testing.T, questionIdx, choiceIdx int) {
	t.Helper()
	choiceID := f.scale.Choices[choiceIdx].ID
	require.NoError(t, f.store.Responses.Upsert(context.Background(), &models.Response{
		TenantID:      f.tenantID,
		PublicationID: f.publication.ID,
		RespondentID:  f.respondentID,
		QuestionID:    f.questions[questionIdx].ID,
		ChoiceID:      &choiceID,
		RespondedAt:   time.Now(),
	}))
}

func (f *fixture) answerText(t *testing.T, questionIdx int, text string) {
	t.Helper()
	require.NoError(t, f.store.Responses.Upsert(context.Background(), &models.Response{
		TenantID:      f.tenantID,
		PublicationID: f.publication.ID,
		RespondentID:  f.respondentID,
		QuestionID:    f.questions[questionIdx].ID,
		ResponseText:  text,
		RespondedAt:   time.Now(),
	}))
}

func TestProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("TracksAnsweredAndUnanswered", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		f.answerChoice(t, 0, 0)
		f.answerText(t, 1, "fine")

		progress, err := svc.Progress(ctx, f.tenantID, f.respondentID, f.publication.ID)
		require.NoError(t, err)
		require.NotNil(t, progress)

		assert.Equal(t, 3, progress.TotalQuestions)
		assert.Equal(t, 2, progress.AnsweredCount)
		assert.InDelta(t, 66.67, progress.PercentComplete, 0.01)
		assert.Equal(t, []string{f.questions[2].ID.Hex()}, progress.UnansweredQuestionIDs)
	})

	t.Run("NoAnswersYet", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		progress, err := svc.Progress(ctx, f.tenantID, f.respondentID, f.publication.ID)
		require.NoError(t, err)
		require.NotNil(t, progress)

		assert.Zero(t, progress.AnsweredCount)
		assert.Zero(t, progress.PercentComplete)
		assert.Len(t, progress.UnansweredQuestionIDs, 3)
	})

	t.Run("AbsentPublication", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		progress, err := svc.Progress(ctx, f.tenantID, f.respondentID, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, progress)
	})
}

func TestReport(t *testing.T) {
	ctx := context.Background()

	t.Run("AnswersInSequenceOrderWithChoiceLabels", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		// Answer out of order; the report must come back in sequence order.
		f.answerChoice(t, 2, 1)
		f.answerText(t, 1, "solid content")
		f.answerChoice(t, 0, 0)

		report, err := svc.Report(ctx, f.tenantID, f.respondentID, f.publication.ID)
		require.NoError(t, err)
		require.NotNil(t, report)

		assert.Equal(t, "Bob Smith", report.DisplayName)
		require.Len(t, report.Answers, 3)
		assert.Equal(t, "Useful?", report.Answers[0].QuestionText)
		assert.Equal(t, "Agree", report.Answers[0].AnswerValue)
		assert.Equal(t, "Remarks?", report.Answers[1].QuestionText)
		assert.Equal(t, "solid content", report.Answers[1].AnswerValue)
		assert.Equal(t, "Recommend?", report.Answers[2].QuestionText)
		assert.Equal(t, "Disagree", report.Answers[2].AnswerValue)
	})

	t.Run("SkipsUnansweredQuestions", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		f.answerText(t, 1, "just this one")

		report, err := svc.Report(ctx, f.tenantID, f.respondentID, f.publication.ID)
		require.NoError(t, err)
		require.NotNil(t, report)
		require.Len(t, report.Answers, 1)
		assert.Equal(t, "Remarks?", report.Answers[0].QuestionText)
	})

	t.Run("AbsentRespondent", func(t *testing.T) {
		f := newFixture(t)
		svc := NewService(f.store)

		report, err := svc.Report(ctx, f.tenantID, primitive.NewObjectID(), f.publication.ID)
		require.NoError(t, err)
		assert.Nil(t, report)
	})
}
