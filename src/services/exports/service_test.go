package exports

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

func TestExportPublicationCSV(t *testing.T) {
	ctx := context.Background()
	tenantID := primitive.NewObjectID()
	store := repositories.NewMemoryStore()
	svc := NewService(store)

	alice := &models.Respondent{TenantID: tenantID, Email: "alice@example.com", FirstName: "Alice", LastName: "Nguyen", Active: true}
	bob := &models.Respondent{TenantID: tenantID, Email: "bob@example.com", FirstName: "Bob", LastName: "Smith", Active: true}
	repositories.AddRespondent(store, alice)
	repositories.AddRespondent(store, bob)

	scale := &models.Scale{
		TenantID: tenantID,
		Title:    "Agreement",
		Choices: []models.Choice{
			{ID: primitive.NewObjectID(), Text: "Agree", Sequence: 1},
			{ID: primitive.NewObjectID(), Text: "Disagree", Sequence: 2},
		},
	}
	require.NoError(t, store.Scales.Add(ctx, scale))

	choiceQ := models.Question{ID: primitive.NewObjectID(), Text: "Useful?", Type: models.MultipleChoice, Sequence: 1, ScaleID: &scale.ID}
	textQ := models.Question{ID: primitive.NewObjectID(), Text: "Remarks, if any?", Type: models.FreeText, Sequence: 2}
	survey := &models.Survey{
		TenantID:  tenantID,
		Title:     "Course Feedback",
		Status:    models.SurveyPublished,
		Questions: []models.Question{choiceQ, textQ},
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

	t.Run("EmptyPublication", func(t *testing.T) {
		out, err := svc.ExportPublicationCSV(ctx, tenantID, publication.ID)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("UnknownPublication", func(t *testing.T) {
		_, err := svc.ExportPublicationCSV(ctx, tenantID, primitive.NewObjectID())
		assert.ErrorIs(t, err, models.ErrPublicationNotFound)
	})

	respondedAt := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	agreeID := scale.Choices[0].ID
	require.NoError(t, store.Responses.Upsert(ctx, &models.Response{
		TenantID:      tenantID,
		PublicationID: publication.ID,
		RespondentID:  bob.ID,
		QuestionID:    choiceQ.ID,
		ChoiceID:      &agreeID,
		RespondedAt:   respondedAt,
	}))
	require.NoError(t, store.Responses.Upsert(ctx, &models.Response{
		TenantID:      tenantID,
		PublicationID: publication.ID,
		RespondentID:  alice.ID,
		QuestionID:    textQ.ID,
		ResponseText:  `said "great", would come again`,
		RespondedAt:   respondedAt,
	}))

	t.Run("RowsSortedByEmailThenSequence", func(t *testing.T) {
		out, err := svc.ExportPublicationCSV(ctx, tenantID, publication.ID)
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, []string{"Respondent Email", "Respondent Name", "Question", "Question Type", "Answer", "Responded At"}, records[0])

		assert.Equal(t, "alice@example.com", records[1][0])
		assert.Equal(t, "Alice Nguyen", records[1][1])
		assert.Equal(t, "Remarks, if any?", records[1][2])
		assert.Equal(t, `said "great", would come again`, records[1][4])

		assert.Equal(t, "bob@example.com", records[2][0])
		assert.Equal(t, "Useful?", records[2][2])
		assert.Equal(t, "Agree", records[2][4])
		assert.Equal(t, "2026-03-15 09:30:00", records[2][5])
	})
}
