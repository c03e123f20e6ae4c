package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
	publicationSvc "Backend-SurveyHub/src/services/publications"
	responseSvc "Backend-SurveyHub/src/services/responses"
	"Backend-SurveyHub/src/utils"
)

type submitFixture struct {
	store       *repositories.Store
	tenantID    primitive.ObjectID
	respondent  *models.Respondent
	survey      *models.Survey
	question    models.Question
	publication *models.Publication
	ctrl        *ResponseController
}

func newSubmitFixture(t *testing.T) *submitFixture {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	tenantID := primitive.NewObjectID()

	respondent := &models.Respondent{TenantID: tenantID, Email: "carol@example.com", Active: true}
	repositories.AddRespondent(store, respondent)

	question := models.Question{ID: primitive.NewObjectID(), Text: "Remarks?", Type: models.FreeText, Sequence: 1}
	survey := &models.Survey{
		TenantID:  tenantID,
		Title:     "Feedback",
		Status:    models.SurveyPublished,
		Questions: []models.Question{question},
	}
	require.NoError(t, store.Surveys.Add(ctx, survey))

	publication := &models.Publication{
		TenantID:    tenantID,
		SurveyID:    survey.ID,
		Name:        "Run",
		AccessCode:  "join-42",
		PublishedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.Publications.Add(ctx, publication))

	ctrl := NewResponseController(responseSvc.NewService(store), publicationSvc.NewService(store, nil))
	return &submitFixture{
		store:       store,
		tenantID:    tenantID,
		respondent:  respondent,
		survey:      survey,
		question:    question,
		publication: publication,
		ctrl:        ctrl,
	}
}

func (f *submitFixture) body(text string) string {
	return fmt.Sprintf(`{"respondentId":%q,"answers":[{"questionId":%q,"text":%q}]}`,
		f.respondent.ID.Hex(), f.question.ID.Hex(), text)
}

// Respondents reach a publication through its access code alone; the
// submission path must work without a JWT.
func TestSubmitResponsesByAccessCode(t *testing.T) {
	f := newSubmitFixture(t)

	app := fiber.New()
	app.Post("/publications/code/:code/responses", f.ctrl.SubmitResponsesByAccessCode)

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/publications/code/join-42/responses", f.body("count me in")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.True(t, result.Accepted)
	assert.Empty(t, result.Errors)

	responses, err := f.store.Responses.GetByRespondentAndPublication(
		context.Background(), f.tenantID, f.respondent.ID, f.publication.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "count me in", responses[0].ResponseText)

	resp, err = app.Test(jsonRequest(fiber.MethodPost, "/publications/code/no-such-code/responses", f.body("x")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmitResponsesDropsCachedStatistics(t *testing.T) {
	withRedis(t)
	f := newSubmitFixture(t)

	require.NoError(t, utils.CacheSurveyStatistics(
		f.tenantID.Hex(), f.survey.ID.Hex(), f.publication.ID.Hex(), []byte(`{"stale":true}`), time.Minute))

	app := fiber.New()
	app.Post("/publications/:id/responses", asTenant(f.tenantID, f.ctrl.SubmitResponses))

	resp, err := app.Test(jsonRequest(fiber.MethodPost,
		"/publications/"+f.publication.ID.Hex()+"/responses", f.body("fresh answer")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Nil(t, utils.GetCachedSurveyStatistics(f.tenantID.Hex(), f.survey.ID.Hex(), f.publication.ID.Hex()))
}
