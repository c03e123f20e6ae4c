package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMarkPublished(t *testing.T) {
	question := Question{ID: primitive.NewObjectID(), Text: "Q", Type: FreeText, Sequence: 1}

	t.Run("DraftWithQuestions", func(t *testing.T) {
		survey := Survey{Status: SurveyDraft, Questions: []Question{question}}
		assert.NoError(t, survey.MarkPublished())
		assert.Equal(t, SurveyPublished, survey.Status)
	})

	t.Run("AlreadyPublished", func(t *testing.T) {
		survey := Survey{Status: SurveyPublished, Questions: []Question{question}}
		assert.NoError(t, survey.MarkPublished())
		assert.Equal(t, SurveyPublished, survey.Status)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		survey := Survey{Status: SurveyDraft}
		assert.ErrorIs(t, survey.MarkPublished(), ErrSurveyHasNoQuestions)
		assert.Equal(t, SurveyDraft, survey.Status)
	})

	t.Run("Archived", func(t *testing.T) {
		survey := Survey{Status: SurveyArchived, Questions: []Question{question}}
		assert.ErrorIs(t, survey.MarkPublished(), ErrSurveyNotPublishable)
		assert.Equal(t, SurveyArchived, survey.Status)
	})
}

func TestRequiredQuestions(t *testing.T) {
	required := Question{ID: primitive.NewObjectID(), Required: true}
	optional := Question{ID: primitive.NewObjectID()}
	survey := Survey{Questions: []Question{optional, required}}

	got := survey.RequiredQuestions()
	assert.Len(t, got, 1)
	assert.Equal(t, required.ID, got[0].ID)
}

func TestPublicationIsOpen(t *testing.T) {
	now := time.Now()

	t.Run("Open", func(t *testing.T) {
		p := Publication{PublishedAt: now.Add(-time.Minute)}
		assert.True(t, p.IsOpen())
	})

	t.Run("Closed", func(t *testing.T) {
		closedAt := now
		p := Publication{PublishedAt: now.Add(-time.Minute), ClosedAt: &closedAt}
		assert.False(t, p.IsOpen())
	})

	t.Run("NotYetPublished", func(t *testing.T) {
		p := Publication{PublishedAt: now.Add(time.Hour)}
		assert.False(t, p.IsOpen())
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var p Publication
		assert.False(t, p.IsOpen())
	})
}

func TestQuestionTextLimit(t *testing.T) {
	q := Question{Type: FreeText}
	assert.Equal(t, DefaultMaxTextLength, q.TextLimit())

	q.MaxLength = 120
	assert.Equal(t, 120, q.TextLimit())
}
