package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SurveyStatus string

const (
	SurveyDraft     SurveyStatus = "draft"
	SurveyPublished SurveyStatus = "published"
	SurveyArchived  SurveyStatus = "archived"
)

// --- Survey ---
// Question template owned by a tenant. Mutable only while draft; once
// published its questions are frozen.
type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID    primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      SurveyStatus       `bson:"status" json:"status"`
	Questions   []Question         `bson:"questions,omitempty" json:"questions,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// MarkPublished moves the survey into the published status. A survey needs
// at least one question, and an archived survey cannot be published.
// Re-publishing an already published survey is allowed: each publish opens
// an independent publication.
func (s *Survey) MarkPublished() error {
	if s.Status == SurveyArchived {
		return ErrSurveyNotPublishable
	}
	if len(s.Questions) == 0 {
		return ErrSurveyHasNoQuestions
	}
	s.Status = SurveyPublished
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Survey) Archive() {
	s.Status = SurveyArchived
	s.UpdatedAt = time.Now()
}

// QuestionByID looks a question up within the survey.
func (s *Survey) QuestionByID(id primitive.ObjectID) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// RequiredQuestions returns the questions a submission must answer.
func (s *Survey) RequiredQuestions() []Question {
	var required []Question
	for _, q := range s.Questions {
		if q.Required {
			required = append(required, q)
		}
	}
	return required
}
