package responses

import (
	"context"
	"fmt"
	"strings"
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

// Submit validates a batch of answers against an open publication and
// upserts the valid ones, one response per (respondent, question,
// publication) triple.
//
// Missing-entity and closed-publication conditions come back as errors;
// answer-level problems are accumulated in the result and never raised.
// When any required question is unanswered, nothing is persisted. Otherwise
// every valid answer commits in one transaction, and Accepted reports
// whether the whole batch was clean.
func (s *Service) Submit(ctx context.Context, tenantID, publicationID, respondentID primitive.ObjectID, answers []models.AnswerInput) (*models.SubmissionResult, error) {
	respondent, err := s.store.Respondents.GetByID(ctx, tenantID, respondentID)
	if err != nil {
		return nil, err
	}
	if respondent == nil {
		return nil, models.ErrRespondentNotFound
	}

	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil {
		return nil, models.ErrPublicationNotFound
	}
	if !publication.IsOpen() {
		return nil, models.ErrPublicationClosed
	}

	survey, err := s.store.Surveys.GetByID(ctx, tenantID, publication.SurveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, models.ErrSurveyNotFound
	}

	answeredIDs := make(map[primitive.ObjectID]bool, len(answers))
	for _, answer := range answers {
		if id, err := primitive.ObjectIDFromHex(answer.QuestionID); err == nil {
			answeredIDs[id] = true
		}
	}

	// Required questions are enforced first; if any is missing the whole
	// submission is rejected before anything is written.
	var errs []string
	for _, question := range survey.RequiredQuestions() {
		if !answeredIDs[question.ID] {
			errs = append(errs, "Required question not answered: "+question.Text)
		}
	}
	if len(errs) > 0 {
		return &models.SubmissionResult{Accepted: false, Errors: errs}, nil
	}

	now := time.Now()
	scales := map[primitive.ObjectID]*models.Scale{}
	var upserts []*models.Response

	for _, answer := range answers {
		questionID, err := primitive.ObjectIDFromHex(answer.QuestionID)
		if err != nil {
			errs = append(errs, "Invalid question ID: "+answer.QuestionID)
			continue
		}
		question := survey.QuestionByID(questionID)
		if question == nil {
			errs = append(errs, "Invalid question ID: "+answer.QuestionID)
			continue
		}

		response, msg := s.buildResponse(ctx, tenantID, publicationID, respondentID, question, &answer, now, scales)
		if msg != "" {
			errs = append(errs, msg)
			continue
		}
		upserts = append(upserts, response)
	}

	err = s.store.UnitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, response := range upserts {
			if err := s.store.Responses.Upsert(txCtx, response); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.SubmissionResult{Accepted: len(errs) == 0, Errors: errs}, nil
}

// buildResponse validates one answer against its question's type and turns
// it into a persistable response. A non-empty message means the answer is
// rejected.
func (s *Service) buildResponse(ctx context.Context, tenantID, publicationID, respondentID primitive.ObjectID, question *models.Question, answer *models.AnswerInput, now time.Time, scales map[primitive.ObjectID]*models.Scale) (*models.Response, string) {
	response := &models.Response{
		TenantID:      tenantID,
		PublicationID: publicationID,
		RespondentID:  respondentID,
		QuestionID:    question.ID,
		RespondedAt:   now,
	}

	switch question.Type {
	case models.MultipleChoice:
		if answer.ChoiceID == nil || *answer.ChoiceID == "" {
			return nil, "Invalid answer for question: " + question.Text
		}
		choiceID, err := primitive.ObjectIDFromHex(*answer.ChoiceID)
		if err != nil {
			return nil, "Invalid answer for question: " + question.Text
		}
		scale, msg := s.scaleFor(ctx, tenantID, question, scales)
		if msg != "" {
			return nil, msg
		}
		if scale.ChoiceByID(choiceID) == nil {
			return nil, "Invalid answer for question: " + question.Text
		}
		response.ChoiceID = &choiceID

	case models.FreeText:
		if answer.Text == nil {
			return nil, "Invalid answer for question: " + question.Text
		}
		text := strings.TrimSpace(*answer.Text)
		if text == "" {
			return nil, "Invalid answer for question: " + question.Text
		}
		if len(text) > question.TextLimit() {
			return nil, fmt.Sprintf("Answer exceeds %d characters for question: %s", question.TextLimit(), question.Text)
		}
		response.ResponseText = text

	default:
		return nil, "Unsupported question type for question: " + question.Text
	}

	return response, ""
}

func (s *Service) scaleFor(ctx context.Context, tenantID primitive.ObjectID, question *models.Question, scales map[primitive.ObjectID]*models.Scale) (*models.Scale, string) {
	if question.ScaleID == nil {
		return nil, "Question has no scale: " + question.Text
	}
	if scale, ok := scales[*question.ScaleID]; ok {
		return scale, ""
	}
	scale, err := s.store.Scales.GetByID(ctx, tenantID, *question.ScaleID)
	if err != nil || scale == nil {
		return nil, "Question has no scale: " + question.Text
	}
	scales[*question.ScaleID] = scale
	return scale, ""
}
