package exports

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// Service renders a publication's full response set as CSV, one row per
// response, ordered by respondent email and then question sequence.
type Service struct {
	store *repositories.Store
}

func NewService(store *repositories.Store) *Service {
	return &Service{store: store}
}

var header = []string{"Respondent Email", "Respondent Name", "Question", "Question Type", "Answer", "Responded At"}

// ExportPublicationCSV returns the CSV document, or "" when the publication
// has no responses yet.
func (s *Service) ExportPublicationCSV(ctx context.Context, tenantID, publicationID primitive.ObjectID) (string, error) {
	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil {
		return "", err
	}
	if publication == nil {
		return "", models.ErrPublicationNotFound
	}
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, publication.SurveyID)
	if err != nil {
		return "", err
	}
	if survey == nil {
		return "", models.ErrSurveyNotFound
	}

	responses, err := s.store.Responses.GetByPublication(ctx, tenantID, publicationID)
	if err != nil {
		return "", err
	}
	if len(responses) == 0 {
		return "", nil
	}

	type row struct {
		email    string
		name     string
		sequence int
		fields   []string
	}

	respondents := map[primitive.ObjectID]*models.Respondent{}
	scales := map[primitive.ObjectID]*models.Scale{}
	rows := make([]row, 0, len(responses))

	for _, response := range responses {
		respondent, ok := respondents[response.RespondentID]
		if !ok {
			respondent, err = s.store.Respondents.GetByID(ctx, tenantID, response.RespondentID)
			if err != nil {
				return "", err
			}
			respondents[response.RespondentID] = respondent
		}

		email, name := "", ""
		if respondent != nil {
			email, name = respondent.Email, respondent.FullName()
		}

		question := survey.QuestionByID(response.QuestionID)
		questionText, questionType, sequence := "", "", 0
		answer := response.ResponseText
		if question != nil {
			questionText = question.Text
			questionType = string(question.Type)
			sequence = question.Sequence
			answer = s.answerValue(ctx, tenantID, question, &response, scales)
		}

		rows = append(rows, row{
			email:    email,
			name:     name,
			sequence: sequence,
			fields: []string{
				email,
				name,
				questionText,
				questionType,
				answer,
				response.RespondedAt.Format("2006-01-02 15:04:05"),
			},
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].email != rows[j].email {
			return rows[i].email < rows[j].email
		}
		return rows[i].sequence < rows[j].sequence
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write(r.fields); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) answerValue(ctx context.Context, tenantID primitive.ObjectID, question *models.Question, response *models.Response, scales map[primitive.ObjectID]*models.Scale) string {
	if question.Type != models.MultipleChoice || response.ChoiceID == nil {
		return response.ResponseText
	}
	if question.ScaleID == nil {
		return response.ChoiceID.Hex()
	}
	scale, ok := scales[*question.ScaleID]
	if !ok {
		scale, _ = s.store.Scales.GetByID(ctx, tenantID, *question.ScaleID)
		scales[*question.ScaleID] = scale
	}
	if scale != nil {
		if choice := scale.ChoiceByID(*response.ChoiceID); choice != nil {
			return choice.Text
		}
	}
	return response.ChoiceID.Hex()
}
