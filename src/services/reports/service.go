package reports

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// Service derives per-respondent projections (completion progress and the
// denormalized answer report) from the same response set the statistics
// aggregator reads.
type Service struct {
	store *repositories.Store
}

func NewService(store *repositories.Store) *Service {
	return &Service{store: store}
}

// Progress reports how far a respondent is through a publication's survey:
// the set difference between the survey's questions and the questions the
// respondent has answered. Returns (nil, nil) when the publication is
// absent.
func (s *Service) Progress(ctx context.Context, tenantID, respondentID, publicationID primitive.ObjectID) (*models.Progress, error) {
	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil || publication == nil {
		return nil, err
	}
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, publication.SurveyID)
	if err != nil || survey == nil {
		return nil, err
	}

	responses, err := s.store.Responses.GetByRespondentAndPublication(ctx, tenantID, respondentID, publicationID)
	if err != nil {
		return nil, err
	}

	answered := make(map[primitive.ObjectID]bool, len(responses))
	for _, r := range responses {
		answered[r.QuestionID] = true
	}

	questions := sortedQuestions(survey)
	var unanswered []string
	answeredCount := 0
	for _, q := range questions {
		if answered[q.ID] {
			answeredCount++
		} else {
			unanswered = append(unanswered, q.ID.Hex())
		}
	}

	percent := 0.0
	if len(questions) > 0 {
		percent = float64(answeredCount) * 100.0 / float64(len(questions))
	}

	return &models.Progress{
		TotalQuestions:        len(questions),
		AnsweredCount:         answeredCount,
		PercentComplete:       percent,
		UnansweredQuestionIDs: unanswered,
	}, nil
}

// Report flattens one respondent's responses for one publication into a
// denormalized view ordered by question sequence. Returns (nil, nil) when
// the respondent or publication is absent.
func (s *Service) Report(ctx context.Context, tenantID, respondentID, publicationID primitive.ObjectID) (*models.Report, error) {
	respondent, err := s.store.Respondents.GetByID(ctx, tenantID, respondentID)
	if err != nil || respondent == nil {
		return nil, err
	}
	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil || publication == nil {
		return nil, err
	}
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, publication.SurveyID)
	if err != nil || survey == nil {
		return nil, err
	}

	responses, err := s.store.Responses.GetByRespondentAndPublication(ctx, tenantID, respondentID, publicationID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[primitive.ObjectID]models.Response, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	scales := map[primitive.ObjectID]*models.Scale{}
	answers := make([]models.ReportAnswer, 0, len(responses))
	for _, question := range sortedQuestions(survey) {
		response, ok := byQuestion[question.ID]
		if !ok {
			continue
		}
		answers = append(answers, models.ReportAnswer{
			QuestionText: question.Text,
			QuestionType: question.Type,
			AnswerValue:  s.answerValue(ctx, tenantID, &question, &response, scales),
			RespondedAt:  response.RespondedAt,
		})
	}

	return &models.Report{
		RespondentID:  respondent.ID.Hex(),
		DisplayName:   respondent.FullName(),
		PublicationID: publication.ID.Hex(),
		Answers:       answers,
	}, nil
}

// answerValue renders the stored answer: the choice label for
// multiple-choice questions, the raw text otherwise.
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

func sortedQuestions(survey *models.Survey) []models.Question {
	questions := make([]models.Question, len(survey.Questions))
	copy(questions, survey.Questions)
	sort.Slice(questions, func(i, j int) bool { return questions[i].Sequence < questions[j].Sequence })
	return questions
}
