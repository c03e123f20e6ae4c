package statistics

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
	"Backend-SurveyHub/src/repositories"
)

// Service computes statistics on demand from the persisted response set.
// Nothing is maintained incrementally.
type Service struct {
	store *repositories.Store
}

func NewService(store *repositories.Store) *Service {
	return &Service{store: store}
}

// QuestionStatistics aggregates all responses for one question within one
// publication. It returns (nil, nil) when there is no data to aggregate.
//
// For multiple-choice questions the distribution is sorted by count
// descending with choice sequence as the deterministic tie-break, and the
// mode lists every choice at the maximum count, so ties yield more than
// one winner.
func (s *Service) QuestionStatistics(ctx context.Context, tenantID, questionID, publicationID primitive.ObjectID) (*models.QuestionStatistics, error) {
	responses, err := s.store.Responses.GetByQuestionAndPublication(ctx, tenantID, questionID, publicationID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, nil
	}

	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil || publication == nil {
		return nil, err
	}
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, publication.SurveyID)
	if err != nil || survey == nil {
		return nil, err
	}
	question := survey.QuestionByID(questionID)
	if question == nil {
		return nil, nil
	}

	stats := &models.QuestionStatistics{
		QuestionID:   question.ID.Hex(),
		QuestionText: question.Text,
		QuestionType: question.Type,
		N:            len(responses),
	}

	if question.Type == models.MultipleChoice {
		scale, err := s.scaleFor(ctx, tenantID, question)
		if err != nil {
			return nil, err
		}
		stats.Distribution, stats.Mode = aggregateChoices(responses, scale)
	} else {
		texts := make([]string, 0, len(responses))
		for _, r := range responses {
			texts = append(texts, r.ResponseText)
		}
		stats.RawTexts = texts
	}

	return stats, nil
}

// SurveyStatistics aggregates a whole publication: overall response rate
// plus per-question statistics in question sequence order. Questions with
// zero responses are skipped, not errored. It returns (nil, nil) when the
// survey or publication is absent or they do not belong together.
func (s *Service) SurveyStatistics(ctx context.Context, tenantID, surveyID, publicationID primitive.ObjectID) (*models.SurveyStatistics, error) {
	survey, err := s.store.Surveys.GetByID(ctx, tenantID, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}

	publication, err := s.store.Publications.GetByID(ctx, tenantID, publicationID)
	if err != nil {
		return nil, err
	}
	if publication == nil || publication.SurveyID != surveyID {
		return nil, nil
	}

	totalRespondents, err := s.store.Respondents.CountEligible(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	respondedCount, err := s.store.Responses.CountDistinctRespondents(ctx, tenantID, publicationID)
	if err != nil {
		return nil, err
	}

	responseRate := 0.0
	if totalRespondents > 0 {
		responseRate = float64(respondedCount) * 100.0 / float64(totalRespondents)
	}

	questions := make([]models.Question, len(survey.Questions))
	copy(questions, survey.Questions)
	sort.Slice(questions, func(i, j int) bool { return questions[i].Sequence < questions[j].Sequence })

	perQuestion := make([]models.QuestionStatistics, 0, len(questions))
	for _, question := range questions {
		stat, err := s.QuestionStatistics(ctx, tenantID, question.ID, publicationID)
		if err != nil {
			return nil, err
		}
		if stat != nil {
			perQuestion = append(perQuestion, *stat)
		}
	}

	return &models.SurveyStatistics{
		SurveyID:         survey.ID.Hex(),
		SurveyTitle:      survey.Title,
		PublicationID:    publication.ID.Hex(),
		PublicationName:  publication.Name,
		TotalRespondents: totalRespondents,
		RespondedCount:   respondedCount,
		ResponseRate:     responseRate,
		PerQuestion:      perQuestion,
	}, nil
}

func (s *Service) scaleFor(ctx context.Context, tenantID primitive.ObjectID, question *models.Question) (*models.Scale, error) {
	if question.ScaleID == nil {
		return nil, nil
	}
	return s.store.Scales.GetByID(ctx, tenantID, *question.ScaleID)
}

// aggregateChoices groups multiple-choice responses by selected choice.
func aggregateChoices(responses []models.Response, scale *models.Scale) ([]models.ChoiceFrequency, []string) {
	counts := map[primitive.ObjectID]int{}
	for _, r := range responses {
		if r.ChoiceID != nil {
			counts[*r.ChoiceID]++
		}
	}

	type entry struct {
		label    string
		sequence int
		count    int
	}
	entries := make([]entry, 0, len(counts))
	for choiceID, count := range counts {
		label := choiceID.Hex()
		sequence := 0
		if scale != nil {
			if choice := scale.ChoiceByID(choiceID); choice != nil {
				label = choice.Text
				sequence = choice.Sequence
			}
		}
		entries = append(entries, entry{label: label, sequence: sequence, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].sequence < entries[j].sequence
	})

	n := len(responses)
	distribution := make([]models.ChoiceFrequency, 0, len(entries))
	maxCount := 0
	for _, e := range entries {
		if e.count > maxCount {
			maxCount = e.count
		}
		distribution = append(distribution, models.ChoiceFrequency{
			Choice:     e.label,
			Count:      e.count,
			Percentage: float64(e.count) * 100.0 / float64(n),
		})
	}

	var mode []string
	for _, e := range entries {
		if e.count == maxCount {
			mode = append(mode, e.label)
		}
	}
	return distribution, mode
}
