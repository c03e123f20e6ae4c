package models

import "time"

// --------- Requests ---------

type CreateChoiceRequest struct {
	Text     string `json:"text" validate:"required,max=500"`
	Sequence int    `json:"sequence" validate:"gt=0"`
	Value    int    `json:"value"`
}

type CreateScaleRequest struct {
	Title     string                `json:"title" validate:"required"`
	Shareable bool                  `json:"shareable"`
	Choices   []CreateChoiceRequest `json:"choices" validate:"required,min=1,dive"`
}

type CreateQuestionRequest struct {
	Text      string       `json:"text" validate:"required"`
	Type      QuestionType `json:"type" validate:"required,oneof=multipleChoice freeText"`
	Sequence  int          `json:"sequence" validate:"gte=0"`
	Required  bool         `json:"required"`
	ScaleID   string       `json:"scaleId,omitempty"`
	MaxLength int          `json:"maxLength,omitempty" validate:"gte=0"`
}

type CreateSurveyRequest struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"dive"`
}

type PublishSurveyRequest struct {
	Name         string     `json:"name" validate:"required"`
	DisplayOrder int        `json:"displayOrder" validate:"gte=0"`
	Required     bool       `json:"required"`
	CloseAt      *time.Time `json:"closeAt,omitempty"`
}

// AnswerInput is one submitted answer. Exactly one of choiceId / text is
// expected depending on the question type.
type AnswerInput struct {
	QuestionID string  `json:"questionId" validate:"required"`
	ChoiceID   *string `json:"choiceId,omitempty"`
	Text       *string `json:"text,omitempty"`
}

type SubmitResponsesRequest struct {
	RespondentID string        `json:"respondentId" validate:"required"`
	Answers      []AnswerInput `json:"answers" validate:"dive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --------- Results ---------

// SubmissionResult carries the outcome of a submission. Validation failures
// land in Errors with Accepted=false; they never travel as Go errors.
type SubmissionResult struct {
	Accepted bool     `json:"accepted"`
	Errors   []string `json:"errors"`
}

// ChoiceFrequency is one row of a multiple-choice distribution.
type ChoiceFrequency struct {
	Choice     string  `json:"choice"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// QuestionStatistics aggregates all responses to one question within one
// publication. Distribution and Mode are set for multiple-choice questions,
// RawTexts for free-text ones.
type QuestionStatistics struct {
	QuestionID   string            `json:"questionId"`
	QuestionText string            `json:"questionText"`
	QuestionType QuestionType      `json:"questionType"`
	N            int               `json:"n"`
	Mode         []string          `json:"mode,omitempty"`
	Distribution []ChoiceFrequency `json:"distribution,omitempty"`
	RawTexts     []string          `json:"rawTexts,omitempty"`
}

type SurveyStatistics struct {
	SurveyID         string               `json:"surveyId"`
	SurveyTitle      string               `json:"surveyTitle"`
	PublicationID    string               `json:"publicationId"`
	PublicationName  string               `json:"publicationName"`
	TotalRespondents int                  `json:"totalRespondents"`
	RespondedCount   int                  `json:"respondedCount"`
	ResponseRate     float64              `json:"responseRate"`
	PerQuestion      []QuestionStatistics `json:"perQuestion"`
}

type Progress struct {
	TotalQuestions         int      `json:"totalQuestions"`
	AnsweredCount          int      `json:"answeredCount"`
	PercentComplete        float64  `json:"percentComplete"`
	UnansweredQuestionIDs  []string `json:"unansweredQuestionIds"`
}

type ReportAnswer struct {
	QuestionText string       `json:"questionText"`
	QuestionType QuestionType `json:"questionType"`
	AnswerValue  string       `json:"answerValue"`
	RespondedAt  time.Time    `json:"respondedAt"`
}

type Report struct {
	RespondentID  string         `json:"respondentId"`
	DisplayName   string         `json:"displayName"`
	PublicationID string         `json:"publicationId"`
	Answers       []ReportAnswer `json:"answers"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}
