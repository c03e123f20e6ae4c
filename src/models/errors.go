package models

import "errors"

// Not-found conditions, surfaced as 404.
var (
	ErrSurveyNotFound      = errors.New("survey not found")
	ErrScaleNotFound       = errors.New("scale not found")
	ErrPublicationNotFound = errors.New("publication not found")
	ErrRespondentNotFound  = errors.New("respondent not found")
	ErrQuestionNotFound    = errors.New("question not found")
)

// State conflicts, surfaced as 400/409. These are never retried.
var (
	ErrSurveyHasNoQuestions      = errors.New("survey must have at least one question before publishing")
	ErrSurveyNotPublishable      = errors.New("archived surveys cannot be published")
	ErrSurveyNotDraft            = errors.New("only draft surveys can be updated")
	ErrPublicationAlreadyClosed  = errors.New("publication is already closed")
	ErrPublicationClosed         = errors.New("publication is closed")
	ErrScaleInUse                = errors.New("scale is referenced by existing questions")
	ErrDuplicateChoiceSequence   = errors.New("choice sequence must be unique within a scale")
	ErrInvalidCredentials        = errors.New("invalid email or password")
)
