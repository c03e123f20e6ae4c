package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multipleChoice"
	FreeText       QuestionType = "freeText"
)

// DefaultMaxTextLength bounds free-text answers when a question does not
// set its own limit.
const DefaultMaxTextLength = 4000

// --- Question ---
// One prompt within a survey. Multiple-choice questions are bound to a
// scale; free-text questions carry an optional max length instead.
type Question struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Text      string              `bson:"text" json:"text"`
	Type      QuestionType        `bson:"type" json:"type"`
	Sequence  int                 `bson:"sequence" json:"sequence"`
	Required  bool                `bson:"required" json:"required"`
	ScaleID   *primitive.ObjectID `bson:"scaleId,omitempty" json:"scaleId,omitempty"`
	MaxLength int                 `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
}

// TextLimit returns the effective free-text length limit.
func (q *Question) TextLimit() int {
	if q.MaxLength > 0 {
		return q.MaxLength
	}
	return DefaultMaxTextLength
}
