package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Response ---
// One respondent's answer to one question within one publication. At most
// one response exists per (respondentId, questionId, publicationId); a
// second submission for the same triple overwrites the first.
type Response struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TenantID      primitive.ObjectID  `bson:"tenantId" json:"tenantId"`
	PublicationID primitive.ObjectID  `bson:"publicationId" json:"publicationId"`
	RespondentID  primitive.ObjectID  `bson:"respondentId" json:"respondentId"`
	QuestionID    primitive.ObjectID  `bson:"questionId" json:"questionId"`
	ChoiceID      *primitive.ObjectID `bson:"choiceId,omitempty" json:"choiceId,omitempty"`
	ResponseText  string              `bson:"responseText,omitempty" json:"responseText,omitempty"`
	RespondedAt   time.Time           `bson:"respondedAt" json:"respondedAt"`
	CreatedAt     time.Time           `bson:"createdAt,omitempty" json:"createdAt"`
}
