package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Publication ---
// A live, time-bounded instance of a survey open for responses. ClosedAt is
// set once and never unset; there is no re-open.
type Publication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID     primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	SurveyID     primitive.ObjectID `bson:"surveyId" json:"surveyId"`
	Name         string             `bson:"name" json:"name"`
	AccessCode   string             `bson:"accessCode" json:"accessCode"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	Required     bool               `bson:"required" json:"required"`
	PublishedAt  time.Time          `bson:"publishedAt" json:"publishedAt"`
	ClosedAt     *time.Time         `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
	CloseAt      *time.Time         `bson:"closeAt,omitempty" json:"closeAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// IsOpen reports whether the publication currently accepts responses.
func (p *Publication) IsOpen() bool {
	return !p.PublishedAt.IsZero() && p.ClosedAt == nil && !time.Now().Before(p.PublishedAt)
}
