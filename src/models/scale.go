package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Scale ---
// Reusable ordered answer-option set for multiple-choice questions. A scale
// may be shared across surveys of the same tenant; it cannot be deleted
// while any question references it.
type Scale struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID  primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Title     string             `bson:"title" json:"title"`
	Shareable bool               `bson:"shareable" json:"shareable"`
	Choices   []Choice           `bson:"choices,omitempty" json:"choices,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// --- Choice ---
type Choice struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text     string             `bson:"text" json:"text"`
	Sequence int                `bson:"sequence" json:"sequence"`
	Value    int                `bson:"value" json:"value"`
}

// ChoiceByID looks a choice up within the scale.
func (s *Scale) ChoiceByID(id primitive.ObjectID) *Choice {
	for i := range s.Choices {
		if s.Choices[i].ID == id {
			return &s.Choices[i]
		}
	}
	return nil
}
