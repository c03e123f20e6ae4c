package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tenant is the isolation root. Every other entity carries the owning
// tenant's ID and queries are always filtered by it.
type Tenant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
