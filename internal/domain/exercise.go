package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single recorded workout entry.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Username    string             `bson:"username" json:"username"` // Copied from the owning user at creation time
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"` // Minutes
	Date        time.Time          `bson:"date" json:"date"`
}
