package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered exercise tracker account. Usernames are unique.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
}
