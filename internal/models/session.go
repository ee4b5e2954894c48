package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session maps an opaque server-held token to an authenticated user.
// The name fields are denormalized at login so the session response and
// freshly posted comments resolve without a user lookup.
type Session struct {
	Token        string             `bson:"_id"`
	UserID       primitive.ObjectID `bson:"user_id"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	CreationDate time.Time          `bson:"creation_date"`
}

func (s *Session) User() UserRef {
	return UserRef{
		ID:        s.UserID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
	}
}
