package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Protected is implemented by records that only a single user may mutate.
type Protected interface {
	IsOwnedBy(userID primitive.ObjectID) bool
}
