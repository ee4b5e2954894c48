package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	LoginName   string             `bson:"login_name" json:"login_name" binding:"required"`
	Password    string             `bson:"password" json:"password" binding:"required"`
	FirstName   string             `bson:"first_name" json:"first_name" binding:"required"`
	LastName    string             `bson:"last_name" json:"last_name" binding:"required"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Occupation  string             `bson:"occupation" json:"occupation"`
}

// UserRef is the projection returned by /user/list and inlined into
// resolved comments. Never carries credentials.
type UserRef struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
}

type UserDetail struct {
	ID          primitive.ObjectID `json:"_id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Location    string             `json:"location"`
	Description string             `json:"description"`
	Occupation  string             `json:"occupation"`
}

func (u *User) Ref() UserRef {
	return UserRef{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (u *User) Detail() UserDetail {
	return UserDetail{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		Description: u.Description,
		Occupation:  u.Occupation,
	}
}
