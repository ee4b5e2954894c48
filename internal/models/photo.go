package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment lives embedded in its parent photo document. Append order is
// display order.
type Comment struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Comment  string             `bson:"comment" json:"comment"`
	DateTime time.Time          `bson:"date_time" json:"date_time"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
}

type Photo struct {
	ID       primitive.ObjectID   `bson:"_id" json:"_id"`
	UserID   primitive.ObjectID   `bson:"user_id" json:"user_id"`
	FileName string               `bson:"file_name" json:"file_name"`
	DateTime time.Time            `bson:"date_time" json:"date_time"`
	Comments []Comment            `bson:"comments" json:"comments"`
	Likes    []primitive.ObjectID `bson:"likes" json:"likes"`
}

func (p *Photo) IsOwnedBy(userID primitive.ObjectID) bool {
	return p.UserID == userID
}

func (c *Comment) IsOwnedBy(userID primitive.ObjectID) bool {
	return c.UserID == userID
}

// CommentView is a comment with its author reference resolved into an
// inlined UserRef. User is nil when the referenced user no longer exists.
type CommentView struct {
	ID       primitive.ObjectID `json:"_id"`
	Comment  string             `json:"comment"`
	DateTime time.Time          `json:"date_time"`
	User     *UserRef           `json:"user"`
}

type PhotoView struct {
	ID       primitive.ObjectID   `json:"_id"`
	UserID   primitive.ObjectID   `json:"user_id"`
	FileName string               `json:"file_name"`
	DateTime time.Time            `json:"date_time"`
	Comments []CommentView        `json:"comments"`
	Likes    []primitive.ObjectID `json:"likes"`
}
