package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SchemaInfo is the single metadata document reported by /test/info.
type SchemaInfo struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Version      string             `bson:"version" json:"version"`
	LoadDateTime time.Time          `bson:"load_date_time" json:"load_date_time"`
}
