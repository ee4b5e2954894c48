// Package store holds the persistence contracts for users, photos and
// sessions. Handlers only see these interfaces; the mongo implementation
// backs production and the memory implementation backs tests.
package store

import (
	"context"
	"errors"

	"github.com/mshariqazeem/Project-7/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateLoginName = errors.New("login name already taken")
)

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	ByLoginName(ctx context.Context, loginName string) (models.User, error)
	// ByIDs resolves a batch of user ids. Ids that do not resolve are
	// silently absent from the result.
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type PhotoStore interface {
	Insert(ctx context.Context, photo *models.Photo) error
	ByID(ctx context.Context, id primitive.ObjectID) (models.Photo, error)
	// ByUser returns the user's photos in store-insertion order.
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Photo, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AppendComment(ctx context.Context, photoID primitive.ObjectID, comment models.Comment) error
	RemoveComment(ctx context.Context, photoID, commentID primitive.ObjectID) error
	// AddLike and RemoveLike keep the like set at-most-once per user.
	AddLike(ctx context.Context, photoID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, photoID, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type SessionStore interface {
	Put(ctx context.Context, session models.Session) error
	Get(ctx context.Context, token string) (models.Session, error)
	Delete(ctx context.Context, token string) error
}

type SchemaInfoStore interface {
	Get(ctx context.Context) (models.SchemaInfo, error)
	Count(ctx context.Context) (int64, error)
}

// Stores bundles every backing store so the provider middleware can hand
// handlers a single value.
type Stores struct {
	Users      UserStore
	Photos     PhotoStore
	Sessions   SessionStore
	SchemaInfo SchemaInfoStore
}
