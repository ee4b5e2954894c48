package store

import (
	"context"
	"errors"

	"github.com/mshariqazeem/Project-7/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongo returns stores persisted in the given database, one collection
// per record kind. Comments and likes live embedded in the photo document,
// so append and membership updates are single document writes.
func NewMongo(db *mongo.Database) *Stores {
	return &Stores{
		Users:      &mongoUserStore{coll: db.Collection("users")},
		Photos:     &mongoPhotoStore{coll: db.Collection("photos")},
		Sessions:   &mongoSessionStore{coll: db.Collection("sessions")},
		SchemaInfo: &mongoSchemaInfoStore{coll: db.Collection("schemainfo")},
	}
}

type mongoUserStore struct {
	coll *mongo.Collection
}

func (s *mongoUserStore) Insert(ctx context.Context, user *models.User) error {
	// Uniqueness is checked at creation time, mirroring the find-then-insert
	// shape of the reference schema. A unique index on login_name would close
	// the remaining race.
	err := s.coll.FindOne(ctx, bson.M{"login_name": user.LoginName}).Err()
	if err == nil {
		return ErrDuplicateLoginName
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err = s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateLoginName
	}
	return err
}

func (s *mongoUserStore) ByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *mongoUserStore) ByLoginName(ctx context.Context, loginName string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"login_name": loginName}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *mongoUserStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(ids))
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

type mongoPhotoStore struct {
	coll *mongo.Collection
}

func (s *mongoPhotoStore) Insert(ctx context.Context, photo *models.Photo) error {
	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}
	if photo.Comments == nil {
		photo.Comments = []models.Comment{}
	}
	if photo.Likes == nil {
		photo.Likes = []primitive.ObjectID{}
	}

	_, err := s.coll.InsertOne(ctx, photo)
	return err
}

func (s *mongoPhotoStore) ByID(ctx context.Context, id primitive.ObjectID) (models.Photo, error) {
	var photo models.Photo
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Photo{}, ErrNotFound
	}
	return photo, err
}

func (s *mongoPhotoStore) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Photo, error) {
	// Natural order is insertion order, which is the display order.
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	photos := make([]models.Photo, 0)
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *mongoPhotoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPhotoStore) AppendComment(ctx context.Context, photoID primitive.ObjectID, comment models.Comment) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": photoID},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPhotoStore) RemoveComment(ctx context.Context, photoID, commentID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": photoID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPhotoStore) AddLike(ctx context.Context, photoID, userID primitive.ObjectID) error {
	// $addToSet keeps the membership at most once even under concurrent adds.
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": photoID},
		bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPhotoStore) RemoveLike(ctx context.Context, photoID, userID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": photoID},
		bson.M{"$pull": bson.M{"likes": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoPhotoStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

type mongoSessionStore struct {
	coll *mongo.Collection
}

func (s *mongoSessionStore) Put(ctx context.Context, session models.Session) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": session.Token},
		session,
		options.Replace().SetUpsert(true))
	return err
}

func (s *mongoSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	var session models.Session
	err := s.coll.FindOne(ctx, bson.M{"_id": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Session{}, ErrNotFound
	}
	return session, err
}

func (s *mongoSessionStore) Delete(ctx context.Context, token string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": token})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoSchemaInfoStore struct {
	coll *mongo.Collection
}

func (s *mongoSchemaInfoStore) Get(ctx context.Context) (models.SchemaInfo, error) {
	var info models.SchemaInfo
	err := s.coll.FindOne(ctx, bson.M{}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SchemaInfo{}, ErrNotFound
	}
	return info, err
}

func (s *mongoSchemaInfoStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}
