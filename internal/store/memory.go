package store

import (
	"context"
	"sync"
	"time"

	"github.com/mshariqazeem/Project-7/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemory returns stores backed by in-process maps and slices. Slices keep
// insertion order, matching the ordering contract of the mongo backing.
func NewMemory() *Stores {
	return &Stores{
		Users:    &memoryUserStore{},
		Photos:   &memoryPhotoStore{},
		Sessions: &memorySessionStore{sessions: make(map[string]models.Session)},
		SchemaInfo: &memorySchemaInfoStore{info: models.SchemaInfo{
			ID:           primitive.NewObjectID(),
			Version:      "1.0",
			LoadDateTime: time.Now(),
		}},
	}
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func (s *memoryUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].LoginName == user.LoginName {
			return ErrDuplicateLoginName
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUserStore) ByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *memoryUserStore) ByLoginName(_ context.Context, loginName string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].LoginName == loginName {
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *memoryUserStore) ByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	found := make([]models.User, 0, len(ids))
	for i := range s.users {
		if wanted[s.users[i].ID] {
			found = append(found, s.users[i])
		}
	}
	return found, nil
}

func (s *memoryUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *memoryUserStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

type memoryPhotoStore struct {
	mu     sync.RWMutex
	photos []models.Photo
}

// copyPhoto detaches the embedded slices so callers cannot alias store state.
func copyPhoto(p *models.Photo) models.Photo {
	out := *p
	out.Comments = make([]models.Comment, len(p.Comments))
	copy(out.Comments, p.Comments)
	out.Likes = make([]primitive.ObjectID, len(p.Likes))
	copy(out.Likes, p.Likes)
	return out
}

func (s *memoryPhotoStore) locate(id primitive.ObjectID) int {
	for i := range s.photos {
		if s.photos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *memoryPhotoStore) Insert(_ context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}

	s.photos = append(s.photos, copyPhoto(photo))
	return nil
}

func (s *memoryPhotoStore) ByID(_ context.Context, id primitive.ObjectID) (models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.locate(id)
	if i < 0 {
		return models.Photo{}, ErrNotFound
	}
	return copyPhoto(&s.photos[i]), nil
}

func (s *memoryPhotoStore) ByUser(_ context.Context, userID primitive.ObjectID) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Photo, 0)
	for i := range s.photos {
		if s.photos[i].UserID == userID {
			out = append(out, copyPhoto(&s.photos[i]))
		}
	}
	return out, nil
}

func (s *memoryPhotoStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.locate(id)
	if i < 0 {
		return ErrNotFound
	}
	s.photos = append(s.photos[:i], s.photos[i+1:]...)
	return nil
}

func (s *memoryPhotoStore) AppendComment(_ context.Context, photoID primitive.ObjectID, comment models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.locate(photoID)
	if i < 0 {
		return ErrNotFound
	}
	s.photos[i].Comments = append(s.photos[i].Comments, comment)
	return nil
}

func (s *memoryPhotoStore) RemoveComment(_ context.Context, photoID, commentID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.locate(photoID)
	if i < 0 {
		return ErrNotFound
	}

	comments := s.photos[i].Comments
	for j := range comments {
		if comments[j].ID == commentID {
			s.photos[i].Comments = append(comments[:j], comments[j+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryPhotoStore) AddLike(_ context.Context, photoID, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.locate(photoID)
	if i < 0 {
		return ErrNotFound
	}

	for _, liker := range s.photos[i].Likes {
		if liker == userID {
			return nil
		}
	}
	s.photos[i].Likes = append(s.photos[i].Likes, userID)
	return nil
}

func (s *memoryPhotoStore) RemoveLike(_ context.Context, photoID, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.locate(photoID)
	if i < 0 {
		return ErrNotFound
	}

	likes := s.photos[i].Likes
	for j, liker := range likes {
		if liker == userID {
			s.photos[i].Likes = append(likes[:j], likes[j+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryPhotoStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.photos)), nil
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func (s *memorySessionStore) Put(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}

type memorySchemaInfoStore struct {
	info models.SchemaInfo
}

func (s *memorySchemaInfoStore) Get(_ context.Context) (models.SchemaInfo, error) {
	return s.info, nil
}

func (s *memorySchemaInfoStore) Count(_ context.Context) (int64, error) {
	return 1, nil
}
