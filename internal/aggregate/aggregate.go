// Package aggregate assembles the /photosOfUser response: the user's photos
// with every comment's author reference replaced by an inlined user
// projection, so the client renders without further lookups.
package aggregate

import (
	"context"

	"github.com/mshariqazeem/Project-7/internal/models"
	"github.com/mshariqazeem/Project-7/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotosOfUser returns store.ErrNotFound when no such user exists. Photos
// keep store-insertion order, comments keep append order. A comment whose
// author no longer resolves gets a nil User instead of failing the request.
func PhotosOfUser(ctx context.Context, s *store.Stores, userID primitive.ObjectID) ([]models.PhotoView, error) {
	if _, err := s.Users.ByID(ctx, userID); err != nil {
		return nil, err
	}

	photos, err := s.Photos.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	authors, err := resolveAuthors(ctx, s.Users, photos)
	if err != nil {
		return nil, err
	}

	views := make([]models.PhotoView, 0, len(photos))
	for i := range photos {
		photo := &photos[i]

		comments := make([]models.CommentView, 0, len(photo.Comments))
		for _, comment := range photo.Comments {
			view := models.CommentView{
				ID:       comment.ID,
				Comment:  comment.Comment,
				DateTime: comment.DateTime,
			}
			if ref, ok := authors[comment.UserID]; ok {
				refCopy := ref
				view.User = &refCopy
			}
			comments = append(comments, view)
		}

		likes := photo.Likes
		if likes == nil {
			likes = []primitive.ObjectID{}
		}

		views = append(views, models.PhotoView{
			ID:       photo.ID,
			UserID:   photo.UserID,
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			Comments: comments,
			Likes:    likes,
		})
	}
	return views, nil
}

// resolveAuthors batches the author lookup across all comments of all
// photos, one store query instead of one per comment.
func resolveAuthors(ctx context.Context, users store.UserStore, photos []models.Photo) (map[primitive.ObjectID]models.UserRef, error) {
	ids := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for i := range photos {
		for _, comment := range photos[i].Comments {
			if !seen[comment.UserID] {
				seen[comment.UserID] = true
				ids = append(ids, comment.UserID)
			}
		}
	}

	refs := make(map[primitive.ObjectID]models.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	resolved, err := users.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range resolved {
		refs[resolved[i].ID] = resolved[i].Ref()
	}
	return refs, nil
}

// ResolveComment inlines the author of a single freshly created comment,
// mirroring the per-photo resolution for the comment creation response.
func ResolveComment(ctx context.Context, users store.UserStore, comment models.Comment) (models.CommentView, error) {
	view := models.CommentView{
		ID:       comment.ID,
		Comment:  comment.Comment,
		DateTime: comment.DateTime,
	}

	author, err := users.ByID(ctx, comment.UserID)
	switch err {
	case nil:
		ref := author.Ref()
		view.User = &ref
	case store.ErrNotFound:
		// dangling reference, leave User nil
	default:
		return models.CommentView{}, err
	}
	return view, nil
}
