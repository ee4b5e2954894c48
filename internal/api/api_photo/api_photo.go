package api_photo

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/aggregate"
	"github.com/mshariqazeem/Project-7/internal/models"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
	"github.com/mshariqazeem/Project-7/internal/store"
	"github.com/mshariqazeem/Project-7/internal/utils/utils_handler"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadField is the multipart form field the client posts the photo under.
const UploadField = "uploadedphoto"

// storageName prefixes a millisecond timestamp so two uploads of the same
// original filename do not collide on disk.
func storageName(original string, at time.Time) string {
	return fmt.Sprintf("U%d%s", at.UnixMilli(), filepath.Base(original))
}

// requireOwner reports whether the session user may mutate the resource,
// recording the 403 when not.
func requireOwner(c *gin.Context, resource models.Protected, userID primitive.ObjectID) bool {
	if !resource.IsOwnedBy(userID) {
		c.Error(api_error.NotResourceOwner)
		return false
	}
	return true
}

// Upload stores the posted binary in the content directory and creates the
// photo record with empty comments and likes. The file write and the record
// insert are not atomic; a crash in between leaves an orphaned file.
func Upload(contentDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores, userID := utils_handler.GetReqCx(c)

		file, err := c.FormFile(UploadField)
		if err != nil {
			c.Error(api_error.NoFile)
			return
		}

		now := time.Now()
		fileName := storageName(file.Filename, now)
		if err := c.SaveUploadedFile(file, filepath.Join(contentDir, fileName)); err != nil {
			c.Error(err)
			return
		}

		photo := models.Photo{
			ID:       primitive.NewObjectID(),
			UserID:   userID,
			FileName: fileName,
			DateTime: now,
			Comments: []models.Comment{},
			Likes:    []primitive.ObjectID{},
		}
		if err := stores.Photos.Insert(c.Request.Context(), &photo); err != nil {
			c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "photo uploaded successfully",
			"file_name": fileName,
			"_id":       photo.ID,
		})
	}
}

// OfUser returns the user's photos with resolved comments, the aggregation
// contract of /photosOfUser/:id.
func OfUser(c *gin.Context) {
	stores, _ := utils_handler.GetReqCx(c)

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Error(api_error.InvalidUserID)
		return
	}

	views, err := aggregate.PhotosOfUser(c.Request.Context(), stores, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.UserNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Delete removes a photo record and then its stored file. Only the owner
// may delete. The two removals are not transactional: when the file unlink
// fails the record is already gone, which we log and accept.
func Delete(contentDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores, userID := utils_handler.GetReqCx(c)

		photoID, err := primitive.ObjectIDFromHex(c.Param("photoId"))
		if err != nil {
			c.Error(api_error.InvalidPhotoID)
			return
		}

		photo, err := stores.Photos.ByID(c.Request.Context(), photoID)
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.PhotoNotFound)
			return
		}
		if err != nil {
			c.Error(err)
			return
		}

		if !requireOwner(c, &photo, userID) {
			return
		}

		if err := stores.Photos.Delete(c.Request.Context(), photoID); err != nil {
			c.Error(err)
			return
		}

		if err := os.Remove(filepath.Join(contentDir, photo.FileName)); err != nil {
			log.Printf("photo %s deleted but file %s not removed: %v",
				photoID.Hex(), photo.FileName, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
	}
}

// AddComment appends a comment authored by the session user and returns it
// with the author already resolved, like one entry of /photosOfUser.
func AddComment(c *gin.Context) {
	stores, userID := utils_handler.GetReqCx(c)

	photoID, err := primitive.ObjectIDFromHex(c.Param("photoId"))
	if err != nil {
		c.Error(api_error.InvalidPhotoID)
		return
	}

	req, err := utils_handler.GetObj[map[string]string](c)
	if err != nil || req["comment"] == "" {
		c.Error(api_error.EmptyComment)
		return
	}

	comment := models.Comment{
		ID:       primitive.NewObjectID(),
		Comment:  req["comment"],
		DateTime: time.Now(),
		UserID:   userID,
	}

	err = stores.Photos.AppendComment(c.Request.Context(), photoID, comment)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.PhotoNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	view, err := aggregate.ResolveComment(c.Request.Context(), stores.Users, comment)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type deleteCommentRequest struct {
	PhotoID   string `json:"photo_id"`
	CommentID string `json:"comment_id"`
}

// DeleteComment removes a comment by identity. Only its author may do so.
func DeleteComment(c *gin.Context) {
	stores, userID := utils_handler.GetReqCx(c)

	req, err := utils_handler.GetObj[deleteCommentRequest](c)
	if err != nil {
		c.Error(api_error.NewFromStr("missing photo_id or comment_id", http.StatusBadRequest))
		return
	}

	photoID, err := primitive.ObjectIDFromHex(req.PhotoID)
	if err != nil {
		c.Error(api_error.InvalidPhotoID)
		return
	}
	commentID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		c.Error(api_error.CommentNotFound)
		return
	}

	photo, err := stores.Photos.ByID(c.Request.Context(), photoID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.PhotoNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	var comment *models.Comment
	for i := range photo.Comments {
		if photo.Comments[i].ID == commentID {
			comment = &photo.Comments[i]
			break
		}
	}
	if comment == nil {
		c.Error(api_error.CommentNotFound)
		return
	}

	if !requireOwner(c, comment, userID) {
		return
	}

	if err := stores.Photos.RemoveComment(c.Request.Context(), photoID, commentID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

type likeRequest struct {
	PhotoID string `json:"photoId"`
}

// likeTarget binds the like/unlike body and loads the target photo. The
// wire shape also carries a userId field; the server trusts the session
// identity instead of the body.
func likeTarget(c *gin.Context) (*store.Stores, primitive.ObjectID, primitive.ObjectID, bool) {
	stores, userID := utils_handler.GetReqCx(c)

	req, err := utils_handler.GetObj[likeRequest](c)
	if err != nil {
		c.Error(api_error.InvalidPhotoID)
		return nil, primitive.NilObjectID, primitive.NilObjectID, false
	}

	photoID, err := primitive.ObjectIDFromHex(req.PhotoID)
	if err != nil {
		c.Error(api_error.InvalidPhotoID)
		return nil, primitive.NilObjectID, primitive.NilObjectID, false
	}

	return stores, photoID, userID, true
}

// Like adds the session user to the photo's like set; adding twice keeps a
// single membership.
func Like(c *gin.Context) {
	stores, photoID, userID, ok := likeTarget(c)
	if !ok {
		return
	}

	err := stores.Photos.AddLike(c.Request.Context(), photoID, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.PhotoNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "liked"})
}

// Unlike removes the session user from the like set. Removing an absent
// membership is a no-op, keeping the pair of calls idempotent.
func Unlike(c *gin.Context) {
	stores, photoID, userID, ok := likeTarget(c)
	if !ok {
		return
	}

	err := stores.Photos.RemoveLike(c.Request.Context(), photoID, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.PhotoNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unliked"})
}
