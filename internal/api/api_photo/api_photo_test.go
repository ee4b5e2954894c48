package api_photo

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mshariqazeem/Project-7/internal/middleware"
	"github.com/mshariqazeem/Project-7/internal/models"
	"github.com/mshariqazeem/Project-7/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter(stores *store.Stores, contentDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.StoreProvider(stores))
	auth := middleware.Auth()
	r.GET("/photosOfUser/:id", auth, OfUser)
	r.POST("/photos/new", auth, Upload(contentDir))
	r.POST("/commentsOfPhoto/:photoId", auth, AddComment)
	r.DELETE("/photo/delete/:photoId", auth, Delete(contentDir))
	r.DELETE("/comment/delete/", auth, DeleteComment)
	r.POST("/addLike/", auth, Like)
	r.POST("/removeLike", auth, Unlike)
	return r
}

func seedUser(t *testing.T, stores *store.Stores, loginName, firstName, lastName string) models.User {
	t.Helper()
	user := models.User{
		ID:        primitive.NewObjectID(),
		LoginName: loginName,
		Password:  "x",
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(t, stores.Users.Insert(context.Background(), &user))
	return user
}

func loginAs(t *testing.T, stores *store.Stores, user models.User) *http.Cookie {
	t.Helper()
	token := uuid.New().String()
	require.NoError(t, stores.Sessions.Put(context.Background(), models.Session{
		Token:        token,
		UserID:       user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CreationDate: time.Now(),
	}))
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uploadPhoto(t *testing.T, r *gin.Engine, original string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(UploadField, original)
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/photos/new", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func photosOf(t *testing.T, r *gin.Engine, userID primitive.ObjectID, cookie *http.Cookie) []models.PhotoView {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/photosOfUser/"+userID.Hex(), "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var views []models.PhotoView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	return views
}

func TestUpload(t *testing.T) {
	stores := store.NewMemory()
	contentDir := t.TempDir()
	r := newTestRouter(stores, contentDir)
	bob := seedUser(t, stores, "bob", "Bob", "Lee")
	cookie := loginAs(t, stores, bob)

	t.Run("RequiresSession", func(t *testing.T) {
		w := uploadPhoto(t, r, "cat.jpg", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("NoFile", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/photos/new", "", cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		w := uploadPhoto(t, r, "cat.jpg", cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			FileName string `json:"file_name"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, strings.HasPrefix(resp.FileName, "U"))
		assert.True(t, strings.HasSuffix(resp.FileName, "cat.jpg"))

		// binary landed in the content directory
		data, err := os.ReadFile(filepath.Join(contentDir, resp.FileName))
		require.NoError(t, err)
		assert.Equal(t, "not really a jpeg", string(data))

		views := photosOf(t, r, bob.ID, cookie)
		require.Len(t, views, 1)
		assert.Equal(t, resp.FileName, views[0].FileName)
		assert.Empty(t, views[0].Comments)
		assert.Empty(t, views[0].Likes)
	})
}

func TestOfUser(t *testing.T) {
	stores := store.NewMemory()
	r := newTestRouter(stores, t.TempDir())
	bob := seedUser(t, stores, "bob", "Bob", "Lee")
	cookie := loginAs(t, stores, bob)

	t.Run("MalformedID", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/photosOfUser/junk", "", cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/photosOfUser/"+primitive.NewObjectID().Hex(), "", cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NoPhotosIsEmptyArray", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/photosOfUser/"+bob.ID.Hex(), "", cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}

func TestComments(t *testing.T) {
	stores := store.NewMemory()
	r := newTestRouter(stores, t.TempDir())
	bob := seedUser(t, stores, "bob", "Bob", "Lee")
	alice := seedUser(t, stores, "alice", "Alice", "Ng")
	bobCookie := loginAs(t, stores, bob)
	aliceCookie := loginAs(t, stores, alice)

	photo := models.Photo{UserID: bob.ID, FileName: "U1cat.jpg", DateTime: time.Now()}
	require.NoError(t, stores.Photos.Insert(context.Background(), &photo))

	t.Run("PhotoNotFound", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/commentsOfPhoto/"+primitive.NewObjectID().Hex(),
			`{"comment":"nice!"}`, bobCookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("EmptyComment", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/commentsOfPhoto/"+photo.ID.Hex(), `{"comment":""}`, bobCookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var commentID primitive.ObjectID

	t.Run("AddResolvesAuthor", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/commentsOfPhoto/"+photo.ID.Hex(), `{"comment":"nice!"}`, bobCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var view models.CommentView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "nice!", view.Comment)
		require.NotNil(t, view.User)
		assert.Equal(t, "Bob", view.User.FirstName)
		commentID = view.ID

		views := photosOf(t, r, bob.ID, bobCookie)
		require.Len(t, views, 1)
		require.Len(t, views[0].Comments, 1)
		assert.Equal(t, "nice!", views[0].Comments[0].Comment)
	})

	t.Run("DeleteByNonAuthorForbidden", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"photo_id":   photo.ID.Hex(),
			"comment_id": commentID.Hex(),
		})
		w := doJSON(r, http.MethodDelete, "/comment/delete/", string(body), aliceCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		// comment list unchanged
		views := photosOf(t, r, bob.ID, bobCookie)
		require.Len(t, views[0].Comments, 1)
	})

	t.Run("DeleteByAuthor", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"photo_id":   photo.ID.Hex(),
			"comment_id": commentID.Hex(),
		})
		w := doJSON(r, http.MethodDelete, "/comment/delete/", string(body), bobCookie)
		assert.Equal(t, http.StatusOK, w.Code)

		views := photosOf(t, r, bob.ID, bobCookie)
		assert.Empty(t, views[0].Comments)
	})
}

func TestLikes(t *testing.T) {
	stores := store.NewMemory()
	r := newTestRouter(stores, t.TempDir())
	bob := seedUser(t, stores, "bob", "Bob", "Lee")
	alice := seedUser(t, stores, "alice", "Alice", "Ng")
	aliceCookie := loginAs(t, stores, alice)
	bobCookie := loginAs(t, stores, bob)

	photo := models.Photo{UserID: bob.ID, FileName: "U1cat.jpg", DateTime: time.Now()}
	require.NoError(t, stores.Photos.Insert(context.Background(), &photo))
	body := `{"photoId":"` + photo.ID.Hex() + `"}`

	t.Run("LikeAddsOnce", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/addLike/", body, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(r, http.MethodPost, "/addLike/", body, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		views := photosOf(t, r, bob.ID, bobCookie)
		require.Len(t, views[0].Likes, 1)
		assert.Equal(t, alice.ID, views[0].Likes[0])
	})

	t.Run("UnlikeRestoresOriginalState", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/removeLike", body, aliceCookie)
		require.Equal(t, http.StatusOK, w.Code)

		views := photosOf(t, r, bob.ID, bobCookie)
		assert.Empty(t, views[0].Likes)
	})

	t.Run("UnknownPhoto", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/addLike/",
			`{"photoId":"`+primitive.NewObjectID().Hex()+`"}`, aliceCookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePhoto(t *testing.T) {
	stores := store.NewMemory()
	contentDir := t.TempDir()
	r := newTestRouter(stores, contentDir)
	bob := seedUser(t, stores, "bob", "Bob", "Lee")
	alice := seedUser(t, stores, "alice", "Alice", "Ng")
	bobCookie := loginAs(t, stores, bob)
	aliceCookie := loginAs(t, stores, alice)

	w := uploadPhoto(t, r, "cat.jpg", bobCookie)
	require.Equal(t, http.StatusOK, w.Code)
	views := photosOf(t, r, bob.ID, bobCookie)
	require.Len(t, views, 1)
	photoID := views[0].ID
	storedFile := filepath.Join(contentDir, views[0].FileName)

	t.Run("NonOwnerForbidden", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/photo/delete/"+photoID.Hex(), "", aliceCookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("OwnerDeletesRecordAndFile", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/photo/delete/"+photoID.Hex(), "", bobCookie)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Empty(t, photosOf(t, r, bob.ID, bobCookie))
		_, err := os.Stat(storedFile)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("AlreadyGone", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/photo/delete/"+photoID.Hex(), "", bobCookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
