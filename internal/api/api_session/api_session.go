package api_session

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mshariqazeem/Project-7/internal/middleware"
	"github.com/mshariqazeem/Project-7/internal/models"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
	"github.com/mshariqazeem/Project-7/internal/store"
	"github.com/mshariqazeem/Project-7/internal/utils/utils_handler"
)

type loginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// Login checks the supplied credentials by exact equality against the
// stored ones and opens a server-held session on success. The credential
// comparison is deliberately plain equality; see the project notes on the
// inherited password handling.
func Login(c *gin.Context) {
	stores := utils_handler.GetStores(c)

	req, err := utils_handler.GetObj[loginRequest](c)
	if err != nil || req.LoginName == "" || req.Password == "" {
		c.Error(api_error.NewFromStr("missing login_name or password", http.StatusBadRequest))
		return
	}

	user, err := stores.Users.ByLoginName(c.Request.Context(), req.LoginName)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.InvalidCredentials)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	if user.Password != req.Password {
		c.Error(api_error.InvalidCredentials)
		return
	}

	session := models.Session{
		Token:        uuid.New().String(),
		UserID:       user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		CreationDate: time.Now(),
	}
	if err := stores.Sessions.Put(c.Request.Context(), session); err != nil {
		c.Error(err)
		return
	}

	log.Printf("user %s logged in", user.LoginName)
	c.SetCookie(middleware.SessionCookie, session.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, session.User())
}

// Logout closes the current session. Fails with 400 when nobody is
// logged in.
func Logout(c *gin.Context) {
	stores := utils_handler.GetStores(c)

	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.Error(api_error.NoActiveSession)
		return
	}

	if err := stores.Sessions.Delete(c.Request.Context(), token); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Error(api_error.NoActiveSession)
			return
		}
		c.Error(err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
