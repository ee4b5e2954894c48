package api_user

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mshariqazeem/Project-7/internal/models"
	"github.com/mshariqazeem/Project-7/internal/models/api_error"
	"github.com/mshariqazeem/Project-7/internal/store"
	"github.com/mshariqazeem/Project-7/internal/utils/utils_handler"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register creates an account. It does not authenticate: the client still
// goes through /admin/login afterwards.
func Register(c *gin.Context) {
	stores := utils_handler.GetStores(c)

	var newUser models.User
	if err := c.ShouldBindJSON(&newUser); err != nil {
		c.Error(api_error.MissingUserFields)
		return
	}

	newUser.ID = primitive.NewObjectID()

	err := stores.Users.Insert(c.Request.Context(), &newUser)
	if errors.Is(err, store.ErrDuplicateLoginName) {
		c.Error(api_error.DuplicateLoginName)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	log.Println("new user registered with id:", newUser.ID.Hex())
	c.JSON(http.StatusOK, gin.H{
		"login_name": newUser.LoginName,
		"_id":        newUser.ID,
	})
}

// List returns every account projected to {_id, first_name, last_name}.
func List(c *gin.Context) {
	stores, _ := utils_handler.GetReqCx(c)

	users, err := stores.Users.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	refs := make([]models.UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, users[i].Ref())
	}
	c.JSON(http.StatusOK, refs)
}

// Detail returns the profile fields of one user, never the credential.
func Detail(c *gin.Context) {
	stores, _ := utils_handler.GetReqCx(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Error(api_error.InvalidUserID)
		return
	}

	user, err := stores.Users.ByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Error(api_error.UserNotFound)
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user.Detail())
}
