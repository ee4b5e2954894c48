package api_error

import (
	"errors"
	"net/http"
)

var (
	Unauthenticated    = NewFromErr(errors.New("unauthorized, please login"), http.StatusUnauthorized)
	InvalidCredentials = NewFromErr(errors.New("invalid login name or password"), http.StatusBadRequest)
	NoActiveSession    = NewFromErr(errors.New("no user is currently logged in"), http.StatusBadRequest)
	MissingUserFields  = NewFromErr(errors.New("missing one or more required fields: login_name, password, first_name, last_name"), http.StatusBadRequest)
	DuplicateLoginName = NewFromErr(errors.New("login name already exists"), http.StatusBadRequest)
	UserNotFound       = NewFromErr(errors.New("user not found"), http.StatusBadRequest)
	InvalidUserID      = NewFromErr(errors.New("invalid user id format"), http.StatusBadRequest)
	InvalidPhotoID     = NewFromErr(errors.New("invalid photo id format"), http.StatusBadRequest)
	PhotoNotFound      = NewFromErr(errors.New("photo not found"), http.StatusNotFound)
	CommentNotFound    = NewFromErr(errors.New("comment not found"), http.StatusNotFound)
	EmptyComment       = NewFromErr(errors.New("comment text is required"), http.StatusBadRequest)
	NoFile             = NewFromErr(errors.New("no file"), http.StatusBadRequest)
	NotResourceOwner   = NewFromErr(errors.New("you cannot modify this resource"), http.StatusForbidden)
)
