package domain

import "errors"

var ErrMissingCredentials = errors.New("username and password are required")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")

// User models a registered account. The password is stored and compared
// verbatim; it never appears in a JSON response.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Session maps an opaque login token to the user that holds it. A user may
// hold any number of concurrent sessions.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}
