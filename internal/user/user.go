package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user is not found.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when another user already holds the email.
var ErrDuplicateEmail = errors.New("email already exists")

// User is the account record. Accounts are active on creation and carry no
// credentials; there is no authentication layer in front of them.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Active      bool      `json:"active"`
	CreatedDate time.Time `json:"created_date"`
}
