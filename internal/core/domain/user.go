package domain

import "errors"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var (
	ErrUnauthorized = errors.New("not logged in")
	ErrForbidden    = errors.New("access forbidden")
)

// User is the identity of the current session. A session holds one or none.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate holds the fields a user may change on their profile. Nil
// fields are left as they are.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// ValidationError reports missing or malformed user input. Its message is
// meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with msg.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
