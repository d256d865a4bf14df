package member

import "errors"

var (
	ErrNameRequired          = errors.New("name required")
	ErrEmailRequired         = errors.New("email required")
	ErrPasswordRequired      = errors.New("password required")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrWeakPassword          = errors.New("weak password")
	ErrInvalidMembershipTier = errors.New("invalid membership tier")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrSubmissionInFlight    = errors.New("registration already in progress")
	ErrProfileWriteFailed    = errors.New("profile write failed")
)

// UserMessage maps a registration error to the message shown in the dialog.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNameRequired):
		return "Name is required."
	case errors.Is(err, ErrEmailRequired):
		return "Email is required."
	case errors.Is(err, ErrPasswordRequired):
		return "Password is required."
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email format."
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters."
	case errors.Is(err, ErrInvalidMembershipTier):
		return "Unknown membership tier."
	case errors.Is(err, ErrEmailAlreadyInUse):
		return "Email already in use."
	case errors.Is(err, ErrSubmissionInFlight):
		return "A registration for this email is already in progress."
	case errors.Is(err, ErrProfileWriteFailed):
		return "Registration failed while saving your profile. Please try again."
	default:
		return err.Error()
	}
}
