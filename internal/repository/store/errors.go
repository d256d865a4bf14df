package store

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrVideoNotFound        = errors.New("video not found")
)
