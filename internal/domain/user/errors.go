package user

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrHRAccessRequired = errors.New("hr access required")
	ErrUserNotFound     = errors.New("user not found")
)
