package authz

import "errors"

var (
	ErrAccessDenied = errors.New("you are not allowed to access this employee's records")
	ErrNoActor      = errors.New("no authenticated actor in request context")
)
