package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("you do not have access to this project")
	ErrInvalidStatus   = errors.New("invalid project status")
)
