package routes

import "errors"

var (
	ErrInvalidEntry  = errors.New("invalid route entry")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrNoController  = errors.New("navigation controller required")
	ErrNoTable       = errors.New("route table required")
	ErrFinalized     = errors.New("navigation controller already finalized")
)
