package web

import "errors"

var (
	ErrViewNotFound = errors.New("view not found")
	ErrUnknownRoute = errors.New("unknown route")
)
