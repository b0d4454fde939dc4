package router

import "errors"

var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidRoute  = errors.New("invalid route")
)
