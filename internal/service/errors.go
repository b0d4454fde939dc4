package service

import "errors"

var (
	ErrEmptyContent = errors.New("content is empty")

	ErrNoAPIClient = errors.New("api client is not configured")
)
