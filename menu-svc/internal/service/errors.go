package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrRenderFailed  = errors.New("qr render failed")
	ErrUploadFailed  = errors.New("upload failed")
	ErrPersistFailed = errors.New("persist failed")
	ErrConflict      = errors.New("already exists")
	ErrInactive      = errors.New("restaurant is not active")
	ErrUnavailable   = errors.New("service unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
)
