package service

import "errors"

var (
	ErrMalformedEvent = errors.New("malformed event")
	ErrDelivery       = errors.New("delivery failed")
)
