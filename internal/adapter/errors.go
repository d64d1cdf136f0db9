package adapter

import "errors"

var (
	ErrEmptyToken          = errors.New("empty external token")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("external token rejected")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited by identity provider")
	ErrInternalServerError = errors.New("identity provider internal error")
	ErrBadGateway          = errors.New("identity provider unavailable")
	ErrIncompleteIdentity  = errors.New("identity provider returned no user id")
)
