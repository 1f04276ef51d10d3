package pubapi

import (
	"errors"
)

const (
	LinkVenues  = "venues"
	LinkArtists = "artists"
)

var (
	ErrInternalServerError = errors.New("unknown error, please contact your administrator")

	ErrInvalidId      = errors.New("provided resource ID is invalid")
	ErrInvalidPayload = errors.New("the provided payload failed validations")
	ErrNotFound       = errors.New("the requested resource was not found")
	ErrConflict       = errors.New("the resource conflicts with an existing one")
)
