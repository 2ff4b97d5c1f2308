package fleet

import "errors"

var (
	ErrCarNotFound      = errors.New("car not found")
	ErrLocationNotFound = errors.New("location not found")
)
