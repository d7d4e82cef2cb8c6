package tire

import "errors"

var (
	ErrInvalidTireID = errors.New("invalid tire id")

	ErrTireNotFound = errors.New("tire not found")
	ErrConflict     = errors.New("tire with the same brand, series and size already exists")
)
