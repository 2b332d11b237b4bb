package schema

import "errors"

var (
	ErrInvalidTask   = errors.New("invalid task draft")
	ErrInvalidFilter = errors.New("invalid filter criteria")
	ErrCoerce        = errors.New("cannot coerce field")
)
