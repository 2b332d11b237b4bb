package remote

import "errors"

var (
	// ErrNoCredential means no hosted model is configured.
	ErrNoCredential = errors.New("remote: no model credential configured")

	// ErrEmptyResponse means the model replied with nothing usable.
	ErrEmptyResponse = errors.New("remote: empty response")
)
