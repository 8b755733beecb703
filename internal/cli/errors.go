package cli

import "errors"

var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrPropertyNotFound    = errors.New("property not found")
)
