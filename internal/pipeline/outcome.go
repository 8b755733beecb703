package pipeline

import "github.com/MKhiriev/go-track/models"

// Status is the result of processing one configuration source.
type Status int

const (
	// StatusLoaded means the source contributed properties to the view.
	StatusLoaded Status = iota
	// StatusUnavailable means the source could not be located or read.
	StatusUnavailable
	// StatusEmpty means the source held no properties, either as read or
	// after environment filtering.
	StatusEmpty
	// StatusFailed means reading the source failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusUnavailable:
		return "unavailable"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to a single source during resolution.
type Outcome struct {
	// Source is the source name.
	Source string
	// Status tells whether and why the source was merged or skipped.
	Status Status
	// Set is the property set that was merged, or the empty set that was
	// skipped. Nil for unavailable and failed sources.
	Set *models.PropertySet
	// Err is the load error of a failed source.
	Err error
}
