package fitlog

import "errors"

// ErrMarkerNotFound is returned when no line in the log starts with Marker.
var ErrMarkerNotFound = errors.New("result marker not found in fit log")

// ErrMalformedCoefficient is returned when a coefficient line does not have
// the expected "name = value ..." shape.
var ErrMalformedCoefficient = errors.New("malformed coefficient line")
