package frames

import "github.com/pkg/errors"

// ErrInvalidFramesInFlight is returned when a frame clock reports, or is created with, fewer than
// one frame in flight
var ErrInvalidFramesInFlight error = errors.New("frames in flight must be at least 1")

// ErrMissingDestructionPath is returned from DestructionTable.Validate when a known ResourceKind
// has no destruction path
var ErrMissingDestructionPath error = errors.New("resource kind has no destruction path")
