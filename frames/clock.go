package frames

import (
	cerrors "github.com/cockroachdb/errors"
)

//go:generate mockgen -source clock.go -destination mocks/clock.go -package mocks

// Clock is the host engine's frame clock. Both methods are expected to be cheap and non-blocking.
type Clock interface {
	// FramesInFlight returns the number of frames the host engine allows to be submitted to the
	// GPU but not yet completed. This value must not change over the lifetime of the consumers
	// built on top of it.
	FramesInFlight() int
	// FrameIndex returns the slot, in [0, FramesInFlight()), that the CPU is preparing this frame
	FrameIndex() int
}

// Counter is a Clock owned by the caller: the frame index only moves when Advance is called.
// Hosts that do not already track a frame index can drive their frame loop with it.
type Counter struct {
	framesInFlight int
	frameIndex     int
	frame          uint64
}

var _ Clock = &Counter{}

// NewCounter creates a Counter at frame 0 with the provided pipelining depth
func NewCounter(framesInFlight int) (*Counter, error) {
	if framesInFlight < 1 {
		return nil, cerrors.Wrapf(ErrInvalidFramesInFlight, "framesInFlight is %d", framesInFlight)
	}

	return &Counter{framesInFlight: framesInFlight}, nil
}

func (c *Counter) FramesInFlight() int {
	return c.framesInFlight
}

func (c *Counter) FrameIndex() int {
	return c.frameIndex
}

// Frame returns the number of times Advance has been called
func (c *Counter) Frame() uint64 {
	return c.frame
}

// Advance moves to the next frame, wrapping the frame index back to 0 after the last slot
func (c *Counter) Advance() {
	c.frame++
	c.frameIndex = int(c.frame % uint64(c.framesInFlight))
}
