package ring

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/inflight/frames"
)

// Flags tracks, per frame slot, whether the slot's resources must be rebuilt. When a resource
// shared by every frame is replaced, MarkAll flags each slot, and each frame rebuilds its own slot
// the next time it comes around, leaving slots still in flight untouched.
type Flags struct {
	clock frames.Clock
	bits  []bool
}

func NewFlags(clock frames.Clock) (*Flags, error) {
	if clock == nil {
		return nil, cerrors.New("ring.NewFlags requires a frame clock")
	}

	framesInFlight := clock.FramesInFlight()
	if framesInFlight < 1 {
		return nil, cerrors.Wrapf(frames.ErrInvalidFramesInFlight, "clock reported %d", framesInFlight)
	}

	return &Flags{
		clock: clock,
		bits:  make([]bool, framesInFlight),
	}, nil
}

func (f *Flags) MarkAll() {
	for i := range f.bits {
		f.bits[i] = true
	}
}

// NeedsUpdate reports whether the current frame's slot is flagged
func (f *Flags) NeedsUpdate() bool {
	return f.bits[f.clock.FrameIndex()]
}

// Clear unflags the current frame's slot
func (f *Flags) Clear() {
	f.bits[f.clock.FrameIndex()] = false
}
