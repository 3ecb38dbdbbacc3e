// Package ring holds one instance of a resource per frame in flight, so the CPU can write the
// instance for the frame it is preparing while the GPU still reads the instances of frames it
// has not finished.
package ring

import (
	"iter"

	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/inflight/frames"
)

// Retirer accepts handles that must outlive the frames still in flight. *deletion.Queue
// satisfies it.
type Retirer[H any] interface {
	Enqueue(kind frames.ResourceKind, handle H)
}

// Ring holds exactly FramesInFlight slots. A slot holding the zero value of H has not been created.
// Storing into a slot never destroys the handle it held.
//
// IsCreated, Replace and RetireAll compare slots against the zero value, so when H is an interface
// type every stored handle must have a comparable dynamic type.
type Ring[H comparable] struct {
	clock frames.Clock
	slots []H
}

// New creates a ring with one empty slot per frame in flight. The slot count is read from the
// clock once and never changes.
func New[H comparable](clock frames.Clock) (*Ring[H], error) {
	if clock == nil {
		return nil, cerrors.New("ring.New requires a frame clock")
	}

	framesInFlight := clock.FramesInFlight()
	if framesInFlight < 1 {
		return nil, cerrors.Wrapf(frames.ErrInvalidFramesInFlight, "clock reported %d", framesInFlight)
	}

	return &Ring[H]{
		clock: clock,
		slots: make([]H, framesInFlight),
	}, nil
}

// Len returns the number of slots
func (r *Ring[H]) Len() int {
	return len(r.slots)
}

// At returns the slot at index. Indices outside [0, Len()) panic.
func (r *Ring[H]) At(index int) *H {
	return &r.slots[index]
}

// Current returns the slot for the frame the clock is currently on. Read it once per frame and
// reuse the result so every read and write in that frame lands on the same slot.
func (r *Ring[H]) Current() *H {
	return &r.slots[r.clock.FrameIndex()]
}

// IsCreated returns false while the slot at index still holds the zero value
func (r *Ring[H]) IsCreated(index int) bool {
	var zero H
	return r.slots[index] != zero
}

// All iterates over every slot in index order
func (r *Ring[H]) All() iter.Seq2[int, *H] {
	return func(yield func(int, *H) bool) {
		for i := range r.slots {
			if !yield(i, &r.slots[i]) {
				return
			}
		}
	}
}

// Replace stores handle in the slot at index. If the slot already held a created handle, that
// handle is enqueued with retirer first.
func (r *Ring[H]) Replace(index int, handle H, retirer Retirer[H], kind frames.ResourceKind) {
	if r.IsCreated(index) {
		retirer.Enqueue(kind, r.slots[index])
	}

	r.slots[index] = handle
}

// RetireAll enqueues every created slot with retirer and resets all slots to not created
func (r *Ring[H]) RetireAll(retirer Retirer[H], kind frames.ResourceKind) {
	var zero H
	for i := range r.slots {
		if r.slots[i] != zero {
			retirer.Enqueue(kind, r.slots[i])
		}
		r.slots[i] = zero
	}
}
