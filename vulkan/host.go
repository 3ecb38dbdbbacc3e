package vulkan

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/inflight/deletion"
	"github.com/vkngwrapper/inflight/frames"
	"golang.org/x/exp/slog"
)

// Host is a frame clock and destroyer for a vkngwrapper device. The frame loop calls Advance once
// per presented frame, after submitting that frame's work.
type Host struct {
	*frames.Counter
	*Destroyer
}

var _ frames.Clock = &Host{}
var _ frames.Destroyer[any] = &Host{}

// NewHost creates a Host at frame 0
//
// device - The Device every destroyed object was created from
//
// allocationCallbacks - The callbacks the objects were created with, may be nil
//
// framesInFlight - The number of frames the renderer lets the GPU fall behind the CPU
func NewHost(logger *slog.Logger, device core1_0.Device, allocationCallbacks *driver.AllocationCallbacks, framesInFlight int) (*Host, error) {
	counter, err := frames.NewCounter(framesInFlight)
	if err != nil {
		return nil, err
	}

	return &Host{
		Counter:   counter,
		Destroyer: NewDestroyer(logger, device, allocationCallbacks),
	}, nil
}

// NewQueue creates a deletion queue that ages records by this host's frames and destroys them
// through this host's device
func (h *Host) NewQueue(logger *slog.Logger, options deletion.CreateOptions[any]) (*deletion.Queue[any], error) {
	return deletion.New[any](logger, h, h, options)
}
