package vulkan

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/inflight/frames"
	"golang.org/x/exp/slog"
)

// Destroyer releases vkngwrapper objects on behalf of a deletion queue. Handles are passed as
// `any` so that a single queue can carry every kind; each method expects the matching core1_0
// type and logs, then skips, anything else.
type Destroyer struct {
	logger              *slog.Logger
	device              core1_0.Device
	allocationCallbacks *driver.AllocationCallbacks
}

var _ frames.Destroyer[any] = &Destroyer{}

// NewDestroyer creates a Destroyer for objects created from device with the provided
// allocation callbacks, which may be nil
func NewDestroyer(logger *slog.Logger, device core1_0.Device, allocationCallbacks *driver.AllocationCallbacks) *Destroyer {
	return &Destroyer{
		logger:              logger,
		device:              device,
		allocationCallbacks: allocationCallbacks,
	}
}

func (d *Destroyer) DestroyBuffer(handle any) {
	buffer, ok := handle.(core1_0.Buffer)
	if !ok || buffer == nil {
		d.mismatch("core1_0.Buffer", handle)
		return
	}

	buffer.Destroy(d.allocationCallbacks)
}

func (d *Destroyer) DestroyImage(handle any) {
	image, ok := handle.(core1_0.Image)
	if !ok || image == nil {
		d.mismatch("core1_0.Image", handle)
		return
	}

	image.Destroy(d.allocationCallbacks)
}

func (d *Destroyer) DestroyPipeline(handle any) {
	pipeline, ok := handle.(core1_0.Pipeline)
	if !ok || pipeline == nil {
		d.mismatch("core1_0.Pipeline", handle)
		return
	}

	pipeline.Destroy(d.allocationCallbacks)
}

// DestroyDescriptorSet returns the set to its pool. The pool must have been created with
// core1_0.DescriptorPoolCreateFreeDescriptorSet.
func (d *Destroyer) DestroyDescriptorSet(handle any) {
	set, ok := handle.(core1_0.DescriptorSet)
	if !ok || set == nil {
		d.mismatch("core1_0.DescriptorSet", handle)
		return
	}

	res, err := d.device.FreeDescriptorSets([]core1_0.DescriptorSet{set})
	if err != nil {
		d.logger.Error("failed to free descriptor set",
			slog.String("result", res.String()),
			slog.Any("error", err))
	}
}

func (d *Destroyer) mismatch(expected string, handle any) {
	d.logger.Error("handle passed to the wrong destruction path, skipping",
		slog.String("expected", expected),
		slog.String("actual", fmt.Sprintf("%T", handle)))
}
