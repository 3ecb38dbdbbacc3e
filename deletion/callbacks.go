package deletion

import "github.com/vkngwrapper/inflight/frames"

type DestroyedCallback[H comparable] func(
	queue *Queue[H],
	kind frames.ResourceKind,
	handle H,
	userData interface{},
)

type UnhandledCallback[H comparable] func(
	queue *Queue[H],
	kind frames.ResourceKind,
	handle H,
	userData interface{},
)

// DestroyCallbackOptions are notified as records leave a Queue. Destroyed runs after the host
// engine destruction call returns. Unhandled runs instead when a record's kind has no
// destruction path, meaning the handle was dropped without being released.
type DestroyCallbackOptions[H comparable] struct {
	Destroyed DestroyedCallback[H]
	Unhandled UnhandledCallback[H]
	UserData  interface{}
}

type destroyCallbacks[H comparable] struct {
	Callbacks *DestroyCallbackOptions[H]
	Queue     *Queue[H]
}

func (c *destroyCallbacks[H]) Destroyed(kind frames.ResourceKind, handle H) {
	if c.Callbacks != nil && c.Callbacks.Destroyed != nil {
		c.Callbacks.Destroyed(c.Queue, kind, handle, c.Callbacks.UserData)
	}
}

func (c *destroyCallbacks[H]) Unhandled(kind frames.ResourceKind, handle H) {
	if c.Callbacks != nil && c.Callbacks.Unhandled != nil {
		c.Callbacks.Unhandled(c.Queue, kind, handle, c.Callbacks.UserData)
	}
}
