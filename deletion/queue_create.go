package deletion

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/inflight/frames"
	"github.com/vkngwrapper/inflight/internal/utils"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific queue behaviors to activate or deactivate
type CreateFlags int32

var queueCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	queueCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return queueCreateFlagsMapping.FlagsToString(f)
}

const (
	// QueueCreateSynchronized guards every queue method with an internal mutex. By default the queue
	// assumes it is owned by a single frame loop and does no locking at all.
	QueueCreateSynchronized CreateFlags = 1 << iota
)

func init() {
	QueueCreateSynchronized.Register("QueueCreateSynchronized")
}

const initialPendingCapacity uint32 = 64

// CreateOptions contains optional settings when creating a queue
type CreateOptions[H comparable] struct {
	// Flags indicates specific queue behaviors to activate or deactivate
	Flags CreateFlags

	// Callbacks is an optional set of callbacks that will be executed as records leave the queue.
	// It can be helpful when the consumer keeps its own accounting of live GPU resources.
	Callbacks *DestroyCallbackOptions[H]
}

// New creates a new Queue
//
// clock - The host engine frame clock. Records are destroyed once they have survived
// clock.FramesInFlight() polls.
//
// destroyer - The host engine destruction primitives. Every ResourceKind must have a path.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New[H comparable](logger *slog.Logger, clock frames.Clock, destroyer frames.Destroyer[H], options CreateOptions[H]) (*Queue[H], error) {
	if logger == nil {
		return nil, errors.New("deletion.New requires a logger")
	}
	if clock == nil {
		return nil, errors.New("deletion.New requires a frame clock")
	}
	if destroyer == nil {
		return nil, errors.New("deletion.New requires a destroyer")
	}

	table := frames.NewDestructionTable[H](destroyer)
	err := table.Validate()
	if err != nil {
		return nil, err
	}

	queue := &Queue[H]{
		mutex:   utils.OptionalMutex{UseMutex: options.Flags&QueueCreateSynchronized != 0},
		logger:  logger,
		clock:   clock,
		table:   table,
		pending: swiss.NewMap[H, int](initialPendingCapacity),
	}
	queue.callbacks = destroyCallbacks[H]{
		Callbacks: options.Callbacks,
		Queue:     queue,
	}

	return queue, nil
}
