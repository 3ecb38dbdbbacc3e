package ring_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/inflight/deletion"
	"github.com/vkngwrapper/inflight/frames"
	"github.com/vkngwrapper/inflight/frames/mocks"
	"github.com/vkngwrapper/inflight/ring"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

type retired struct {
	Kind   frames.ResourceKind
	Handle string
}

type fakeRetirer struct {
	retired []retired
}

func (r *fakeRetirer) Enqueue(kind frames.ResourceKind, handle string) {
	r.retired = append(r.retired, retired{Kind: kind, Handle: handle})
}

func TestNewRejectsEmptyClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().FramesInFlight().Return(0)

	_, err := ring.New[string](clock)
	require.Error(t, err)

	_, err = ring.New[string](nil)
	require.Error(t, err)
}

func TestSlotsStartNotCreated(t *testing.T) {
	clock, err := frames.NewCounter(3)
	require.NoError(t, err)

	r, err := ring.New[string](clock)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	for i := 0; i < r.Len(); i++ {
		require.False(t, r.IsCreated(i))
		require.Equal(t, "", *r.At(i))
	}
}

func TestCurrentCyclesWithFrameIndex(t *testing.T) {
	clock, err := frames.NewCounter(3)
	require.NoError(t, err)

	r, err := ring.New[string](clock)
	require.NoError(t, err)

	names := []string{"A", "B", "C"}
	for i, slot := range r.All() {
		*slot = names[i]
	}

	var seen []string
	for frame := 0; frame < 5; frame++ {
		seen = append(seen, *r.Current())
		clock.Advance()
	}

	require.Equal(t, []string{"A", "B", "C", "A", "B"}, seen)
}

func TestWriteThroughCurrentIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().FramesInFlight().Return(3)
	clock.EXPECT().FrameIndex().Return(1).AnyTimes()

	r, err := ring.New[string](clock)
	require.NoError(t, err)

	*r.At(0) = "A"
	*r.At(1) = "B"
	*r.At(2) = "C"

	current := r.Current()
	require.Equal(t, "B", *current)

	*current = "D"
	require.Equal(t, "D", *r.At(1))
	require.Equal(t, "A", *r.At(0))
	require.Equal(t, "C", *r.At(2))
}

func TestAllStopsEarly(t *testing.T) {
	clock, err := frames.NewCounter(4)
	require.NoError(t, err)

	r, err := ring.New[int](clock)
	require.NoError(t, err)

	visited := 0
	for i := range r.All() {
		visited++
		if i == 1 {
			break
		}
	}
	require.Equal(t, 2, visited)
}

func TestAtOutOfRangePanics(t *testing.T) {
	clock, err := frames.NewCounter(2)
	require.NoError(t, err)

	r, err := ring.New[int](clock)
	require.NoError(t, err)

	require.Panics(t, func() { r.At(2) })
	require.Panics(t, func() { r.At(-1) })
}

func TestReplaceRetiresCreatedHandle(t *testing.T) {
	clock, err := frames.NewCounter(2)
	require.NoError(t, err)

	r, err := ring.New[string](clock)
	require.NoError(t, err)

	retirer := &fakeRetirer{}

	r.Replace(0, "first", retirer, frames.ResourceKindPipeline)
	require.Empty(t, retirer.retired)
	require.True(t, r.IsCreated(0))

	r.Replace(0, "second", retirer, frames.ResourceKindPipeline)
	require.Equal(t, []retired{{Kind: frames.ResourceKindPipeline, Handle: "first"}}, retirer.retired)
	require.Equal(t, "second", *r.At(0))
	require.False(t, r.IsCreated(1))
}

func TestRetireAll(t *testing.T) {
	clock, err := frames.NewCounter(3)
	require.NoError(t, err)

	r, err := ring.New[string](clock)
	require.NoError(t, err)

	*r.At(0) = "A"
	*r.At(2) = "C"

	retirer := &fakeRetirer{}
	r.RetireAll(retirer, frames.ResourceKindUniformBuffer)

	require.Equal(t, []retired{
		{Kind: frames.ResourceKindUniformBuffer, Handle: "A"},
		{Kind: frames.ResourceKindUniformBuffer, Handle: "C"},
	}, retirer.retired)

	for i := 0; i < r.Len(); i++ {
		require.False(t, r.IsCreated(i))
	}
}

func TestReplaceThroughDeletionQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	clock, err := frames.NewCounter(2)
	require.NoError(t, err)

	destroyer := mocks.NewMockDestroyer[string](ctrl)
	queue, err := deletion.New[string](logger, clock, destroyer, deletion.CreateOptions[string]{})
	require.NoError(t, err)

	sets, err := ring.New[string](clock)
	require.NoError(t, err)
	for i, slot := range sets.All() {
		*slot = []string{"set0", "set1"}[i]
	}

	// Frame 0 rebuilds its own descriptor set
	queue.Poll()
	sets.Replace(clock.FrameIndex(), "set0b", queue, frames.ResourceKindDescriptorSet)
	clock.Advance()

	// Frame 1: set0 may still be read by frame 0 on the GPU
	queue.Poll()
	require.True(t, queue.IsPending("set0"))
	clock.Advance()

	// Frame 2 reuses slot 0, frame 0 is guaranteed to have finished
	destroyer.EXPECT().DestroyDescriptorSet("set0")
	queue.Poll()
	require.Equal(t, "set0b", *sets.Current())
	require.Equal(t, "set1", *sets.At(1))
}
