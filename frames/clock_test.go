package frames_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/inflight/frames"
)

func TestCounterRejectsZeroFrames(t *testing.T) {
	_, err := frames.NewCounter(0)
	require.Error(t, err)
	require.True(t, errors.Is(err, frames.ErrInvalidFramesInFlight))

	_, err = frames.NewCounter(-2)
	require.True(t, errors.Is(err, frames.ErrInvalidFramesInFlight))
}

func TestCounterAdvanceWraps(t *testing.T) {
	counter, err := frames.NewCounter(3)
	require.NoError(t, err)
	require.Equal(t, 3, counter.FramesInFlight())

	var indices []int
	for i := 0; i < 7; i++ {
		indices = append(indices, counter.FrameIndex())
		counter.Advance()
	}

	require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, indices)
	require.Equal(t, uint64(7), counter.Frame())
	require.Equal(t, 1, counter.FrameIndex())
}

func TestCounterSingleFrame(t *testing.T) {
	counter, err := frames.NewCounter(1)
	require.NoError(t, err)

	counter.Advance()
	counter.Advance()
	require.Equal(t, 0, counter.FrameIndex())
	require.Equal(t, uint64(2), counter.Frame())
}
