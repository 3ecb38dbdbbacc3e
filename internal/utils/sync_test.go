package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalMutexDisabledIsReentrant(t *testing.T) {
	m := OptionalMutex{}

	m.Lock()
	m.Lock()
	m.Unlock()
	m.Unlock()
}

func TestOptionalMutexEnabledSerializes(t *testing.T) {
	m := OptionalMutex{UseMutex: true}
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock()
			defer m.Unlock()
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 50, counter)
	require.True(t, m.Mutex.TryLock())
	m.Mutex.Unlock()
}
