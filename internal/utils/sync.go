package utils

import (
	"sync"
)

// OptionalMutex is a sync.Mutex that only locks when UseMutex is set. Owners that are driven from
// a single frame loop leave it unset.
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}
