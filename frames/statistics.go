package frames

// Statistics counts the records that passed through a deletion queue
type Statistics struct {
	// EnqueuedCount is the number of records ever enqueued
	EnqueuedCount int
	// DestroyedCount is the number of records whose handle was passed to a destruction path
	DestroyedCount int
	// UnhandledCount is the number of records dropped without a destruction call because their
	// kind had no destruction path. Any nonzero value here is a leak in the host engine.
	UnhandledCount int
	// PendingCount is the number of records still waiting to age out
	PendingCount int
}

func (s *Statistics) Clear() {
	s.EnqueuedCount = 0
	s.DestroyedCount = 0
	s.UnhandledCount = 0
	s.PendingCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.EnqueuedCount += other.EnqueuedCount
	s.DestroyedCount += other.DestroyedCount
	s.UnhandledCount += other.UnhandledCount
	s.PendingCount += other.PendingCount
}
