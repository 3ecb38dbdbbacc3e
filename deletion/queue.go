package deletion

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/inflight/frames"
	"github.com/vkngwrapper/inflight/internal/utils"
	"golang.org/x/exp/slog"
)

type record[H comparable] struct {
	kind   frames.ResourceKind
	handle H
	age    int
}

// Queue defers the destruction of GPU resources until every frame that could still reference them
// has left the pipeline. With F frames in flight, a record is destroyed during the F-th poll after
// it was enqueued, never earlier and never later.
//
// Poll must be called once per frame, before any work that may enqueue new records that frame.
//
// Handles are indexed by value, so the dynamic type of every handle must be hashable. When H is an
// interface type, enqueueing a slice, map or func value panics.
type Queue[H comparable] struct {
	mutex     utils.OptionalMutex
	logger    *slog.Logger
	clock     frames.Clock
	table     frames.DestructionTable[H]
	callbacks destroyCallbacks[H]

	records []record[H]
	// handle -> number of records holding it
	pending *swiss.Map[H, int]

	enqueuedCount  int
	destroyedCount int
	unhandledCount int
}

// Enqueue records a handle that new frames no longer use. The handle is released through the path
// selected by kind once it has survived FramesInFlight polls. The queue does not deduplicate: a
// handle enqueued twice is destroyed twice.
func (q *Queue[H]) Enqueue(kind frames.ResourceKind, handle H) {
	q.logger.Debug("Queue::Enqueue")
	frames.DebugCheckKind(kind)

	q.mutex.Lock()
	defer q.mutex.Unlock()

	count, _ := q.pending.Get(handle)
	q.pending.Put(handle, count+1)
	q.records = append(q.records, record[H]{
		kind:   kind,
		handle: handle,
	})
	q.enqueuedCount++

	frames.DebugValidate(validateFunc(q.validate))
}

// Poll ages every pending record by one frame and destroys the records that have now survived
// FramesInFlight polls. All destruction calls have returned by the time Poll returns.
func (q *Queue[H]) Poll() {
	q.logger.Debug("Queue::Poll")

	expired := q.collectExpired(q.clock.FramesInFlight())
	q.reclaim(expired)
}

// Flush destroys every pending record immediately, regardless of age. It is meant for teardown,
// after the host engine has waited for the device to go idle.
func (q *Queue[H]) Flush() {
	q.logger.Debug("Queue::Flush")

	expired := q.collectExpired(0)
	q.reclaim(expired)
}

func (q *Queue[H]) collectExpired(framesInFlight int) []record[H] {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	var expired []record[H]
	kept := q.records[:0]
	for _, rec := range q.records {
		rec.age++
		if rec.age < framesInFlight {
			kept = append(kept, rec)
			continue
		}

		expired = append(expired, rec)
		q.removePending(rec.handle)

		if rec.kind.IsKnown() {
			q.destroyedCount++
		} else {
			q.unhandledCount++
		}
	}

	var zero record[H]
	for i := len(kept); i < len(q.records); i++ {
		q.records[i] = zero
	}
	q.records = kept

	return expired
}

func (q *Queue[H]) removePending(handle H) {
	count, _ := q.pending.Get(handle)
	if count <= 1 {
		q.pending.Delete(handle)
		return
	}

	q.pending.Put(handle, count-1)
}

func (q *Queue[H]) reclaim(expired []record[H]) {
	for _, rec := range expired {
		destroy, ok := q.table.Lookup(rec.kind)
		if !ok {
			q.logger.Warn("dropping record without a destruction path, the resource will leak",
				slog.String("kind", rec.kind.String()),
				slog.String("handle", fmt.Sprintf("%+v", rec.handle)))
			q.callbacks.Unhandled(rec.kind, rec.handle)
			continue
		}

		destroy(rec.handle)
		q.callbacks.Destroyed(rec.kind, rec.handle)
	}
}

// Len returns the number of records still waiting to be destroyed
func (q *Queue[H]) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.records)
}

// IsPending returns true if the handle has been enqueued and not yet destroyed
func (q *Queue[H]) IsPending(handle H) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return q.pending.Has(handle)
}

// Statistics adds this queue's counts to the provided statistics
func (q *Queue[H]) Statistics(stats *frames.Statistics) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	stats.EnqueuedCount += q.enqueuedCount
	stats.DestroyedCount += q.destroyedCount
	stats.UnhandledCount += q.unhandledCount
	stats.PendingCount += len(q.records)
}

// BuildStatsString writes a JSON object describing the queue's counts and every pending record
func (q *Queue[H]) BuildStatsString(writer *jwriter.Writer) {
	var stats frames.Statistics
	q.Statistics(&stats)

	q.mutex.Lock()
	defer q.mutex.Unlock()

	obj := writer.Object()
	defer obj.End()

	obj.Name("FramesInFlight").Int(q.clock.FramesInFlight())

	totals := obj.Name("Total").Object()
	totals.Name("Enqueued").Int(stats.EnqueuedCount)
	totals.Name("Destroyed").Int(stats.DestroyedCount)
	totals.Name("Unhandled").Int(stats.UnhandledCount)
	totals.Name("Pending").Int(stats.PendingCount)
	totals.End()

	records := obj.Name("Pending").Array()
	defer records.End()

	for _, rec := range q.records {
		recObj := records.Object()
		recObj.Name("Kind").String(rec.kind.String())
		recObj.Name("Age").Int(rec.age)
		recObj.Name("Handle").String(fmt.Sprintf("%+v", rec.handle))
		recObj.End()
	}
}

// Validate checks that the pending handle index agrees with the record list. A handle pending
// in more than one record is reported as a double enqueue.
func (q *Queue[H]) Validate() error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return q.validate()
}

// validateFunc lets the locked Enqueue path hand the unlocked check to frames.DebugValidate
type validateFunc func() error

func (f validateFunc) Validate() error {
	return f()
}

func (q *Queue[H]) validate() error {
	counts := make(map[H]int, len(q.records))
	for _, rec := range q.records {
		counts[rec.handle]++
	}

	if len(counts) != q.pending.Count() {
		return errors.Errorf("the pending index holds %d handles but the queue has %d distinct pending handles", q.pending.Count(), len(counts))
	}

	for handle, count := range counts {
		indexed, ok := q.pending.Get(handle)
		if !ok || indexed != count {
			return errors.Errorf("handle %+v appears in %d records but the pending index holds %d", handle, count, indexed)
		}

		if count > 1 {
			return errors.Errorf("handle %+v was enqueued %d times without being destroyed", handle, count)
		}
	}

	return nil
}
