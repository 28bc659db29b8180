package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// QueueStorage defines the minimal interface for enqueueing background jobs,
// such as the risk assessment that runs after a verification job is created.
// Implementations persist the queue entry into the underlying backend and
// should make the insert atomic with respect to any surrounding transaction
// when the backend supports it.
//
// The boolean result reports whether a queue entry was actually inserted;
// false means an equivalent entry already existed (uniqueness constraints)
// and nothing new was enqueued.
type QueueStorage interface {
	// AddQueueJob enqueues a new background job with the given arguments.
	AddQueueJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
