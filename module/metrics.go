package module

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// DownwardQueueMetrics encapsulates the metrics collectors for the downward
// message queues of the relay.
type DownwardQueueMetrics interface {
	// MessageAdmitted reports one message accepted into a queue and its
	// payload size in bytes.
	MessageAdmitted(size uint32)

	// MessageRejected reports one message that failed admission.
	MessageRejected()

	// MessagesPruned reports messages removed from the front of a queue after
	// a verified processed-count report.
	MessagesPruned(count uint64)

	// QueueSwept reports one queue purged by the offboarding sweep.
	QueueSwept()

	// QueueLength reports the length of a queue after a mutation.
	QueueLength(length uint64)
}

// DMQMetrics aggregates all metrics the downward queue state emits.
type DMQMetrics interface {
	CacheMetrics
	DownwardQueueMetrics
}
