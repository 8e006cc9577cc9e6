package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DownwardQueueCollector struct {
	messagesAdmitted prometheus.Counter
	messageSize      prometheus.Histogram
	messagesRejected prometheus.Counter
	messagesPruned   prometheus.Counter
	queuesSwept      prometheus.Counter
	queueLength      prometheus.Histogram
}

func NewDownwardQueueCollector() *DownwardQueueCollector {

	dq := &DownwardQueueCollector{

		messagesAdmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Name:      "messages_admitted_total",
			Help:      "count of messages accepted into downward queues",
		}),

		messageSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Buckets:   []float64{64, 256, 1024, 4096, 16384, 65536},
			Name:      "message_size_bytes",
			Help:      "payload size of admitted messages",
		}),

		messagesRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Name:      "messages_rejected_total",
			Help:      "count of messages that failed admission",
		}),

		messagesPruned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Name:      "messages_pruned_total",
			Help:      "count of messages removed after processed-count reports",
		}),

		queuesSwept: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Name:      "queues_swept_total",
			Help:      "count of queues purged by the offboarding sweep",
		}),

		queueLength: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceRelay,
			Subsystem: subsystemDownwardQueue,
			Buckets:   []float64{1, 10, 100, 1000, 10000},
			Name:      "queue_length_messages",
			Help:      "queue length observed after mutations",
		}),
	}

	return dq
}

func (dq *DownwardQueueCollector) MessageAdmitted(size uint32) {
	dq.messagesAdmitted.Inc()
	dq.messageSize.Observe(float64(size))
}

func (dq *DownwardQueueCollector) MessageRejected() {
	dq.messagesRejected.Inc()
}

func (dq *DownwardQueueCollector) MessagesPruned(count uint64) {
	dq.messagesPruned.Add(float64(count))
}

func (dq *DownwardQueueCollector) QueueSwept() {
	dq.queuesSwept.Inc()
}

func (dq *DownwardQueueCollector) QueueLength(length uint64) {
	dq.queueLength.Observe(float64(length))
}
