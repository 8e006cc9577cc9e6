package metrics

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) CacheEntries(resource string, entries uint) {}
func (nc *NoopCollector) CacheHit(resource string)                   {}
func (nc *NoopCollector) CacheNotFound(resource string)              {}
func (nc *NoopCollector) CacheMiss(resource string)                  {}
func (nc *NoopCollector) MessageAdmitted(size uint32)                {}
func (nc *NoopCollector) MessageRejected()                           {}
func (nc *NoopCollector) MessagesPruned(count uint64)                {}
func (nc *NoopCollector) QueueSwept()                                {}
func (nc *NoopCollector) QueueLength(length uint64)                  {}
