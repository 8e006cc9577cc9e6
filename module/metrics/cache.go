package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CacheCollector struct {
	entries   *prometheus.GaugeVec
	hits      *prometheus.CounterVec
	notfounds *prometheus.CounterVec
	misses    *prometheus.CounterVec
}

func NewCacheCollector() *CacheCollector {

	cc := &CacheCollector{

		entries: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "entries_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of entries in the cache",
		}, []string{LabelResource}),

		hits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "hits_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of hits for the cache",
		}, []string{LabelResource}),

		notfounds: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "notfounds_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not found in either cache or database",
		}, []string{LabelResource}),

		misses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "misses_total",
			Namespace: namespaceStorage,
			Subsystem: subsystemCache,
			Help:      "the number of times the queried item was not found in the cache, but found in the database",
		}, []string{LabelResource}),
	}

	return cc
}

// CacheEntries records the size of the cache of the given resource.
func (cc *CacheCollector) CacheEntries(resource string, entries uint) {
	cc.entries.With(prometheus.Labels{LabelResource: resource}).Set(float64(entries))
}

// CacheHit records the number of cache hits of the given resource.
func (cc *CacheCollector) CacheHit(resource string) {
	cc.hits.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheNotFound records the number of times the queried item was not found in
// either cache or database.
func (cc *CacheCollector) CacheNotFound(resource string) {
	cc.notfounds.With(prometheus.Labels{LabelResource: resource}).Inc()
}

// CacheMiss records the number of times the queried item was not found in the
// cache, but found in the database.
func (cc *CacheCollector) CacheMiss(resource string) {
	cc.misses.With(prometheus.Labels{LabelResource: resource}).Inc()
}
