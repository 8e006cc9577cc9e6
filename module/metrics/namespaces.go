package metrics

// Prometheus metric namespaces
const (
	namespaceRelay   = "relay"
	namespaceStorage = "storage"
)

// Relay subsystems
const (
	subsystemDownwardQueue = "downward_queue"
)

// Storage subsystems
const (
	subsystemCache = "cache"
)
