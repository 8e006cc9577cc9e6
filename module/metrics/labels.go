package metrics

const (
	LabelResource = "resource"
)

const (
	ResourceUndefined  = "undefined"
	ResourceQueueState = "queue_state"
)
