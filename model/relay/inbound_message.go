package relay

// InboundMessage is one downward message admitted to a para's queue. Messages
// are immutable once admitted; the queue only ever appends at the back and
// prunes from the front.
type InboundMessage struct {
	// Payload is the opaque message body. The relay never interprets it.
	Payload []byte
	// SentAt is the relay block at which the message was admitted. Within a
	// queue, SentAt values are non-decreasing in append order.
	SentAt BlockNumber
}

// Hash returns the commitment to the message that is folded into the queue's
// chain head on append.
func (m InboundMessage) Hash() Hash {
	return MakeHash(m)
}

// Size returns the payload size in bytes, the quantity checked against the
// configured admission bound.
func (m InboundMessage) Size() uint32 {
	return uint32(len(m.Payload))
}
