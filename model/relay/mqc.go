package relay

// chainLink is the canonical encoding of one link of a message queue chain:
// the head before the append, the block at which the appended message was
// sent, and the hash of the message itself.
type chainLink struct {
	Prev    Hash
	SentAt  BlockNumber
	Message Hash
}

// NextChainHead computes the chain head that results from appending a message
// to a queue whose head is prev. It is pure and deterministic; ZeroHash is
// the head of the genesis chain. The head commits to the full append history
// of the queue, so pruning resident messages never rewinds it.
func NextChainHead(prev Hash, sentAt BlockNumber, messageHash Hash) Hash {
	return MakeHash(chainLink{
		Prev:    prev,
		SentAt:  sentAt,
		Message: messageHash,
	})
}

// MessageQueueChain folds messages into a chain head one append at a time.
// A consumer that received all messages of a queue in order can rebuild the
// chain and compare its head against the advertised one to verify it missed
// nothing and saw nothing out of order.
//
// The zero value is the genesis chain. MessageQueueChain is not safe for
// concurrent use.
type MessageQueueChain struct {
	head Hash
}

// NewMessageQueueChain resumes a chain from a previously observed head.
func NewMessageQueueChain(head Hash) *MessageQueueChain {
	return &MessageQueueChain{head: head}
}

// Extend folds one message into the chain and returns the new head.
func (c *MessageQueueChain) Extend(msg *InboundMessage) Hash {
	c.head = NextChainHead(c.head, msg.SentAt, msg.Hash())
	return c.head
}

// Head returns the current head of the chain.
func (c *MessageQueueChain) Head() Hash {
	return c.head
}
