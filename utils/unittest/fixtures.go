package unittest

import (
	crand "crypto/rand"
	"math/rand"

	"github.com/onrelay/relay-go/model/relay"
)

func ParaIDFixture() relay.ParaID {
	return relay.ParaID(rand.Uint32()%100_000 + 1)
}

func BlockNumberFixture() relay.BlockNumber {
	return relay.BlockNumber(uint64(rand.Uint32()) + 1)
}

func HashFixture() relay.Hash {
	var hash relay.Hash
	_, _ = crand.Read(hash[:])
	return hash
}

func PayloadFixture(n int) []byte {
	payload := make([]byte, n)
	_, _ = crand.Read(payload)
	return payload
}

func WithSentAt(sentAt relay.BlockNumber) func(*relay.InboundMessage) {
	return func(msg *relay.InboundMessage) {
		msg.SentAt = sentAt
	}
}

func WithPayloadSize(n int) func(*relay.InboundMessage) {
	return func(msg *relay.InboundMessage) {
		msg.Payload = PayloadFixture(n)
	}
}

func InboundMessageFixture(opts ...func(*relay.InboundMessage)) *relay.InboundMessage {
	msg := relay.InboundMessage{
		Payload: PayloadFixture(16),
		SentAt:  BlockNumberFixture(),
	}
	for _, apply := range opts {
		apply(&msg)
	}
	return &msg
}

// InboundMessagesFixture returns n messages with non-decreasing sent-at
// stamps, the shape of a real queue's contents.
func InboundMessagesFixture(n int, opts ...func(*relay.InboundMessage)) []*relay.InboundMessage {
	sentAt := BlockNumberFixture()
	messages := make([]*relay.InboundMessage, 0, n)
	for i := 0; i < n; i++ {
		sentAt += relay.BlockNumber(rand.Intn(3))
		messages = append(messages, InboundMessageFixture(append(opts, WithSentAt(sentAt))...))
	}
	return messages
}

func ParaIDListFixture(n int) relay.ParaIDList {
	paras := make(relay.ParaIDList, 0, n)
	seen := make(map[relay.ParaID]struct{}, n)
	for len(paras) < n {
		para := ParaIDFixture()
		if _, ok := seen[para]; ok {
			continue
		}
		seen[para] = struct{}{}
		paras = append(paras, para)
	}
	return paras.Sort()
}
