package inmem

import (
	"sync"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
)

// OutgoingParas implements storage.OutgoingParas in memory.
type OutgoingParas struct {
	mu    sync.Mutex
	paras map[relay.ParaID]struct{}
}

var _ storage.OutgoingParas = (*OutgoingParas)(nil)

func NewOutgoingParas() *OutgoingParas {
	return &OutgoingParas{
		paras: make(map[relay.ParaID]struct{}),
	}
}

func (o *OutgoingParas) Schedule(para relay.ParaID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.paras[para] = struct{}{}
	return nil
}

func (o *OutgoingParas) Peek() (relay.ParaIDList, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.list(), nil
}

func (o *OutgoingParas) Drain() (relay.ParaIDList, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	paras := o.list()
	o.paras = make(map[relay.ParaID]struct{})
	return paras, nil
}

func (o *OutgoingParas) list() relay.ParaIDList {
	paras := make(relay.ParaIDList, 0, len(o.paras))
	for para := range o.paras {
		paras = append(paras, para)
	}
	return paras.Sort()
}
