package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onrelay/relay-go/model/relay"
	"github.com/onrelay/relay-go/storage"
	"github.com/onrelay/relay-go/storage/badger/operation"
)

// OutgoingParas implements storage.OutgoingParas backed by a badger DB.
type OutgoingParas struct {
	db *badger.DB
}

var _ storage.OutgoingParas = (*OutgoingParas)(nil)

func NewOutgoingParas(db *badger.DB) *OutgoingParas {
	return &OutgoingParas{db: db}
}

func (o *OutgoingParas) Schedule(para relay.ParaID) error {
	err := o.db.Update(operation.UpsertOutgoingPara(para))
	if err != nil {
		return fmt.Errorf("could not schedule outgoing para: %w", err)
	}
	return nil
}

func (o *OutgoingParas) Peek() (relay.ParaIDList, error) {
	paras := make(relay.ParaIDList, 0)
	err := o.db.View(operation.LookupOutgoingParas(&paras))
	if err != nil {
		return nil, fmt.Errorf("could not look up outgoing paras: %w", err)
	}
	return paras, nil
}

func (o *OutgoingParas) Drain() (relay.ParaIDList, error) {
	paras := make(relay.ParaIDList, 0)
	err := o.db.Update(func(tx *badger.Txn) error {
		err := operation.LookupOutgoingParas(&paras)(tx)
		if err != nil {
			return fmt.Errorf("could not look up outgoing paras: %w", err)
		}
		for _, para := range paras {
			err = operation.RemoveOutgoingPara(para)(tx)
			if err != nil {
				return fmt.Errorf("could not remove outgoing para: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paras, nil
}
