package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onrelay/relay-go/model/relay"
)

// UpsertOutgoingPara marks a para as scheduled for offboarding. Scheduling is
// idempotent, so the entry is written regardless of whether it exists.
func UpsertOutgoingPara(para relay.ParaID) func(*badger.Txn) error {
	return upsert(makePrefix(codeOutgoingPara, para), para)
}

func RemoveOutgoingPara(para relay.ParaID) func(*badger.Txn) error {
	return remove(makePrefix(codeOutgoingPara, para))
}

// LookupOutgoingParas retrieves all paras currently scheduled for
// offboarding, in ascending order.
func LookupOutgoingParas(paras *relay.ParaIDList) func(*badger.Txn) error {
	return traverse(makePrefix(codeOutgoingPara), lookupParas(paras))
}
