package relay

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// ParaID uniquely identifies a para registered with the relay chain. The
// relay keeps one downward message queue per ParaID.
type ParaID uint32

// String returns the decimal representation of the para ID.
func (p ParaID) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

// BlockNumber indexes relay-chain blocks. Block numbers only ever move
// forward, which is what makes the sent-at stamps of queued messages
// non-decreasing.
type BlockNumber uint64

// ParaIDList is a slice of para IDs.
type ParaIDList []ParaID

// Sort orders the list in ascending numeric order, which is the canonical
// order for iterating over a set of paras.
func (l ParaIDList) Sort() ParaIDList {
	dup := make(ParaIDList, len(l))
	copy(dup, l)
	slices.Sort(dup)
	return dup
}

// Contains returns true if the list includes the given para.
func (l ParaIDList) Contains(para ParaID) bool {
	return slices.Contains(l, para)
}
