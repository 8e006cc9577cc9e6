package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onrelay/relay-go/model/relay"
)

func TestParaIDList_Sort(t *testing.T) {
	list := relay.ParaIDList{2004, 7, 1000, 7}
	sorted := list.Sort()

	assert.Equal(t, relay.ParaIDList{7, 7, 1000, 2004}, sorted)
	// input order untouched
	assert.Equal(t, relay.ParaIDList{2004, 7, 1000, 7}, list)
}

func TestParaIDList_Contains(t *testing.T) {
	list := relay.ParaIDList{1, 2, 3}
	assert.True(t, list.Contains(2))
	assert.False(t, list.Contains(4))
}

func TestParaIDString(t *testing.T) {
	assert.Equal(t, "2004", relay.ParaID(2004).String())
}
