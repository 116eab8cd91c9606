package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemo_SetAndGet(t *testing.T) {
	m := newMemo()
	n := &Node{GuessIndex: 3}

	_, ok := m.Get("0,1,2")
	assert.False(t, ok)

	m.Set("0,1,2", n)
	got, ok := m.Get("0,1,2")
	assert.True(t, ok)
	assert.Same(t, n, got)
}

func TestMemoKey_OrderSensitive(t *testing.T) {
	assert.Equal(t, "0,1,2", memoKey([]int{0, 1, 2}))
	assert.NotEqual(t, memoKey([]int{0, 1, 2}), memoKey([]int{2, 1, 0}))
}
