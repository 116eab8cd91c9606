package solver

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunAll_ExecutesEveryTask(t *testing.T) {
	p := newPool()

	var count int64
	tasks := make([]func(), 20)
	for i := range tasks {
		tasks[i] = func() { atomic.AddInt64(&count, 1) }
	}

	p.runAll(tasks)
	assert.Equal(t, int64(20), count)
}

func TestPool_RunAll_SingleTaskRunsInline(t *testing.T) {
	p := newPool()
	ran := false
	p.runAll([]func(){func() { ran = true }})
	assert.True(t, ran)
}

func TestPool_RunAll_EmptyIsNoOp(t *testing.T) {
	p := newPool()
	assert.NotPanics(t, func() { p.runAll(nil) })
}
