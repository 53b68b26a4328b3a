package runtime_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tempo/runtime"
)

func TestPoolRunsEveryTask(t *testing.T) {
	pool := runtime.NewPool(4)
	var count int64
	pool.Run(100, func(i int) {
		atomic.AddInt64(&count, 1)
	})
	assert.EqualValues(t, 100, count)
}

func TestPoolZeroTasksNoop(t *testing.T) {
	pool := runtime.NewPool(2)
	called := false
	pool.Run(0, func(i int) { called = true })
	assert.False(t, called)
}
