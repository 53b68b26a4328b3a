package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tempo/runtime"
)

func TestRNGHierarchyIsDeterministic(t *testing.T) {
	h1 := runtime.NewRNGHierarchy(42)
	h2 := runtime.NewRNGHierarchy(42)

	a := h1.ForTree(3).Int63()
	b := h2.ForTree(3).Int63()
	assert.Equal(t, a, b)
}

func TestRNGHierarchyStreamsDiffer(t *testing.T) {
	h := runtime.NewRNGHierarchy(42)
	a := h.ForTree(0).Int63()
	b := h.ForTree(1).Int63()
	c := h.ForLOOCVQuery(0).Int63()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestShuffleIntsPreservesElements(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5}
	h := runtime.NewRNGHierarchy(7)
	runtime.ShuffleInts(a, h.ForTree(0))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, a)
}
