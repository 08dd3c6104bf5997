package splaytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic"
)

func intSet() *Set[int] {
	return NewSet[int](generic.Less[int])
}

func TestSetInsertAndContains(t *testing.T) {
	s := intSet()

	assert.False(t, s.Contains(5))

	assert.True(t, s.Insert(5))
	assert.True(t, s.Contains(5))
	assert.Equal(t, 5, s.root.key, "a freshly inserted key should be splayed to the root")

	assert.False(t, s.Insert(5), "inserting an existing key reports no insertion")
	assert.Equal(t, 1, s.Len())
}

func TestSetContainsSplaysLookedUpNode(t *testing.T) {
	s := intSet()
	for _, k := range []int{5, 3, 8, 1, 4} {
		s.Insert(k)
	}

	assert.True(t, s.Contains(1))
	assert.Equal(t, 1, s.root.key)

	assert.False(t, s.Contains(99))
	assert.Equal(t, 8, s.root.key, "a failed lookup splays the last node examined")
}

func TestSetContainsMissOnSingleElementSet(t *testing.T) {
	// A miss whose search path has length exactly one used to make
	// Splay loop forever: splayStep's single-parent case fell through
	// to Rotate, which no-ops on an Empty focus and never shrinks the
	// path. Splay must step up to the last Branch examined first.
	s := intSet()
	s.Insert(5)

	assert.False(t, s.Contains(99))
	assert.Equal(t, 5, s.root.key)
	assert.Equal(t, []int{5}, s.Keys(), "a miss must not fabricate a phantom zero-value key")
}

func TestSetSplayToRoot(t *testing.T) {
	s := intSet()
	for _, k := range []int{5, 3, 8, 1, 4} {
		s.Insert(k)
	}

	s.SplayToRoot(3)
	assert.Equal(t, 3, s.root.key)
	assert.Equal(t, []int{1, 3, 4, 5, 8}, s.Keys())

	s.SplayToRoot(99)
	assert.Equal(t, 8, s.root.key, "splaying an absent key still splays the last node examined")
	assert.Equal(t, []int{1, 3, 4, 5, 8}, s.Keys())
}

func TestSetKeysAscending(t *testing.T) {
	s := intSet()
	input := []int{5, 3, 8, 1, 4, 9, 2, 7, 6, 0}
	for _, k := range input {
		s.Insert(k)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s.Keys())
	assert.Equal(t, 10, s.Len())
}

func TestSetAscendingInsertStress(t *testing.T) {
	// Inserting in sorted order drives an unbalanced splay tree to its
	// worst-case O(n) height before splaying fixes it back up; Keys'
	// iterative traversal must survive that without blowing the stack.
	s := intSet()
	const n = 20000
	for i := 0; i < n; i++ {
		s.Insert(i)
	}
	assert.Equal(t, n, s.Len())
	keys := s.Keys()
	assert.Equal(t, n, len(keys))
	assert.Equal(t, 0, keys[0])
	assert.Equal(t, n-1, keys[n-1])
}

func TestSetScenarioEmptySet(t *testing.T) {
	s := intSet()
	assert.False(t, s.Contains(5))
}

func TestSetScenarioSplayAfterContains(t *testing.T) {
	s := intSet()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		s.Insert(k)
	}

	assert.True(t, s.Contains(9))
	assert.Equal(t, 9, s.root.key)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, s.Keys())
}

func BenchmarkSetInsert(b *testing.B) {
	s := intSet()
	for i := 0; i < b.N; i++ {
		s.Insert(i)
	}
}
