package fxmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fxhash/fxmap"
)

func TestSetBasic(t *testing.T) {
	s := fxmap.NewStringSet()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))

	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.False(t, s.Contains("c"))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())
}

func TestSetRange(t *testing.T) {
	s := fxmap.NewIntSet()
	for i := 0; i < 32; i++ {
		s.Add(i)
	}

	seen := make(map[int]bool)
	s.Range(func(k int) bool {
		seen[k] = true
		return true
	})
	assert.Len(t, seen, 32)
}

func TestSetClear(t *testing.T) {
	s := fxmap.NewUint64Set()
	for i := uint64(0); i < 100; i++ {
		s.Add(i)
	}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))

	assert.True(t, s.Add(1))
	assert.True(t, s.Contains(1))
}

func TestSetDeduplicates(t *testing.T) {
	s := fxmap.NewIntSet()
	for i := 0; i < 1000; i++ {
		s.Add(i % 10)
	}
	require.Equal(t, 10, s.Len())
}
