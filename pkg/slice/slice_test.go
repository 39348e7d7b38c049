// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelog/cinelog/pkg/slice"
)

/*
TestMap verifies element-wise transformation.
*/
func TestMap(t *testing.T) {
	got := slice.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, got)

	assert.Empty(t, slice.Map([]int{}, func(n int) int { return n }))
}

/*
TestFilter verifies predicate-based selection.
*/
func TestFilter(t *testing.T) {
	got := slice.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

/*
TestDedupe verifies duplicate removal preserves first-seen order.
*/
func TestDedupe(t *testing.T) {
	type item struct {
		ID   int64
		Name string
	}

	input := []item{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
		{ID: 1, Name: "duplicate of first"},
		{ID: 3, Name: "third"},
	}

	got := slice.Dedupe(input, func(i item) int64 { return i.ID })

	assert.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}
