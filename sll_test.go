package sll_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/motoki317/sll"
)

// assertList checks the values of the list from head to tail, and that its length agrees.
func assertList(t *testing.T, want []int, head *sll.Node) {
	t.Helper()
	if len(want) == 0 {
		assert.Nil(t, head, "expected empty list")
		return
	}
	assert.Equal(t, want, sll.Values(head))
	assert.Equal(t, len(want), sll.Len(head))
}

// seq returns 0, 1, ..., n-1.
func seq(n int) []int {
	return lo.Range(n)
}

// without returns a copy of values with every occurrence of v removed, keeping the order.
func without(values []int, v int) []int {
	return lo.Filter(values, func(x int, _ int) bool { return x != v })
}
