package sll_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motoki317/sll"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list []int
	}{
		{"empty", nil},
		{"single", []int{1}},
		{"two", []int{1, 2}},
		{"multiple", []int{0, 1, 2, 3, 4}},
		{"duplicates", []int{1, 1, 2, 1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head := sll.FromValues(tt.list...)
			reversed := sll.Reverse(head)
			assertList(t, lo.Reverse(append([]int{}, tt.list...)), reversed)

			// Involution
			assertList(t, tt.list, sll.Reverse(reversed))
		})
	}
}

func TestReverse_Relinks(t *testing.T) {
	t.Parallel()

	head := sll.FromValues(1, 2, 3)
	nodes := []*sll.Node{head, head.Next(), head.Next().Next()}

	head = sll.Reverse(head)
	assert.Same(t, nodes[2], head, "expected former tail to become head")
	assert.Same(t, nodes[1], head.Next())
	assert.Same(t, nodes[0], head.Next().Next())
	assert.Nil(t, nodes[0].Next(), "expected former head to become tail")
}

func TestAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		first  []int
		second []int
	}{
		{"both empty", nil, nil},
		{"second empty", []int{1, 2}, nil},
		{"first empty", nil, []int{3, 4}},
		{"both", []int{0, 1, 2}, []int{3, 4}},
		{"overlapping values", []int{4, 3, 2, 1, 0}, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head := sll.FromValues(tt.first...)
			other := sll.FromValues(tt.second...)

			head = sll.Append(head, &other)
			assert.Nil(t, other, "expected other handle to be consumed")

			expect := append(append([]int{}, tt.first...), tt.second...)
			assertList(t, expect, head)
			require.Equal(t, len(tt.first)+len(tt.second), sll.Len(head))
			for i, v := range tt.second {
				n := sll.FindByIndex(head, len(tt.first)+i)
				require.NotNil(t, n)
				assert.Equal(t, v, n.Value)
			}
		})
	}
}

func TestAppend_Aliased(t *testing.T) {
	t.Parallel()

	t.Run("itself", func(t *testing.T) {
		head := sll.FromValues(1, 2, 3)
		other := head

		head = sll.Append(head, &other)
		assertList(t, []int{1, 2, 3}, head)
		assert.Same(t, head, other, "expected other to be left as-is")
	})
	t.Run("own suffix", func(t *testing.T) {
		head := sll.FromValues(1, 2, 3)
		other := head.Next().Next()

		head = sll.Append(head, &other)
		assertList(t, []int{1, 2, 3}, head)
		assert.NotNil(t, other)
	})
	t.Run("nil handle", func(t *testing.T) {
		head := sll.FromValues(1)
		assertList(t, []int{1}, sll.Append(head, nil))
	})
}
