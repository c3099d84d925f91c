package sll

// Node is an element in a singly linked list.
// The zero value is a detached node holding 0.
type Node struct {
	next *Node

	Value int
}

func newNode(value int, next *Node) *Node {
	return &Node{next: next, Value: value}
}

// Next returns the following node in the list, or nil if n is the last node.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// detach clears the link of a removed node so that a stale reference cannot reach the live chain.
func (n *Node) detach() {
	n.next = nil
}

// last returns the last node of a non-empty list.
func last(head *Node) *Node {
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

// FromValues creates a new list holding the given values in order.
func FromValues(values ...int) *Node {
	var head, tail *Node
	for _, v := range values {
		n := newNode(v, nil)
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// Values returns the values in the list, from head to tail.
func Values(head *Node) []int {
	values := make([]int, 0, Len(head))
	for n := head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

// Clone returns an independent copy of the list.
func Clone(head *Node) *Node {
	return FromValues(Values(head)...)
}
