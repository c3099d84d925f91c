package sll

// Len returns the number of nodes in the list.
func Len(head *Node) int {
	l := 0
	for n := head; n != nil; n = n.next {
		l++
	}
	return l
}

// Contains reports whether any node in the list holds value.
func Contains(head *Node, value int) bool {
	return FindByValue(head, value) != nil
}

// Count returns the number of nodes holding value.
func Count(head *Node, value int) int {
	count := 0
	for n := head; n != nil; n = n.next {
		if n.Value == value {
			count++
		}
	}
	return count
}

// FindByValue returns the first node holding value, or nil if there is none.
func FindByValue(head *Node, value int) *Node {
	for n := head; n != nil; n = n.next {
		if n.Value == value {
			return n
		}
	}
	return nil
}

// FindByIndex returns the node at the zero-based index counting from head.
// Returns nil if index is negative or not less than the length of the list.
func FindByIndex(head *Node, index int) *Node {
	if index < 0 {
		return nil
	}
	n := head
	for i := 0; n != nil && i < index; i++ {
		n = n.next
	}
	return n
}
