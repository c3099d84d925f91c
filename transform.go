package sll

// Reverse reverses the list in place, and returns the new head (the former tail).
// No node is allocated or removed; only links are rewired.
func Reverse(head *Node) *Node {
	var prev *Node
	cur := head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	return prev
}

// Append links the list pointed to by other to the tail of head, and returns the new head.
//
// Ownership of the other chain moves to the returned list: *other is set to nil,
// so that the two handles cannot be used independently afterwards.
// Appending an empty list is a no-op.
// If *other is already part of head's chain, linking would create a cycle;
// the call is then a no-op and *other is left as-is.
func Append(head *Node, other **Node) *Node {
	if other == nil || *other == nil {
		return head
	}
	if head == nil {
		head, *other = *other, nil
		return head
	}

	n := head
	for {
		if n == *other {
			return head
		}
		if n.next == nil {
			break
		}
		n = n.next
	}
	n.next, *other = *other, nil
	return head
}
