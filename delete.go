package sll

// DeleteHead removes the first node of the list, and returns the new head.
// Deleting from an empty list is a no-op.
func DeleteHead(head *Node) *Node {
	if head == nil {
		return nil
	}
	next := head.next
	head.detach()
	return next
}

// DeleteTail removes the last node of the list, and returns the new head.
// Deleting from an empty list is a no-op.
func DeleteTail(head *Node) *Node {
	if head == nil {
		return nil
	}
	if head.next == nil {
		return DeleteHead(head)
	}

	// Second to last node
	n := head
	for n.next.next != nil {
		n = n.next
	}
	n.next = nil
	return head
}

// DeleteAll removes every node in the list, and returns the empty list (nil).
func DeleteAll(head *Node) *Node {
	for head != nil {
		head = DeleteHead(head)
	}
	return nil
}

// DeleteFirstMatch removes the first node holding value, and returns the new head.
// The returned bool reports whether a node was removed.
func DeleteFirstMatch(head *Node, value int) (*Node, bool) {
	if head == nil {
		return nil, false
	}
	if head.Value == value {
		return DeleteHead(head), true
	}

	prev := head
	for cur := head.next; cur != nil; prev, cur = cur, cur.next {
		if cur.Value == value {
			prev.next = cur.next
			cur.detach()
			return head, true
		}
	}
	return head, false
}

// DeleteAllMatches removes every node holding value while keeping the order of the other nodes,
// and returns the new head along with the number of removed nodes.
func DeleteAllMatches(head *Node, value int) (*Node, int) {
	deleted := 0
	// Leading run of matches
	for head != nil && head.Value == value {
		head = DeleteHead(head)
		deleted++
	}
	if head == nil {
		return nil, deleted
	}

	// head is now guaranteed to not match.
	// Do not advance prev after a removal, so that consecutive matches collapse.
	prev := head
	for prev.next != nil {
		if cur := prev.next; cur.Value == value {
			prev.next = cur.next
			cur.detach()
			deleted++
		} else {
			prev = cur
		}
	}
	return head, deleted
}

// DeleteByIndex removes the node at the zero-based index, and returns the new head.
// The returned bool is false if index is out of range, in which case the list is left unchanged.
func DeleteByIndex(head *Node, index int) (*Node, bool) {
	if head == nil || index < 0 {
		return head, false
	}
	if index == 0 {
		return DeleteHead(head), true
	}

	prev := FindByIndex(head, index-1)
	if prev == nil || prev.next == nil {
		return head, false
	}
	cur := prev.next
	prev.next = cur.next
	cur.detach()
	return head, true
}
