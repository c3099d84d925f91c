package sll

// InsertHead adds a new node holding value to the front of the list, and returns the new head.
func InsertHead(head *Node, value int) *Node {
	return newNode(value, head)
}

// InsertTail adds a new node holding value to the back of the list, and returns the new head.
// The head only changes if the list was empty.
func InsertTail(head *Node, value int) *Node {
	n := newNode(value, nil)
	if head == nil {
		return n
	}
	last(head).next = n
	return head
}

// InsertAfterValue inserts a new node holding value right after the first node whose value is after.
// If no node holds after, the new node is inserted at the tail instead.
// Inserting into an empty list is the same as InsertHead.
func InsertAfterValue(head *Node, value, after int) *Node {
	if head == nil {
		return InsertHead(head, value)
	}

	n := newNode(value, nil)
	// Stops either at the first match or at the last node
	cur := head
	for cur.next != nil && cur.Value != after {
		cur = cur.next
	}
	n.next = cur.next
	cur.next = n
	return head
}
