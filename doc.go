// Package sll provides a singly linked list of int values and the usual set of operations over it:
// insertion at head/tail/after a value, deletion by position/value/all matches, search by value or index,
// in-place value replacement and swapping, reversal and appending.
//
// A list is represented by a pointer to its head *Node; nil is the empty list.
// There is no list object, no stored length and no tail pointer.
// Every operation that may change which node is the head returns the new head, so the usual call form is
//
//	var head *sll.Node
//	head = sll.InsertTail(head, 1)
//	head = sll.InsertHead(head, 0)
//	head, _ = sll.DeleteFirstMatch(head, 1)
//
// Lists are not safe for concurrent use. A single goroutine must own a list handle at a time,
// and callers must not keep using *Node references obtained before that node was deleted.
package sll
