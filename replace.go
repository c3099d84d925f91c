package sll

// ReplaceFirstMatch overwrites the value of the first node holding search with replace.
// Returns false if no node holds search, in which case the list is left unchanged.
func ReplaceFirstMatch(head *Node, search, replace int) bool {
	n := FindByValue(head, search)
	if n == nil {
		return false
	}
	n.Value = replace
	return true
}

// ReplaceAllMatches overwrites the value of every node holding search with replace,
// and returns the number of overwritten nodes.
func ReplaceAllMatches(head *Node, search, replace int) int {
	replaced := 0
	for n := head; n != nil; n = n.next {
		if n.Value == search {
			n.Value = replace
			replaced++
		}
	}
	return replaced
}

// SwapValues exchanges the values held by a and b. Nodes keep their positions in the list.
// Returns false without doing anything if either node is nil.
func SwapValues(a, b *Node) bool {
	if a == nil || b == nil {
		return false
	}
	a.Value, b.Value = b.Value, a.Value
	return true
}

// SwapValuesByIndex exchanges the values of the nodes at index i and j.
// It is a no-op if i == j, the list is empty, or either index is out of range.
//
// The list is walked only once: the node at the smaller index is resolved from head,
// and the node at the larger index is resolved by continuing from there.
func SwapValuesByIndex(head *Node, i, j int) bool {
	if i == j || head == nil {
		return false
	}
	if i > j {
		i, j = j, i
	}
	first := FindByIndex(head, i)
	if first == nil {
		return false
	}
	second := FindByIndex(first, j-i)
	return SwapValues(first, second)
}
