package ast

// Walk visits n and its children depth-first, left before right.
// Returning false from fn skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if b, ok := n.(*BinaryOp); ok && b != nil {
		Walk(b.Left, fn)
		Walk(b.Right, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}
