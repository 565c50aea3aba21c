package dom

// NodeFilterResult is the verdict a NodeFilter callback returns for a
// candidate node.
type NodeFilterResult int

const (
	FilterAccept NodeFilterResult = 1
	FilterReject NodeFilterResult = 2
	FilterSkip   NodeFilterResult = 3
)

// whatToShow bitmask values, one bit per NodeType (1 << (nodeType - 1)).
const (
	ShowAll                  uint32 = 0xFFFFFFFF
	ShowElement              uint32 = 1 << 0
	ShowAttribute            uint32 = 1 << 1
	ShowText                 uint32 = 1 << 2
	ShowCDATASection         uint32 = 1 << 3
	ShowEntityReference      uint32 = 1 << 4
	ShowEntity               uint32 = 1 << 5
	ShowProcessingInstruction uint32 = 1 << 6
	ShowComment              uint32 = 1 << 7
	ShowDocument             uint32 = 1 << 8
	ShowDocumentType         uint32 = 1 << 9
	ShowDocumentFragment     uint32 = 1 << 10
	ShowNotation             uint32 = 1 << 11
)

// NodeFilter is the optional callback passed to CreateNodeIterator/
// CreateTreeWalker. It returns FilterAccept, FilterReject, or FilterSkip.
type NodeFilter func(*Node) NodeFilterResult

// matchesShow reports whether node's type is set in the whatToShow bitmask.
func matchesShow(node *Node, whatToShow uint32) bool {
	if whatToShow == ShowAll {
		return true
	}
	bit := uint32(1) << uint32(node.nodeType-1)
	return whatToShow&bit != 0
}

// NodeIterator provides a way to iterate over nodes in a subtree.
// Implements the DOM NodeIterator interface.
type NodeIterator struct {
	document                   *Document
	root                       *Node
	whatToShow                 uint32
	filter                     NodeFilter
	referenceNode              *Node
	pointerBeforeReferenceNode bool
}

// Detach removes this iterator from the document's list of active iterators.
// This is a no-op in modern DOM (iterators no longer need explicit detachment)
// but we use it to clean up the registry.
func (ni *NodeIterator) Detach() {
	if ni.document != nil {
		ni.document.unregisterNodeIterator(ni)
	}
}

// accepts runs the whatToShow bitmask and, if present, the callback filter
// against a candidate node. Per spec.md §4.8, reject and skip are
// equivalent for NodeIterator: either way the node itself is not yielded.
func (ni *NodeIterator) accepts(node *Node) bool {
	if !matchesShow(node, ni.whatToShow) {
		return false
	}
	if ni.filter == nil {
		return true
	}
	return ni.filter(node) == FilterAccept
}

// NextNode advances the iterator in document order and returns the next
// accepted node, or nil if the end of the subtree rooted at Root is reached.
// Root itself is never returned.
func (ni *NodeIterator) NextNode() *Node {
	node := ni.referenceNode
	beforeNode := ni.pointerBeforeReferenceNode
	for {
		if !beforeNode {
			next := followingNode(node, ni.root)
			if next == nil {
				return nil
			}
			node = next
		}
		beforeNode = false
		if node != ni.root && ni.accepts(node) {
			ni.referenceNode = node
			ni.pointerBeforeReferenceNode = false
			return node
		}
	}
}

// PreviousNode moves the iterator backward in document order and returns
// the previous accepted node, or nil if the start of the subtree is reached.
// Root itself is never returned.
func (ni *NodeIterator) PreviousNode() *Node {
	node := ni.referenceNode
	beforeNode := ni.pointerBeforeReferenceNode
	for {
		if beforeNode {
			prev := precedingNode(node, ni.root)
			if prev == nil {
				return nil
			}
			node = prev
		}
		beforeNode = true
		if node != ni.root && ni.accepts(node) {
			ni.referenceNode = node
			ni.pointerBeforeReferenceNode = true
			return node
		}
	}
}

// preRemovingSteps runs the pre-removal steps for this iterator when a node
// is being removed. Implements the DOM spec's NodeIterator pre-removing steps.
func (ni *NodeIterator) preRemovingSteps(toBeRemoved *Node) {
	// "If the node being removed is an inclusive ancestor of root, terminate."
	// This handles the case where the root itself or an ancestor of root is being removed.
	if isInclusiveAncestor(toBeRemoved, ni.root) {
		return
	}
	// "If the node being removed is not an inclusive ancestor of referenceNode, terminate."
	if !isInclusiveAncestor(toBeRemoved, ni.referenceNode) {
		return
	}

	// "If the pointerBeforeReferenceNode attribute value is false, set the
	// referenceNode attribute to the first node preceding the node being
	// removed, and terminate these steps."
	if !ni.pointerBeforeReferenceNode {
		ni.referenceNode = precedingNode(toBeRemoved, ni.root)
		return
	}

	// "If there is a node following the last inclusive descendant of the node
	// being removed, set the referenceNode attribute to the first such node,
	// and terminate these steps."
	next := followingNode(lastInclusiveDescendant(toBeRemoved), ni.root)
	if next != nil {
		ni.referenceNode = next
		return
	}

	// "Set the referenceNode attribute to the first node preceding the node
	// being removed and set the pointerBeforeReferenceNode attribute to false."
	ni.referenceNode = precedingNode(toBeRemoved, ni.root)
	ni.pointerBeforeReferenceNode = false
}

// isInclusiveAncestor returns true if ancestor is an inclusive ancestor of node.
func isInclusiveAncestor(ancestor, node *Node) bool {
	for n := node; n != nil; n = n.parentNode {
		if n == ancestor {
			return true
		}
	}
	return false
}

// lastInclusiveDescendant returns the last inclusive descendant of node.
func lastInclusiveDescendant(node *Node) *Node {
	for node.lastChild != nil {
		node = node.lastChild
	}
	return node
}

// precedingNode returns the first node that precedes node in tree order,
// constrained to the subtree rooted at root. Returns nil if no such node exists.
func precedingNode(node, root *Node) *Node {
	if node == root {
		return nil
	}
	// If node has a previous sibling, return its last inclusive descendant
	if node.prevSibling != nil {
		return lastInclusiveDescendant(node.prevSibling)
	}
	// Otherwise return the parent (if within root's subtree)
	parent := node.parentNode
	if parent == root {
		return root
	}
	return parent
}

// followingNode returns the first node that follows node in tree order,
// constrained to the subtree rooted at root. Returns nil if no such node exists.
func followingNode(node, root *Node) *Node {
	// Check descendants first (first child)
	if node.firstChild != nil {
		return node.firstChild
	}
	// Then check following siblings, walking up ancestors
	for n := node; n != nil && n != root; n = n.parentNode {
		if n.nextSibling != nil {
			return n.nextSibling
		}
	}
	return nil
}

// Root returns the root node of the iterator.
func (ni *NodeIterator) Root() *Node {
	return ni.root
}

// WhatToShow returns the whatToShow value.
func (ni *NodeIterator) WhatToShow() uint32 {
	return ni.whatToShow
}

// ReferenceNode returns the reference node.
func (ni *NodeIterator) ReferenceNode() *Node {
	return ni.referenceNode
}

// PointerBeforeReferenceNode returns whether the pointer is before the reference node.
func (ni *NodeIterator) PointerBeforeReferenceNode() bool {
	return ni.pointerBeforeReferenceNode
}

// SetReferenceNode sets the reference node and pointer position.
func (ni *NodeIterator) SetReferenceNode(node *Node, before bool) {
	ni.referenceNode = node
	ni.pointerBeforeReferenceNode = before
}
