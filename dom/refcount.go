package dom

import "fmt"

// Reference counting here is bookkeeping, not lifetime management: Go's
// garbage collector frees nodes whether or not anyone called Release. The
// count exists so code that hands a *Node to multiple owners (a cache, a
// live collection, a pending mutation) can assert it is still held by
// someone, and so a debug build can flag a node touched after its last
// owner released it (see validation_debug.go).

// Acquire increments the node's reference count and returns the node, so
// it can be chained at the point of storage: `cached = child.Acquire()`.
func (n *Node) Acquire() *Node {
	if n == nil {
		return nil
	}
	n.refCount++
	return n
}

// Release decrements the node's reference count. Releasing a node whose
// count is already zero panics: it means a double-release bug upstream,
// the same class of error reference counting is meant to catch. Hitting
// zero runs destroy, which detaches any remaining children and clears the
// node's own owned data.
func (n *Node) Release() {
	if n == nil {
		return
	}
	if n.refCount <= 0 {
		panic(fmt.Sprintf("dom: Release called on %s with refCount %d", n.nodeName, n.refCount))
	}
	n.refCount--
	if n.refCount == 0 {
		n.destroy()
	}
}

// destroy runs once a node's reference count reaches zero. It detaches any
// remaining children first — each detach releases that child in turn, so a
// subtree with no references held elsewhere unwinds recursively — and then
// clears the node's own kind-specific data so a stray pointer to a
// destroyed node reads back empty rather than stale.
func (n *Node) destroy() {
	for n.firstChild != nil {
		n.removeChildInternal(n.firstChild)
	}
	n.nodeValue = nil
	switch n.nodeType {
	case ElementNode:
		n.elementData = nil
	case TextNode, CDATASectionNode:
		n.textData = nil
	case CommentNode:
		n.commentData = nil
	case DocumentTypeNode:
		n.docTypeData = nil
	case DocumentNode:
		n.documentData = nil
	}
}

// RefCount returns the node's current explicit reference count. A newly
// created node reports 1, held by its creator; it is not an error to read
// or mutate a node whose count has dropped to zero, since Go's GC — not
// this count — governs its lifetime.
func (n *Node) RefCount() int {
	if n == nil {
		return 0
	}
	return int(n.refCount)
}

// Generation returns the node's mutation counter. It increases whenever a
// childList, attribute, or character-data mutation is notified for this
// node (see mutation_callback.go). Callers that cache a derived value from
// the tree (a live collection's last snapshot) can compare generations
// instead of re-walking to detect staleness.
func (n *Node) Generation() uint64 {
	if n == nil {
		return 0
	}
	return n.generation
}

// bumpGeneration advances this node's mutation counter and, since a change
// anywhere in a subtree should invalidate anything cached at an ancestor,
// every ancestor's counter up to the root.
func (n *Node) bumpGeneration() {
	for cur := n; cur != nil; cur = cur.parentNode {
		cur.generation++
	}
}
