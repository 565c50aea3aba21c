//go:build domdebug

package dom

import "fmt"

// This file only builds with -tags domdebug. It adds leak assertions on
// top of the refCount bookkeeping in refcount.go, for use in tests that
// want to catch a node still externally held after the scope that should
// have released it has ended.
//
// Every node reachable through a document's tree carries exactly one
// baseline reference: the document itself is born holding its own (never
// inserted anywhere, so never Acquired by a parent); every other node is
// attached, so its baseline is the single Acquire its parent performed on
// insertion. A caller that drops its own creation reference once a node
// is handed to the tree (the expected idiom — see refcount.go) leaves
// every reachable node at RefCount() == 1. Anything higher means someone
// is still holding an extra, un-Released reference.
func (d *Document) AssertNoLeaks() {
	assertSubtreeNoLeaks(d.AsNode())
}

func assertSubtreeNoLeaks(n *Node) {
	if n == nil {
		return
	}
	if n.RefCount() > 1 {
		panic(fmt.Sprintf("dom: leak detected: %s still held with refCount %d (expected 1)", n.nodeName, n.RefCount()))
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		assertSubtreeNoLeaks(child)
	}
}
