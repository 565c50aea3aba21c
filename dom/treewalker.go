package dom

// TreeWalker provides a way to walk the document tree, optionally skipping
// or rejecting nodes via whatToShow and a NodeFilter callback.
type TreeWalker struct {
	root        *Node
	whatToShow  uint32
	filter      NodeFilter
	currentNode *Node
}

// filterNode runs the whatToShow bitmask and the callback filter (if any)
// against node, per spec.md §4.9: reject skips the subtree entirely, skip
// traverses into children without yielding the node itself.
func (tw *TreeWalker) filterNode(node *Node) NodeFilterResult {
	if !matchesShow(node, tw.whatToShow) {
		return FilterSkip
	}
	if tw.filter == nil {
		return FilterAccept
	}
	return tw.filter(node)
}

// CurrentNode returns the current node.
func (tw *TreeWalker) CurrentNode() *Node {
	return tw.currentNode
}

// SetCurrentNode sets the current node.
func (tw *TreeWalker) SetCurrentNode(node *Node) {
	tw.currentNode = node
}

// ParentNode moves to the first visible ancestor, stopping at root.
func (tw *TreeWalker) ParentNode() *Node {
	node := tw.currentNode
	for node != nil && node != tw.root {
		node = node.parentNode
		if node == nil {
			return nil
		}
		if tw.filterNode(node) == FilterAccept {
			tw.currentNode = node
			return node
		}
	}
	return nil
}

// traverseChildren implements the shared shape of FirstChild/LastChild:
// descend into the first (or last) visible child, skipping over
// FILTER_SKIP nodes and their rejected cousins per the DOM algorithm.
func (tw *TreeWalker) traverseChildren(first bool) *Node {
	node := tw.currentNode
	if first {
		node = node.firstChild
	} else {
		node = node.lastChild
	}
	for node != nil {
		result := tw.filterNode(node)
		if result == FilterAccept {
			tw.currentNode = node
			return node
		}
		if result == FilterSkip {
			var child *Node
			if first {
				child = node.firstChild
			} else {
				child = node.lastChild
			}
			if child != nil {
				node = child
				continue
			}
		}
		// FILTER_REJECT, or FILTER_SKIP with no children: walk to the next
		// candidate by sibling, ascending until one is found or we run out.
		for node != nil {
			var sibling *Node
			if first {
				sibling = node.nextSibling
			} else {
				sibling = node.prevSibling
			}
			if sibling != nil {
				node = sibling
				break
			}
			parent := node.parentNode
			if parent == nil || parent == tw.root || parent == tw.currentNode {
				return nil
			}
			node = parent
		}
	}
	return nil
}

// FirstChild moves to the first visible child.
func (tw *TreeWalker) FirstChild() *Node {
	return tw.traverseChildren(true)
}

// LastChild moves to the last visible child.
func (tw *TreeWalker) LastChild() *Node {
	return tw.traverseChildren(false)
}

// traverseSiblings implements the shared shape of NextSibling/PreviousSibling.
func (tw *TreeWalker) traverseSiblings(next bool) *Node {
	node := tw.currentNode
	if node == tw.root {
		return nil
	}
	for {
		var sibling *Node
		if next {
			sibling = node.nextSibling
		} else {
			sibling = node.prevSibling
		}
		for sibling != nil {
			node = sibling
			result := tw.filterNode(node)
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
			if next {
				sibling = node.firstChild
			} else {
				sibling = node.lastChild
			}
			if result == FilterReject || sibling == nil {
				if next {
					sibling = node.nextSibling
				} else {
					sibling = node.prevSibling
				}
			}
		}
		node = node.parentNode
		if node == nil || node == tw.root {
			return nil
		}
		if tw.filterNode(node) == FilterAccept {
			return nil
		}
	}
}

// NextSibling moves to the next visible sibling.
func (tw *TreeWalker) NextSibling() *Node {
	return tw.traverseSiblings(true)
}

// PreviousSibling moves to the previous visible sibling.
func (tw *TreeWalker) PreviousSibling() *Node {
	return tw.traverseSiblings(false)
}

// NextNode performs a full document-order walk forward, descending into
// (but not yielding) skipped subtrees and never entering rejected ones.
func (tw *TreeWalker) NextNode() *Node {
	node := tw.currentNode
	result := FilterAccept
	for {
		for result != FilterReject && node.firstChild != nil {
			node = node.firstChild
			result = tw.filterNode(node)
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
		}
		var sibling *Node
		temp := node
		for temp != nil {
			if temp == tw.root {
				return nil
			}
			sibling = temp.nextSibling
			if sibling != nil {
				break
			}
			temp = temp.parentNode
		}
		if sibling == nil {
			return nil
		}
		node = sibling
		result = tw.filterNode(node)
		if result == FilterAccept {
			tw.currentNode = node
			return node
		}
	}
}

// PreviousNode performs a full document-order walk backward.
func (tw *TreeWalker) PreviousNode() *Node {
	node := tw.currentNode
	for node != tw.root {
		sibling := node.prevSibling
		for sibling != nil {
			node = sibling
			result := tw.filterNode(node)
			for result != FilterReject && node.lastChild != nil {
				node = node.lastChild
				result = tw.filterNode(node)
			}
			if result == FilterAccept {
				tw.currentNode = node
				return node
			}
			sibling = node.prevSibling
		}
		if node == tw.root || node.parentNode == nil {
			return nil
		}
		node = node.parentNode
		if tw.filterNode(node) == FilterAccept {
			tw.currentNode = node
			return node
		}
	}
	return nil
}
