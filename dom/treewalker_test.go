package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeWalker_NextNodeSkipsRejectedSubtree(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	rejected := doc.CreateElement("section")
	rejectedChild := doc.CreateElement("b")
	kept := doc.CreateElement("p")

	root.AsNode().AppendChild(rejected.AsNode())
	rejected.AsNode().AppendChild(rejectedChild.AsNode())
	root.AsNode().AppendChild(kept.AsNode())

	filter := func(n *Node) NodeFilterResult {
		if n.NodeName() == "SECTION" {
			return FilterReject
		}
		return FilterAccept
	}

	tw := doc.CreateTreeWalker(root.AsNode(), ShowAll, filter)

	var seen []string
	for n := tw.NextNode(); n != nil; n = tw.NextNode() {
		seen = append(seen, n.NodeName())
	}

	assert.Equal(t, []string{"P"}, seen, "rejected subtree must not be entered at all")
}

func TestTreeWalker_NextNodeDescendsIntoSkippedSubtree(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	skipped := doc.CreateElement("section")
	skippedChild := doc.CreateElement("b")

	root.AsNode().AppendChild(skipped.AsNode())
	skipped.AsNode().AppendChild(skippedChild.AsNode())

	filter := func(n *Node) NodeFilterResult {
		if n.NodeName() == "SECTION" {
			return FilterSkip
		}
		return FilterAccept
	}

	tw := doc.CreateTreeWalker(root.AsNode(), ShowAll, filter)

	var seen []string
	for n := tw.NextNode(); n != nil; n = tw.NextNode() {
		seen = append(seen, n.NodeName())
	}

	assert.Equal(t, []string{"B"}, seen, "skipped node itself must not be yielded, but its children must still be visited")
}

func TestTreeWalker_FirstChildLastChildSkipOverRejected(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	first := doc.CreateElement("section")
	second := doc.CreateElement("p")
	third := doc.CreateElement("span")

	root.AsNode().AppendChild(first.AsNode())
	root.AsNode().AppendChild(second.AsNode())
	root.AsNode().AppendChild(third.AsNode())

	filter := func(n *Node) NodeFilterResult {
		if n.NodeName() == "SECTION" || n.NodeName() == "SPAN" {
			return FilterReject
		}
		return FilterAccept
	}

	tw := doc.CreateTreeWalker(root.AsNode(), ShowAll, filter)

	fc := tw.FirstChild()
	assert.NotNil(t, fc)
	assert.Equal(t, "P", fc.NodeName())

	tw.SetCurrentNode(root.AsNode())
	lc := tw.LastChild()
	assert.NotNil(t, lc)
	assert.Equal(t, "P", lc.NodeName())
}

func TestTreeWalker_ParentNodeReachesButNotPastRoot(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	child := doc.CreateElement("p")
	root.AsNode().AppendChild(child.AsNode())

	tw := doc.CreateTreeWalker(root.AsNode(), ShowAll, nil)
	tw.SetCurrentNode(child.AsNode())

	assert.Equal(t, root.AsNode(), tw.ParentNode(), "ParentNode may ascend as far as root itself")

	// Now sitting at root; nothing further up to ascend to.
	assert.Nil(t, tw.ParentNode(), "ParentNode must not ascend past root")
}
