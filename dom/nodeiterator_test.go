package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIteratorTree(doc *Document) *Element {
	root := doc.CreateElement("div")
	p := doc.CreateElement("p")
	span := doc.CreateElement("span")
	text := doc.CreateTextNode("hi")

	root.AsNode().AppendChild(p.AsNode())
	root.AsNode().AppendChild(span.AsNode())
	span.AsNode().AppendChild(text)

	return root
}

func TestNodeIterator_NextNodeWalksDocumentOrder(t *testing.T) {
	doc := NewDocument()
	root := buildIteratorTree(doc)

	it := doc.CreateNodeIterator(root.AsNode(), ShowAll, nil)

	var names []string
	for n := it.NextNode(); n != nil; n = it.NextNode() {
		names = append(names, n.NodeName())
	}

	require.Len(t, names, 3)
	assert.Equal(t, []string{"P", "SPAN", "#text"}, names)
}

func TestNodeIterator_WhatToShowFiltersByType(t *testing.T) {
	doc := NewDocument()
	root := buildIteratorTree(doc)

	it := doc.CreateNodeIterator(root.AsNode(), ShowElement, nil)

	var names []string
	for n := it.NextNode(); n != nil; n = it.NextNode() {
		names = append(names, n.NodeName())
	}
	assert.Equal(t, []string{"P", "SPAN"}, names)
}

func TestNodeIterator_RejectAndSkipAreEquivalent(t *testing.T) {
	doc := NewDocument()
	root := buildIteratorTree(doc)

	rejectFilter := func(n *Node) NodeFilterResult {
		if n.NodeName() == "P" {
			return FilterReject
		}
		return FilterAccept
	}
	skipFilter := func(n *Node) NodeFilterResult {
		if n.NodeName() == "P" {
			return FilterSkip
		}
		return FilterAccept
	}

	reject := doc.CreateNodeIterator(root.AsNode(), ShowAll, rejectFilter)
	skip := doc.CreateNodeIterator(root.AsNode(), ShowAll, skipFilter)

	var rejectNames, skipNames []string
	for n := reject.NextNode(); n != nil; n = reject.NextNode() {
		rejectNames = append(rejectNames, n.NodeName())
	}
	for n := skip.NextNode(); n != nil; n = skip.NextNode() {
		skipNames = append(skipNames, n.NodeName())
	}

	assert.Equal(t, rejectNames, skipNames, "reject and skip must behave identically for NodeIterator")
}

func TestNodeIterator_PreviousNodeReversesNextNode(t *testing.T) {
	doc := NewDocument()
	root := buildIteratorTree(doc)

	it := doc.CreateNodeIterator(root.AsNode(), ShowAll, nil)
	for it.NextNode() != nil {
	}

	var names []string
	for n := it.PreviousNode(); n != nil; n = it.PreviousNode() {
		names = append(names, n.NodeName())
	}
	assert.Equal(t, []string{"#text", "SPAN", "P"}, names)
}
