package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// nodeShape is an exported, structural snapshot of a subtree used to assert
// that CloneNode(true) produces an independent but structurally identical
// copy (§8 invariant 5: a deep clone is indistinguishable in shape from its
// source, sharing no node pointers with it).
type nodeShape struct {
	Type     NodeType
	Name     string
	Value    string
	Attrs    map[string]string
	Children []nodeShape
}

func snapshot(n *Node) nodeShape {
	s := nodeShape{Type: n.NodeType(), Name: n.NodeName()}
	if n.nodeType == TextNode || n.nodeType == CommentNode || n.nodeType == CDATASectionNode {
		s.Value = n.NodeValue()
	}
	if n.nodeType == ElementNode {
		el := (*Element)(n)
		s.Attrs = make(map[string]string)
		attrs := el.Attributes()
		for i := 0; i < attrs.Length(); i++ {
			a := attrs.Item(i)
			s.Attrs[a.Name()] = a.Value()
		}
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		s.Children = append(s.Children, snapshot(child))
	}
	return s
}

func TestCloneNode_DeepCloneIsStructurallyIdentical(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("id", "main")
	div.SetAttribute("class", "a b")
	p := doc.CreateElement("p")
	p.AsNode().AppendChild(doc.CreateTextNode("hello"))
	div.AsNode().AppendChild(p.AsNode())
	div.AsNode().AppendChild(doc.CreateComment("note"))

	clone := div.CloneNode(true)

	want := snapshot(div.AsNode())
	got := snapshot(clone.AsNode())

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deep clone structurally differs from source (-want +got):\n%s", diff)
	}
}

func TestCloneNode_DeepCloneSharesNoNodePointers(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p")
	div.AsNode().AppendChild(p.AsNode())

	clone := div.CloneNode(true)

	if clone.AsNode() == div.AsNode() {
		t.Fatal("clone must be a distinct node from the source")
	}
	if clone.AsNode().FirstChild() == p.AsNode() {
		t.Fatal("clone's children must be distinct nodes from the source's children")
	}
}

func TestCloneNode_ShallowCloneHasNoChildren(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.AsNode().AppendChild(doc.CreateElement("p").AsNode())

	clone := div.CloneNode(false)

	got := snapshot(clone.AsNode())
	if len(got.Children) != 0 {
		t.Errorf("expected shallow clone to have no children, got %d", len(got.Children))
	}
}
