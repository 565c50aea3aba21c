package dom

import "testing"

func TestNode_AcquireReleaseRefCount(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div").AsNode()

	if el.RefCount() != 1 {
		t.Fatalf("expected a freshly created node to be born with RefCount 1, got %d", el.RefCount())
	}

	el.Acquire()
	el.Acquire()
	if el.RefCount() != 3 {
		t.Fatalf("expected RefCount 3 after two extra Acquire calls, got %d", el.RefCount())
	}

	el.Release()
	if el.RefCount() != 2 {
		t.Fatalf("expected RefCount 2 after one Release, got %d", el.RefCount())
	}
}

func TestNode_AcquireReturnsSelfForChaining(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div").AsNode()

	cached := el.Acquire()
	if cached != el {
		t.Fatal("Acquire should return the same node it was called on")
	}
}

func TestNode_ReleaseOnZeroCountPanics(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div").AsNode()

	// The creator's own reference brings it to zero first; a second
	// Release is the double-release bug this is meant to catch.
	el.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Release on a zero refCount to panic")
		}
	}()
	el.Release()
}

func TestNode_InsertAddsParentReference(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p").AsNode()

	div.AsNode().AppendChild(p)
	if p.RefCount() != 2 {
		t.Fatalf("expected RefCount 2 after attach (creator + parent), got %d", p.RefCount())
	}

	div.AsNode().RemoveChild(p)
	if p.RefCount() != 1 {
		t.Fatalf("expected RefCount 1 after detach (back to the caller), got %d", p.RefCount())
	}
}

func TestNode_ReleaseToZeroDestroysSubtree(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p")
	div.AsNode().AppendChild(p.AsNode())
	p.SetAttribute("id", "x")

	// div is only held by its creator; releasing that reference runs
	// destroy(), which must detach and release p in turn.
	div.AsNode().Release()

	if div.AsNode().FirstChild() != nil {
		t.Error("expected destroy() to detach children")
	}
	if div.AsNode().elementData != nil {
		t.Error("expected destroy() to clear the node's owned elementData")
	}
}

func TestNode_GenerationBumpsOnChildListMutation(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	before := div.AsNode().Generation()

	p := doc.CreateElement("p")
	div.AsNode().AppendChild(p.AsNode())

	if div.AsNode().Generation() <= before {
		t.Fatalf("expected generation to advance after AppendChild, before=%d after=%d", before, div.AsNode().Generation())
	}
}

func TestNode_GenerationPropagatesToAncestors(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("div")
	child := doc.CreateElement("p")
	root.AsNode().AppendChild(child.AsNode())

	rootGen := root.AsNode().Generation()

	grandchild := doc.CreateElement("span")
	child.AsNode().AppendChild(grandchild.AsNode())

	if root.AsNode().Generation() <= rootGen {
		t.Fatal("expected a mutation on a descendant to bump the root's generation too")
	}
}

func TestNode_GenerationBumpsOnAttributeMutation(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	before := el.AsNode().Generation()

	el.SetAttribute("id", "main")

	if el.AsNode().Generation() <= before {
		t.Fatal("expected generation to advance after SetAttribute")
	}
}

func TestNode_GenerationBumpsOnCharacterDataMutation(t *testing.T) {
	doc := NewDocument()
	text := (*Text)(doc.CreateTextNode("hello"))
	before := text.AsNode().Generation()

	text.AppendData(" world")

	if text.AsNode().Generation() <= before {
		t.Fatal("expected generation to advance after AppendData")
	}
}

func TestNode_IsConnectedTracksAttachAndDetach(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	p := doc.CreateElement("p")

	if div.AsNode().IsConnected() {
		t.Fatal("a freshly created element must not be connected")
	}

	doc.AsNode().AppendChild(div.AsNode())
	if !div.AsNode().IsConnected() {
		t.Fatal("expected element to be connected once attached to the document")
	}

	div.AsNode().AppendChild(p.AsNode())
	if !p.AsNode().IsConnected() {
		t.Fatal("expected a child appended to an already-connected parent to be connected too")
	}

	doc.AsNode().RemoveChild(div.AsNode())
	if div.AsNode().IsConnected() || p.AsNode().IsConnected() {
		t.Fatal("expected the whole subtree to become disconnected on removal")
	}
}

func TestNode_NilReceiverMethodsAreSafe(t *testing.T) {
	var n *Node
	if n.RefCount() != 0 {
		t.Error("nil node RefCount should be 0")
	}
	if n.Generation() != 0 {
		t.Error("nil node Generation should be 0")
	}
	n.Acquire()
	n.Release()
}
