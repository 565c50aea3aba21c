package dom

import "testing"

func buildSampleTree(doc *Document) *Element {
	div := doc.CreateElement("div")
	text := doc.CreateTextNode("ignored")
	p := doc.CreateElement("p")
	comment := doc.CreateComment("ignored too")
	span := doc.CreateElement("span")
	em := doc.CreateElement("em")

	div.AsNode().AppendChild(text)
	div.AsNode().AppendChild(p.AsNode())
	div.AsNode().AppendChild(comment)
	div.AsNode().AppendChild(span.AsNode())
	span.AsNode().AppendChild(em.AsNode())

	return div
}

func TestElementIterator_SkipsNonElements(t *testing.T) {
	doc := NewDocument()
	div := buildSampleTree(doc)

	it := NewElementIterator(div.AsNode())

	var tags []string
	for el := it.Next(); el != nil; el = it.Next() {
		tags = append(tags, el.TagName())
	}

	want := []string{"P", "SPAN", "EM"}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], tags[i])
		}
	}
}

func TestElementIterator_ExcludesRoot(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	child := doc.CreateElement("p")
	div.AsNode().AppendChild(child.AsNode())

	it := NewElementIterator(div.AsNode())
	first := it.Next()
	if first != child {
		t.Fatalf("expected first yielded element to be the child, not root")
	}
	if it.Next() != nil {
		t.Fatal("expected iterator to be exhausted after the only child")
	}
}

func TestElementIterator_Reset(t *testing.T) {
	doc := NewDocument()
	div := buildSampleTree(doc)

	it := NewElementIterator(div.AsNode())
	it.Next()
	it.Next()
	it.Reset()

	first := it.Next()
	if first == nil || first.TagName() != "P" {
		t.Fatalf("expected reset to restart at P, got %v", first)
	}
}

func TestElementIterator_EmptyRootYieldsNothing(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")

	it := NewElementIterator(div.AsNode())
	if it.Next() != nil {
		t.Fatal("expected no elements for a childless root")
	}
}
