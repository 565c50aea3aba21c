package dom

import "testing"

// asDOMError unwraps the *DOMError behind an error return, failing the
// test if err is nil or not a *DOMError.
func asDOMError(t *testing.T, err error) *DOMError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	domErr, ok := err.(*DOMError)
	if !ok {
		t.Fatalf("expected *DOMError, got %T", err)
	}
	return domErr
}

func TestText_IndexSizeErrorOnOutOfBoundsOffset(t *testing.T) {
	doc := NewDocument()
	text := (*Text)(doc.CreateTextNode("hello"))

	if _, err := text.SubstringData(10, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %s", err)
	}
	if err := text.InsertData(10, "x"); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %s", err)
	}
	if err := text.DeleteData(10, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %s", err)
	}
	if err := text.ReplaceData(10, 1, "x"); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %s", err)
	}
}

func TestText_CountClampsRatherThanErrors(t *testing.T) {
	doc := NewDocument()
	text := (*Text)(doc.CreateTextNode("hello"))

	got, err := text.SubstringData(2, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "llo" {
		t.Errorf("expected clamped substring 'llo', got %q", got)
	}

	if err := text.DeleteData(2, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.Data() != "he" {
		t.Errorf("expected 'he' after clamped delete, got %q", text.Data())
	}
}

func TestComment_IndexSizeErrorOnOutOfBoundsOffset(t *testing.T) {
	doc := NewDocument()
	comment := (*Comment)(doc.CreateComment("hi"))

	if _, err := comment.SubstringData(5, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
	if err := comment.ReplaceData(5, 1, "x"); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
}

func TestCDATASection_IndexSizeErrorOnOutOfBoundsOffset(t *testing.T) {
	doc := NewXMLDocument()
	cdata, err := doc.CreateCDATASectionWithError("hi")
	if err != nil {
		t.Fatalf("unexpected error creating CDATASection: %v", err)
	}
	c := (*CDATASection)(cdata)

	if _, err := c.SubstringData(5, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
	if err := c.InsertData(5, "x"); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
}

func TestProcessingInstruction_IndexSizeErrorOnOutOfBoundsOffset(t *testing.T) {
	doc := NewDocument()
	pi := (*ProcessingInstruction)(doc.CreateProcessingInstruction("xml-stylesheet", "href=\"a.css\""))

	if _, err := pi.SubstringData(100, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
	if err := pi.DeleteData(100, 1); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}
	if err := pi.ReplaceData(100, 1, "x"); asDOMError(t, err).Name != "IndexSizeError" {
		t.Errorf("expected IndexSizeError, got %v", err)
	}

	// In-bounds operations still work normally.
	if err := pi.InsertData(0, "<!-- "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pi.Data() != "<!-- href=\"a.css\"" {
		t.Errorf("unexpected data after insert: %q", pi.Data())
	}
}
