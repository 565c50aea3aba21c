package dom

// The five character-data primitives below are shared by Text, Comment,
// CDATASection (operating on nodeValue) and ProcessingInstruction
// (operating on its data field) — extracted out of the near-identical
// copies the teacher kept in text.go/comment.go/cdata_section.go/
// processinginstruction.go. All of them raise ErrIndexSize when
// offset > len(data); count is clamped to the available suffix rather
// than raising, per spec.md §4.3.

// cdSubstring returns data[offset:offset+count], clamping count to the
// available suffix. Raises ErrIndexSize if offset > len(data).
func cdSubstring(data string, offset, count int) (string, error) {
	if offset < 0 || offset > len(data) {
		return "", ErrIndexSize("offset out of bounds")
	}
	if count < 0 {
		count = 0
	}
	end := offset + count
	if end > len(data) {
		end = len(data)
	}
	return data[offset:end], nil
}

// cdInsert splices s into data at offset. Raises ErrIndexSize if
// offset > len(data).
func cdInsert(data string, offset int, s string) (string, error) {
	if offset < 0 || offset > len(data) {
		return data, ErrIndexSize("offset out of bounds")
	}
	return data[:offset] + s + data[offset:], nil
}

// cdDelete removes up to count bytes starting at offset, clamping count to
// the available suffix. Raises ErrIndexSize if offset > len(data).
func cdDelete(data string, offset, count int) (string, error) {
	if offset < 0 || offset > len(data) {
		return data, ErrIndexSize("offset out of bounds")
	}
	if count < 0 {
		count = 0
	}
	end := offset + count
	if end > len(data) {
		end = len(data)
	}
	return data[:offset] + data[end:], nil
}

// cdReplace deletes count bytes at offset (clamped) and inserts s in their
// place. Raises ErrIndexSize if offset > len(data).
func cdReplace(data string, offset, count int, s string) (string, error) {
	if offset < 0 || offset > len(data) {
		return data, ErrIndexSize("offset out of bounds")
	}
	if count < 0 {
		count = 0
	}
	end := offset + count
	if end > len(data) {
		end = len(data)
	}
	return data[:offset] + s + data[end:], nil
}
