package dom

// Comment represents a comment node in the DOM.
type Comment Node

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CommentNode (8).
func (c *Comment) NodeType() NodeType {
	return CommentNode
}

// NodeName returns "#comment".
func (c *Comment) NodeName() string {
	return "#comment"
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return c.AsNode().NodeValue()
}

// SetData sets the comment content.
func (c *Comment) SetData(data string) {
	c.AsNode().SetNodeValue(data)
}

// Length returns the length of the comment content.
func (c *Comment) Length() int {
	return len(c.Data())
}

// SubstringData extracts a substring of the comment. Raises ErrIndexSize
// when offset exceeds the data's length.
func (c *Comment) SubstringData(offset, count int) (string, error) {
	return cdSubstring(c.Data(), offset, count)
}

// AppendData appends a string to the comment.
func (c *Comment) AppendData(data string) {
	c.SetData(c.Data() + data)
}

// InsertData inserts a string at the given offset.
func (c *Comment) InsertData(offset int, data string) error {
	next, err := cdInsert(c.Data(), offset, data)
	if err != nil {
		return err
	}
	c.SetData(next)
	return nil
}

// DeleteData deletes characters starting at the given offset.
func (c *Comment) DeleteData(offset, count int) error {
	next, err := cdDelete(c.Data(), offset, count)
	if err != nil {
		return err
	}
	c.SetData(next)
	return nil
}

// ReplaceData replaces characters starting at the given offset.
func (c *Comment) ReplaceData(offset, count int, data string) error {
	next, err := cdReplace(c.Data(), offset, count, data)
	if err != nil {
		return err
	}
	c.SetData(next)
	return nil
}

// CloneNode clones this comment node.
func (c *Comment) CloneNode(deep bool) *Comment {
	clone := c.AsNode().ownerDoc.CreateComment(c.Data())
	return (*Comment)(clone)
}

// Before inserts nodes before this comment node.
func (c *Comment) Before(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	for _, item := range nodes {
		var node *Node
		switch v := item.(type) {
		case *Node:
			node = v
		case *Element:
			node = v.AsNode()
		case string:
			node = c.AsNode().ownerDoc.CreateTextNode(v)
		}
		if node != nil {
			parent.InsertBefore(node, c.AsNode())
		}
	}
}

// After inserts nodes after this comment node.
func (c *Comment) After(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	ref := c.AsNode().nextSibling
	for _, item := range nodes {
		var node *Node
		switch v := item.(type) {
		case *Node:
			node = v
		case *Element:
			node = v.AsNode()
		case string:
			node = c.AsNode().ownerDoc.CreateTextNode(v)
		}
		if node != nil {
			parent.InsertBefore(node, ref)
		}
	}
}

// ReplaceWith replaces this comment node with nodes.
func (c *Comment) ReplaceWith(nodes ...interface{}) {
	parent := c.AsNode().parentNode
	if parent == nil {
		return
	}
	ref := c.AsNode().nextSibling
	parent.RemoveChild(c.AsNode())
	for _, item := range nodes {
		var node *Node
		switch v := item.(type) {
		case *Node:
			node = v
		case *Element:
			node = v.AsNode()
		case string:
			node = c.AsNode().ownerDoc.CreateTextNode(v)
		}
		if node != nil {
			parent.InsertBefore(node, ref)
		}
	}
}

// Remove removes this comment node from its parent.
func (c *Comment) Remove() {
	if c.AsNode().parentNode != nil {
		c.AsNode().parentNode.RemoveChild(c.AsNode())
	}
}
