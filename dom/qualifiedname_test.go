package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiedName_EqualIgnoresPrefix(t *testing.T) {
	a := NewQualifiedName("http://www.w3.org/1999/xhtml", "html", "div")
	b := NewQualifiedName("http://www.w3.org/1999/xhtml", "other", "div")

	assert.True(t, a.Equal(b), "Equal should ignore differing prefixes")
	assert.False(t, a.IdentityEqual(b), "IdentityEqual must distinguish differing prefixes")
}

func TestQualifiedName_EqualRequiresSameNamespaceAndLocal(t *testing.T) {
	a := NewQualifiedName("http://www.w3.org/1999/xhtml", "", "div")
	b := NewQualifiedName("http://www.w3.org/2000/svg", "", "div")
	c := NewQualifiedName("http://www.w3.org/1999/xhtml", "", "span")

	assert.False(t, a.Equal(b), "different namespaces must not be Equal")
	assert.False(t, a.Equal(c), "different local names must not be Equal")
}

func TestQualifiedName_IdentityEqualViaInterning(t *testing.T) {
	a := NewQualifiedName("http://www.w3.org/1999/xhtml", "html", "div")
	b := NewQualifiedName("http://www.w3.org/1999/xhtml", "html", "div")

	require.True(t, a.IdentityEqual(b), "names built from equal strings should share interned pointers")
	assert.Same(t, a.NamespaceURI, b.NamespaceURI)
	assert.Same(t, a.Prefix, b.Prefix)
}

func TestQualifiedName_NullNamespaceDistinctFromEmpty(t *testing.T) {
	noNamespace := NewQualifiedName("", "", "div")
	assert.Nil(t, noNamespace.NamespaceURI)
	assert.Equal(t, "", noNamespace.NamespaceString())
}

func TestQualifiedName_QualifiedString(t *testing.T) {
	withPrefix := NewQualifiedName("http://www.w3.org/1999/xhtml", "x", "div")
	assert.Equal(t, "x:div", withPrefix.QualifiedString())

	withoutPrefix := NewQualifiedName("http://www.w3.org/1999/xhtml", "", "div")
	assert.Equal(t, "div", withoutPrefix.QualifiedString())
}

func TestElement_QName(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElementNS("http://www.w3.org/2000/svg", "svg:rect")

	qn := el.QName()
	assert.Equal(t, "rect", qn.Local)
	assert.Equal(t, "http://www.w3.org/2000/svg", qn.NamespaceString())
	assert.Equal(t, "svg", qn.PrefixString())
}

func TestAttr_QName(t *testing.T) {
	doc := NewDocument()
	attr := doc.CreateAttributeNS("http://www.w3.org/1999/xlink", "xlink:href")

	qn := attr.QName()
	assert.Equal(t, "href", qn.Local)
	assert.Equal(t, "http://www.w3.org/1999/xlink", qn.NamespaceString())
}
