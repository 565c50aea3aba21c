package dom

// QualifiedName is the immutable (namespace, prefix, local) triple that
// identifies an element tag or an attribute, per spec.md §3/§4.2. A nil
// NamespaceURI and the empty-string namespace are distinct, matching the
// DOM's own null-vs-"" namespace distinction.
type QualifiedName struct {
	NamespaceURI *string
	Prefix       *string
	Local        string
}

// NewQualifiedName builds a QualifiedName from loose strings, the shape
// every call site in this package already has on hand (Element/Attr
// constructors take namespaceURI/prefix/localName as plain strings).
// An empty namespaceURI/prefix string is treated as null, matching the
// convention used throughout element.go and attr.go.
func NewQualifiedName(namespaceURI, prefix, local string) QualifiedName {
	qn := QualifiedName{Local: local}
	if namespaceURI != "" {
		qn.NamespaceURI = internString(namespaceURI)
	}
	if prefix != "" {
		qn.Prefix = internString(prefix)
	}
	return qn
}

// qnameInterned is a process-wide intern table for namespace and prefix
// strings, so that two QualifiedNames built from equal strings share the
// same *string and can be compared with the pointer-equality fast path.
// A DOM tree's namespace vocabulary is tiny and fixed (XHTML, SVG, MathML,
// XML, XMLNS, ...) so a single unbounded table never becomes a real
// footprint concern, unlike interning arbitrary user content would.
var qnameInterned = make(map[string]*string)

func internString(s string) *string {
	if p, ok := qnameInterned[s]; ok {
		return p
	}
	p := new(string)
	*p = s
	qnameInterned[s] = p
	return p
}

// NamespaceString returns the namespace URI, or "" if null.
func (qn QualifiedName) NamespaceString() string {
	if qn.NamespaceURI == nil {
		return ""
	}
	return *qn.NamespaceURI
}

// PrefixString returns the prefix, or "" if null.
func (qn QualifiedName) PrefixString() string {
	if qn.Prefix == nil {
		return ""
	}
	return *qn.Prefix
}

// QualifiedString returns "prefix:local", or just "local" when prefix is null.
func (qn QualifiedName) QualifiedString() string {
	if qn.Prefix == nil {
		return qn.Local
	}
	return *qn.Prefix + ":" + qn.Local
}

// IdentityEqual is the pointer-equality fast path: true only when all three
// fields are backed by the same interned strings (or both null). It is a
// stricter, cheaper check than Equal and can false-negative on two
// qualified names built outside this package's interning helpers.
func (qn QualifiedName) IdentityEqual(other QualifiedName) bool {
	return qn.NamespaceURI == other.NamespaceURI &&
		qn.Prefix == other.Prefix &&
		qn.Local == other.Local
}

// Equal is value equality by (local, namespace), ignoring prefix — the
// comparison the DOM spec actually uses for "same attribute" / "same tag"
// across namespace-aware operations (setAttributeNS replacement,
// getElementsByTagNameNS matching).
func (qn QualifiedName) Equal(other QualifiedName) bool {
	if qn.Local != other.Local {
		return false
	}
	return qn.NamespaceString() == other.NamespaceString()
}
