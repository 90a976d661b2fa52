package tripn

// NodeType classifies one of the three nodes (subject, predicate, object)
// handed to a StatementSink, or the node handed to an EndSink.
type NodeType int

const (
	// NodeNone marks an absent node, e.g. the predicate and object of the
	// EmptyS statement that announces an empty "[]" subject.
	NodeNone NodeType = iota
	// NodeURI is an IRI reference exactly as written between '<' and '>',
	// which may be relative; resolving it against a base is an env
	// concern, not a reader concern. The pinned rdf:first/rest/nil and
	// the rdf:type of the "a" verb are also NodeURI.
	NodeURI
	// NodeCURIE is unresolved "prefix:local" lexical text exactly as
	// read from the document; expanding it against a prefix table is an
	// env concern, not a reader concern.
	NodeCURIE
	// NodeBlank is a blank node identifier, either document-supplied
	// (rewritten through genid/docid, see reader.go) or machine-generated
	// for an anonymous "[...]" or collection "(...)" node.
	NodeBlank
	// NodeLiteral is a quoted lexical value, optionally carrying a
	// language tag or a datatype.
	NodeLiteral
)

func (t NodeType) String() string {
	switch t {
	case NodeURI:
		return "uri"
	case NodeCURIE:
		return "curie"
	case NodeBlank:
		return "blank"
	case NodeLiteral:
		return "literal"
	default:
		return "none"
	}
}

// NodeFlags carries lexical hints about a literal's source text that a
// writer needs to pick an output quoting style, without having to
// re-scan the value.
type NodeFlags uint8

const (
	// HasNewline means the literal's lexical form contains a raw '\n' or
	// '\r' and so needs triple-quoting (or escaping) on output.
	HasNewline NodeFlags = 1 << iota
	// HasQuote means the lexical form contains a raw '"', relevant to
	// the same decision.
	HasQuote
)

// Node is one of the (up to) three values of an emitted statement.
type Node struct {
	Type NodeType
	// Value is the raw lexical value: an IRI, "prefix:local", a blank
	// node id, or a literal's quoted content.
	Value []byte
	// DatatypeURI/DatatypeCURIE hold a literal's ^^ datatype, mutually
	// exclusive depending on whether the document wrote it as an IRIREF
	// or a prefixed name. Both nil for a plain or language-tagged literal.
	DatatypeURI   []byte
	DatatypeCURIE []byte
	// Lang holds a literal's @language tag, or nil.
	Lang  []byte
	Flags NodeFlags
}

// StatementFlags annotates a statement with the shape of list/anonymous
// node context it was emitted within, letting a sink reconstruct nesting
// without its own lookahead.
type StatementFlags uint16

const (
	// EmptyS marks a statement whose subject is an empty anonymous node,
	// "[]", as opposed to one that opens or continues a predicateObjectList.
	EmptyS StatementFlags = 1 << iota
	// EmptyO is the object-position equivalent of EmptyS.
	EmptyO
	// AnonSBegin marks the first statement of a subject anonymous node's
	// own predicateObjectList, i.e. the S position is a node about to be
	// further described, not a leaf.
	AnonSBegin
	// AnonOBegin is the object-position equivalent of AnonSBegin.
	AnonOBegin
	// AnonCont marks a statement whose subject is an anonymous node being
	// continued from a previous AnonSBegin/AnonOBegin, rather than begun
	// or closed by this statement.
	AnonCont
	// ListSBegin marks the first rdf:first/rdf:rest triple of a
	// collection appearing in subject position.
	ListSBegin
	// ListOBegin is the object-position equivalent of ListSBegin.
	ListOBegin
	// ListCont marks a statement continuing a previously begun collection.
	ListCont
)

// pinnedNodes are the three fixed IRIs every collection expansion emits:
// rdf:first, rdf:rest and rdf:nil. They are pushed once, at the very
// bottom of the arena, when a Reader is constructed, and never popped -
// ordinary LIFO bookkeeping would otherwise panic the first time a
// collection unwound past them.
type pinnedNodes struct {
	first Ref
	rest  Ref
	nil_  Ref
}

const (
	rdfFirstURI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	rdfRestURI  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	rdfNilURI   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	rdfTypeURI  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

func newPinnedNodes(a *arena) pinnedNodes {
	return pinnedNodes{
		first: a.pushString([]byte(rdfFirstURI)),
		rest:  a.pushString([]byte(rdfRestURI)),
		nil_:  a.pushString([]byte(rdfNilURI)),
	}
}

// isPinned reports whether ref is one of the permanent rdf:first/rest/nil
// allocations, which popString must leave alone.
func (p pinnedNodes) isPinned(ref Ref) bool {
	return ref == p.first || ref == p.rest || ref == p.nil_
}

// popString pops ref from the reader's arena unless it is one of the
// pinned collection nodes, which live for the lifetime of the Reader.
func (r *Reader) popString(ref Ref) {
	if r.pinned.isPinned(ref) {
		return
	}
	r.arena.pop(ref)
}
