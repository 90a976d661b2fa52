package tripn

import (
	"io"

	"github.com/sirupsen/logrus"
)

// StatementSink receives one emitted triple at a time. subject and
// predicate are never NodeLiteral; object may be any node type. flags
// describes the list/anonymous-node shape the statement was read within.
type StatementSink func(subject, predicate, object Node, flags StatementFlags) error

// BaseSink is notified of an @base directive's raw IRI reference, not
// yet resolved against anything - see package env for resolution.
type BaseSink func(uri []byte) error

// PrefixSink is notified of an @prefix directive's name and raw IRI
// reference.
type PrefixSink func(name, uri []byte) error

// EndSink is notified when an anonymous "[ ... ]" node's closing bracket
// is reached, after every statement describing it has already been
// emitted to StatementSink.
type EndSink func(node Node) error

// Reader is a streaming, recursive-descent Turtle/N-Triples parser. It
// holds no knowledge of CURIE expansion or base-URI resolution: it emits
// exactly the lexical text the document spelled out, leaving expansion
// to a collaborator such as package env.
type Reader struct {
	cur Cursor
	log *logrus.Logger

	arena  *arena
	buf    *inputBuffer
	pinned pinnedNodes

	blankPrefix string
	genID       uint64

	onStatement StatementSink
	onBase      BaseSink
	onPrefix    PrefixSink
	onEnd       EndSink
}

// Option configures a Reader at construction time.
type Option func(*Reader)

func WithLogger(log *logrus.Logger) Option {
	return func(r *Reader) { r.log = log }
}

// WithBlankPrefix sets the string prepended to every blank node id this
// Reader mints, so that ids from two concurrently read documents never
// collide once merged into one graph.
func WithBlankPrefix(prefix string) Option {
	return func(r *Reader) { r.blankPrefix = prefix }
}

func WithStatementSink(fn StatementSink) Option {
	return func(r *Reader) { r.onStatement = fn }
}

func WithBaseSink(fn BaseSink) Option {
	return func(r *Reader) { r.onBase = fn }
}

func WithPrefixSink(fn PrefixSink) Option {
	return func(r *Reader) { r.onPrefix = fn }
}

func WithEndSink(fn EndSink) Option {
	return func(r *Reader) { r.onEnd = fn }
}

// NewReader constructs a Reader ready to have ReadFile or ReadString
// called on it, possibly more than once with different input.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		log:   logrus.StandardLogger(),
		arena: newArena(),
	}
	r.pinned = newPinnedNodes(r.arena)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetBlankPrefix changes the blank-id prefix between reads.
func (r *Reader) SetBlankPrefix(prefix string) { r.blankPrefix = prefix }

// ReadFile parses a whole Turtle/N-Triples document from f, paging it in
// double-buffered 4 KiB chunks. name is used in diagnostics only.
func (r *Reader) ReadFile(f io.Reader, name string) error {
	r.cur = newCursor(name)
	r.buf = newFileInputBuffer(f)
	if err := r.buf.start(); err != nil {
		return err
	}
	return r.readDoc()
}

// ReadString parses a whole document already resident in memory. The
// slice is copied into the Reader's input buffer (with a trailing NUL)
// before parsing starts; it is not aliased.
func (r *Reader) ReadString(src []byte, name string) error {
	r.cur = newCursor(name)
	r.buf = newMemoryInputBuffer(src)
	return r.readDoc()
}

func (r *Reader) rdfFirstNode() Node {
	return Node{Type: NodeURI, Value: r.arena.bytes(r.pinned.first)}
}

func (r *Reader) rdfRestNode() Node {
	return Node{Type: NodeURI, Value: r.arena.bytes(r.pinned.rest)}
}

func (r *Reader) rdfNilNode() Node {
	return Node{Type: NodeURI, Value: r.arena.bytes(r.pinned.nil_)}
}

func (r *Reader) genBlankID() []byte {
	r.genID++
	buf := []byte(r.blankPrefix + "genid")
	return appendUint(buf, r.genID)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, digits[i:]...)
}

func (r *Reader) emitStatement(subject, predicate, object Node, flags StatementFlags) error {
	if r.onStatement == nil {
		return nil
	}
	return r.onStatement(subject, predicate, object, flags)
}

// readDoc implements turtleDoc := statement* .
func (r *Reader) readDoc() error {
	for {
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if r.buf.peek() == 0 {
			return nil
		}
		mark := r.arena.size()
		if err := r.readStatement(); err != nil {
			r.arena.truncate(mark)
			if _, ok := err.(*SyntaxError); !ok {
				// A sink's own error: report it as a cancellation.
				err = &SyntaxError{Cursor: r.cur, Kind: ErrUnknown, cause: err}
			}
			return err
		}
	}
}

func (r *Reader) skipWSAndComments() error {
	for {
		switch c := r.buf.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.consumeByte()
		case c == '#':
			for {
				c2 := r.buf.peek()
				if c2 == 0 || c2 == '\n' {
					break
				}
				r.consumeByte()
			}
		default:
			return nil
		}
	}
}

// readStatement implements statement := directive | triples '.' .
func (r *Reader) readStatement() error {
	if r.buf.peek() == '@' {
		return r.readDirective()
	}
	return r.readTriples()
}

func (r *Reader) readKeyword() (string, error) {
	var buf []byte
	for isAlpha(r.buf.peek()) {
		buf = append(buf, r.consumeByte())
	}
	if len(buf) == 0 {
		return "", r.syntaxErr("expected a directive keyword after '@'")
	}
	return string(buf), nil
}

func (r *Reader) readDirective() error {
	r.consumeByte() // '@'
	kw, err := r.readKeyword()
	if err != nil {
		return err
	}
	switch kw {
	case "prefix":
		return r.readPrefixID()
	case "base":
		return r.readBaseDirective()
	default:
		return r.syntaxErr("unknown directive @%s", kw)
	}
}

func (r *Reader) readPrefixID() error {
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	nameRef := r.arena.pushString(nil)
	for isNameChar(r.buf.peek()) {
		if err := r.consumeRaw(nameRef); err != nil {
			return err
		}
	}
	if c, ok := r.buf.eat(':'); !ok {
		return r.syntaxErr("expected ':' after prefix name, got %q", c)
	}
	r.cur.advance(':')
	name := append([]byte(nil), r.arena.bytes(nameRef)...)
	r.popString(nameRef)

	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	uriRef := r.arena.pushString(nil)
	if err := r.readIRIREF(uriRef); err != nil {
		return err
	}
	uri := append([]byte(nil), r.arena.bytes(uriRef)...)
	r.popString(uriRef)

	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if c, ok := r.buf.eat('.'); !ok {
		return r.syntaxErr("expected '.' after @prefix directive, got %q", c)
	}
	r.cur.advance('.')

	if r.onPrefix != nil {
		return r.onPrefix(name, uri)
	}
	return nil
}

func (r *Reader) readBaseDirective() error {
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	uriRef := r.arena.pushString(nil)
	if err := r.readIRIREF(uriRef); err != nil {
		return err
	}
	uri := append([]byte(nil), r.arena.bytes(uriRef)...)
	r.popString(uriRef)

	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if c, ok := r.buf.eat('.'); !ok {
		return r.syntaxErr("expected '.' after @base directive, got %q", c)
	}
	r.cur.advance('.')

	if r.onBase != nil {
		return r.onBase(uri)
	}
	return nil
}

func (r *Reader) readIRIREF(ref Ref) error {
	if c, ok := r.buf.eat('<'); !ok {
		return r.syntaxErr("expected '<' to start an IRI reference, got %q", c)
	}
	r.cur.advance('<')
	for {
		more, err := r.echaracter(ref)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	if c, ok := r.buf.eat('>'); !ok {
		return r.syntaxErr("expected '>' to close an IRI reference, got %q", c)
	}
	r.cur.advance('>')
	return nil
}

// readTriples implements triples := subject predicateObjectList .
// A subject that was an empty anonymous node, "[]", is announced via a
// single EmptyS-flagged statement instead, since no predicateObjectList
// follows it in the grammar.
func (r *Reader) readTriples() error {
	subj, subjEmpty, err := r.readSubject()
	if err != nil {
		return err
	}
	if subjEmpty {
		if err := r.emitStatement(subj, Node{}, Node{}, EmptyS); err != nil {
			return err
		}
	} else {
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if err := r.readPredicateObjectList(subj, 0, 0); err != nil {
			return err
		}
	}
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if c, ok := r.buf.eat('.'); !ok {
		return r.syntaxErr("expected '.' to end a statement, got %q", c)
	}
	r.cur.advance('.')
	return nil
}

func (r *Reader) readSubject() (Node, bool, error) {
	switch c := r.buf.peek(); {
	case c == '<':
		ref := r.arena.pushString(nil)
		if err := r.readIRIREF(ref); err != nil {
			return Node{}, false, err
		}
		v := append([]byte(nil), r.arena.bytes(ref)...)
		r.popString(ref)
		return Node{Type: NodeURI, Value: v}, false, nil
	case c == '[':
		return r.readBlankNode(AnonSBegin, AnonCont)
	case c == '(':
		node, err := r.readCollection(ListSBegin, ListCont)
		return node, false, err
	case c == '_':
		node, err := r.readBlankNodeLabel()
		return node, false, err
	case isNameStartChar(c) || c == ':':
		node, err := r.readPrefixedName()
		return node, false, err
	default:
		return Node{}, false, r.syntaxErr("unexpected character %q at the start of a subject", c)
	}
}

// readVerb implements verb := predicate | "a" .
func (r *Reader) readVerb() (Node, error) {
	if c := r.buf.peek(); c == 'a' {
		var look [2]byte
		if !r.buf.peekN(look[:2], 2) || !isNameChar(look[1]) {
			r.consumeByte()
			return Node{Type: NodeURI, Value: []byte(rdfTypeURI)}, nil
		}
	}
	if r.buf.peek() == '<' {
		ref := r.arena.pushString(nil)
		if err := r.readIRIREF(ref); err != nil {
			return Node{}, err
		}
		v := append([]byte(nil), r.arena.bytes(ref)...)
		r.popString(ref)
		return Node{Type: NodeURI, Value: v}, nil
	}
	return r.readPrefixedName()
}

// readPredicateObjectList implements
// predicateObjectList := verb objectList (';' (verb objectList)?)* .
// begin is the flag applied to the first statement emitted from this
// list, cont to every statement after it; both are zero for an
// already-resolved top-level subject.
func (r *Reader) readPredicateObjectList(subject Node, begin, cont StatementFlags) error {
	used := false
	nextFlag := func() StatementFlags {
		if !used {
			used = true
			return begin
		}
		return cont
	}
	for {
		pred, err := r.readVerb()
		if err != nil {
			return err
		}
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if err := r.readObjectList(subject, pred, nextFlag); err != nil {
			return err
		}
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if r.buf.peek() != ';' {
			return nil
		}
		r.consumeByte()
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		switch r.buf.peek() {
		case '.', ']', 0:
			return nil // trailing ';'
		}
	}
}

func (r *Reader) readObjectList(subject, predicate Node, nextFlag func() StatementFlags) error {
	for {
		if err := r.readObjectInto(subject, predicate, nextFlag()); err != nil {
			return err
		}
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if r.buf.peek() != ',' {
			return nil
		}
		r.consumeByte()
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
	}
}

// readObjectInto reads one object in object position and emits the
// subject-predicate-object statement for it, with flags as the base
// flags for that statement (e.g. a list's begin/cont flag when the
// object is a collection item). An anonymous-node or collection object
// has its introducing "subject predicate node" statement emitted here,
// flagged ANON_O_BEGIN/LIST_O_BEGIN, before any of its nested content is
// parsed - nested statements are flagged ANON_CONT/LIST_CONT throughout,
// matching spec scenario #5 and serd's read_blank/read_collection.
func (r *Reader) readObjectInto(subject, predicate Node, flags StatementFlags) error {
	switch r.buf.peek() {
	case '[':
		return r.readAnonObject(subject, predicate, flags)
	case '(':
		return r.readCollectionObject(subject, predicate, flags)
	default:
		obj, objEmpty, err := r.readObject()
		if err != nil {
			return err
		}
		if objEmpty {
			flags |= EmptyO
		}
		return r.emitStatement(subject, predicate, obj, flags)
	}
}

// readAnonObject implements the "[" predicateObjectList? "]" object
// alternative. An empty "[]" asserts no triple of its own, so the
// introducing statement alone carries EMPTY_O; otherwise the introducing
// statement is emitted first (ANON_O_BEGIN), then its nested
// predicateObjectList is read with ANON_CONT on every statement.
func (r *Reader) readAnonObject(subject, predicate Node, flags StatementFlags) error {
	r.consumeByte() // '['
	node := Node{Type: NodeBlank, Value: r.genBlankID()}
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if r.buf.peek() == ']' {
		r.consumeByte()
		return r.emitStatement(subject, predicate, node, flags|EmptyO)
	}
	if err := r.emitStatement(subject, predicate, node, flags|AnonOBegin); err != nil {
		return err
	}
	if err := r.readPredicateObjectList(node, AnonCont, AnonCont); err != nil {
		return err
	}
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if c, ok := r.buf.eat(']'); !ok {
		return r.syntaxErr("expected ']' to close an anonymous node, got %q", c)
	}
	r.cur.advance(']')
	if r.onEnd != nil {
		return r.onEnd(node)
	}
	return nil
}

// readCollectionObject implements the "(" object* ")" object
// alternative. The introducing statement (flagged LIST_O_BEGIN, or left
// as rdf:nil with no special flag when the collection is empty) is
// emitted before the nested rdf:first/rdf:rest chain, which is then read
// with LIST_CONT throughout.
func (r *Reader) readCollectionObject(subject, predicate Node, flags StatementFlags) error {
	r.consumeByte() // '('
	if err := r.skipWSAndComments(); err != nil {
		return err
	}
	if r.buf.peek() == ')' {
		r.consumeByte()
		return r.emitStatement(subject, predicate, r.rdfNilNode(), flags)
	}
	head := Node{Type: NodeBlank, Value: r.genBlankID()}
	if err := r.emitStatement(subject, predicate, head, flags|ListOBegin); err != nil {
		return err
	}
	return r.readCollectionItems(head, ListCont, ListCont)
}

func (r *Reader) readObject() (Node, bool, error) {
	switch c := r.buf.peek(); {
	case c == '<':
		ref := r.arena.pushString(nil)
		if err := r.readIRIREF(ref); err != nil {
			return Node{}, false, err
		}
		v := append([]byte(nil), r.arena.bytes(ref)...)
		r.popString(ref)
		return Node{Type: NodeURI, Value: v}, false, nil
	case c == '_':
		node, err := r.readBlankNodeLabel()
		return node, false, err
	case c == '"' || c == '\'':
		node, err := r.readLiteral()
		return node, false, err
	case c == '+' || c == '-' || isDigit(c):
		node, err := r.readNumericLiteral()
		return node, false, err
	case c == 't' || c == 'f':
		if node, ok, err := r.tryReadBooleanLiteral(); ok || err != nil {
			return node, false, err
		}
		node, err := r.readPrefixedName()
		return node, false, err
	case isNameStartChar(c) || c == ':':
		node, err := r.readPrefixedName()
		return node, false, err
	default:
		return Node{}, false, r.syntaxErr("unexpected character %q in object position", c)
	}
}

// readBlankNode implements blank := "[" predicateObjectList? "]" in
// subject position, reporting a node and whether it was the empty "[]"
// form - in which case the caller is responsible for flagging its own
// statement with EmptyS, since no nested statement was emitted here.
// Object position goes through readAnonObject instead, which also emits
// the statement introducing the node.
func (r *Reader) readBlankNode(begin, cont StatementFlags) (Node, bool, error) {
	r.consumeByte() // '['
	node := Node{Type: NodeBlank, Value: r.genBlankID()}
	if err := r.skipWSAndComments(); err != nil {
		return node, false, err
	}
	if r.buf.peek() == ']' {
		r.consumeByte()
		return node, true, nil
	}
	if err := r.readPredicateObjectList(node, begin, cont); err != nil {
		return node, false, err
	}
	if err := r.skipWSAndComments(); err != nil {
		return node, false, err
	}
	if c, ok := r.buf.eat(']'); !ok {
		return node, false, r.syntaxErr("expected ']' to close an anonymous node, got %q", c)
	}
	r.cur.advance(']')
	if r.onEnd != nil {
		if err := r.onEnd(node); err != nil {
			return node, false, err
		}
	}
	return node, false, nil
}

// readCollection implements collection := "(" object* ")" in subject
// position, expanding it into an rdf:first/rdf:rest chain terminated by
// rdf:nil. begin flags the first nested statement (ListSBegin), cont
// every statement after. Object position goes through
// readCollectionObject instead, which emits a separate statement
// introducing the list head and so needs ListCont throughout its chain.
func (r *Reader) readCollection(begin, cont StatementFlags) (Node, error) {
	r.consumeByte() // '('
	if err := r.skipWSAndComments(); err != nil {
		return Node{}, err
	}
	if r.buf.peek() == ')' {
		r.consumeByte()
		return r.rdfNilNode(), nil
	}

	head := Node{Type: NodeBlank, Value: r.genBlankID()}
	if err := r.readCollectionItems(head, begin, cont); err != nil {
		return Node{}, err
	}
	return head, nil
}

// readCollectionItems reads the object* ")" tail of a collection already
// past its opening "(" and first item's blank node (head), expanding it
// into an rdf:first/rdf:rest chain terminated by rdf:nil. begin flags
// the first nested statement, cont every statement after - an object
// whose introducing statement already carried LIST_O_BEGIN passes
// begin == cont == ListCont so every statement in the chain is ListCont.
func (r *Reader) readCollectionItems(head Node, begin, cont StatementFlags) error {
	cur := head
	used := false
	nextFlag := func() StatementFlags {
		if !used {
			used = true
			return begin
		}
		return cont
	}

	for {
		if err := r.readObjectInto(cur, r.rdfFirstNode(), nextFlag()); err != nil {
			return err
		}
		if err := r.skipWSAndComments(); err != nil {
			return err
		}
		if r.buf.peek() == ')' {
			r.consumeByte()
			return r.emitStatement(cur, r.rdfRestNode(), r.rdfNilNode(), cont)
		}
		next := Node{Type: NodeBlank, Value: r.genBlankID()}
		if err := r.emitStatement(cur, r.rdfRestNode(), next, cont); err != nil {
			return err
		}
		cur = next
	}
}

func (r *Reader) readBlankNodeLabel() (Node, error) {
	if c, ok := r.buf.eat('_'); !ok {
		return Node{}, r.syntaxErr("expected '_' to start a blank node label, got %q", c)
	}
	r.cur.advance('_')
	if c, ok := r.buf.eat(':'); !ok {
		return Node{}, r.syntaxErr("expected ':' after '_', got %q", c)
	}
	r.cur.advance(':')
	ref := r.arena.pushString(nil)
	for c := r.buf.peek(); isNameChar(c) || c == '.'; c = r.buf.peek() {
		if err := r.consumeRaw(ref); err != nil {
			return Node{}, err
		}
	}
	label := r.arena.bytes(ref)
	id := append([]byte(r.blankPrefix+"docid"), label...)
	r.popString(ref)
	return Node{Type: NodeBlank, Value: id}, nil
}

// readPrefixedName implements qname := PNAME_NS PN_LOCAL? , returned as
// raw "prefix:local" lexical text - expansion against the active prefix
// table happens outside the core reader.
func (r *Reader) readPrefixedName() (Node, error) {
	ref := r.arena.pushString(nil)
	for isNameChar(r.buf.peek()) {
		if err := r.consumeRaw(ref); err != nil {
			return Node{}, err
		}
	}
	if c, ok := r.buf.eat(':'); !ok {
		return Node{}, r.syntaxErr("expected ':' in a prefixed name, got %q", c)
	}
	r.cur.advance(':')
	r.arena.pushByte(ref, ':')
	for {
		more, err := r.ucharacter(ref)
		if err != nil {
			return Node{}, err
		}
		if !more {
			break
		}
	}
	v := append([]byte(nil), r.arena.bytes(ref)...)
	r.popString(ref)
	return Node{Type: NodeCURIE, Value: v}, nil
}

const (
	xsdBooleanURI = "http://www.w3.org/2001/XMLSchema#boolean"
	xsdIntegerURI = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimalURI = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdDoubleURI  = "http://www.w3.org/2001/XMLSchema#double"
)

func (r *Reader) makeTypedLiteral(value []byte, datatype string) Node {
	return Node{Type: NodeLiteral, Value: value, DatatypeURI: []byte(datatype)}
}

// tryReadBooleanLiteral consumes "true" or "false" only if it is not
// actually the start of a longer PN_LOCAL token such as "trueish".
func (r *Reader) tryReadBooleanLiteral() (Node, bool, error) {
	var look [6]byte
	if r.buf.peekN(look[:4], 4) && string(look[:4]) == "true" {
		hasMore := r.buf.peekN(look[:5], 5)
		if !hasMore || !isNameChar(look[4]) {
			for i := 0; i < 4; i++ {
				r.consumeByte()
			}
			return r.makeTypedLiteral([]byte("true"), xsdBooleanURI), true, nil
		}
	}
	if r.buf.peekN(look[:5], 5) && string(look[:5]) == "false" {
		hasMore := r.buf.peekN(look[:6], 6)
		if !hasMore || !isNameChar(look[5]) {
			for i := 0; i < 5; i++ {
				r.consumeByte()
			}
			return r.makeTypedLiteral([]byte("false"), xsdBooleanURI), true, nil
		}
	}
	return Node{}, false, nil
}

// readNumericLiteral implements the INTEGER | DECIMAL | DOUBLE
// productions, picking the datatype from which optional parts matched.
func (r *Reader) readNumericLiteral() (Node, error) {
	ref := r.arena.pushString(nil)
	hasDot := false
	hasExp := false

	if c := r.buf.peek(); c == '+' || c == '-' {
		r.arena.pushByte(ref, r.consumeByte())
	}
	for isDigit(r.buf.peek()) {
		r.arena.pushByte(ref, r.consumeByte())
	}
	if r.buf.peek() == '.' {
		var look [2]byte
		if r.buf.peekN(look[:2], 2) && isDigit(look[1]) {
			hasDot = true
			r.arena.pushByte(ref, r.consumeByte())
			for isDigit(r.buf.peek()) {
				r.arena.pushByte(ref, r.consumeByte())
			}
		}
	}
	if c := r.buf.peek(); c == 'e' || c == 'E' {
		var look [3]byte
		hasSign := false
		ok := r.buf.peekN(look[:2], 2)
		if ok && (look[1] == '+' || look[1] == '-') {
			hasSign = true
			ok = r.buf.peekN(look[:3], 3)
		}
		digitIdx := 1
		if hasSign {
			digitIdx = 2
		}
		if ok && isDigit(look[digitIdx]) {
			hasExp = true
			r.arena.pushByte(ref, r.consumeByte()) // 'e' or 'E'
			if hasSign {
				r.arena.pushByte(ref, r.consumeByte())
			}
			for isDigit(r.buf.peek()) {
				r.arena.pushByte(ref, r.consumeByte())
			}
		}
	}

	v := append([]byte(nil), r.arena.bytes(ref)...)
	r.popString(ref)
	if len(v) == 0 || (len(v) == 1 && (v[0] == '+' || v[0] == '-')) {
		return Node{}, r.syntaxErr("invalid numeric literal")
	}

	datatype := xsdIntegerURI
	switch {
	case hasExp:
		datatype = xsdDoubleURI
	case hasDot:
		datatype = xsdDecimalURI
	}
	return r.makeTypedLiteral(v, datatype), nil
}

// readLiteral implements the quoted-string forms of RDFLiteral, followed
// by an optional LANGTAG or "^^" datatype suffix.
func (r *Reader) readLiteral() (Node, error) {
	quote := r.buf.peek()
	ref := r.arena.pushString(nil)
	var flags NodeFlags

	var look [3]byte
	if r.buf.peekN(look[:3], 3) && look[0] == quote && look[1] == quote && look[2] == quote {
		r.consumeByte()
		r.consumeByte()
		r.consumeByte()
		for {
			var close [3]byte
			if r.buf.peekN(close[:3], 3) && close[0] == quote && close[1] == quote && close[2] == quote {
				r.consumeByte()
				r.consumeByte()
				r.consumeByte()
				break
			}
			if _, err := r.lcharacter(ref); err != nil {
				return Node{}, err
			}
		}
	} else {
		r.consumeByte() // opening quote
		for {
			more, err := r.scharacter(ref, quote)
			if err != nil {
				return Node{}, err
			}
			if !more {
				break
			}
		}
		if c, ok := r.buf.eat(quote); !ok {
			return Node{}, r.syntaxErr("expected closing quote, got %q", c)
		}
		r.cur.advance(quote)
	}

	value := append([]byte(nil), r.arena.bytes(ref)...)
	r.popString(ref)
	for _, c := range value {
		switch c {
		case '\n', '\r':
			flags |= HasNewline
		case '"':
			flags |= HasQuote
		}
	}
	node := Node{Type: NodeLiteral, Value: value, Flags: flags}

	switch r.buf.peek() {
	case '@':
		r.consumeByte()
		langRef := r.arena.pushString(nil)
		for {
			c := r.buf.peek()
			if !(isAlpha(c) || c == '-' || isDigit(c)) {
				break
			}
			if err := r.consumeRaw(langRef); err != nil {
				return Node{}, err
			}
		}
		node.Lang = append([]byte(nil), r.arena.bytes(langRef)...)
		r.popString(langRef)
	case '^':
		if c, ok := r.buf.eat('^'); !ok {
			return Node{}, r.syntaxErr("expected '^' in datatype suffix, got %q", c)
		}
		r.cur.advance('^')
		if c, ok := r.buf.eat('^'); !ok {
			return Node{}, r.syntaxErr("expected second '^' in datatype suffix, got %q", c)
		}
		r.cur.advance('^')
		if r.buf.peek() == '<' {
			dtRef := r.arena.pushString(nil)
			if err := r.readIRIREF(dtRef); err != nil {
				return Node{}, err
			}
			node.DatatypeURI = append([]byte(nil), r.arena.bytes(dtRef)...)
			r.popString(dtRef)
		} else {
			dt, err := r.readPrefixedName()
			if err != nil {
				return Node{}, err
			}
			node.DatatypeCURIE = dt.Value
		}
	}
	return node, nil
}
