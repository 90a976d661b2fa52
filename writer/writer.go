// Package writer is the "output writer" collaborator spec.md places
// outside THE CORE's scope (§1): it renders the event stream a
// tripn.Reader emits (base, prefix, statement, end-of-anonymous) as
// Turtle or N-Triples text, using an *env.Env to expand or abbreviate
// nodes. Its methods have the exact signatures of the reader's sink
// types, so a caller wires reader -> env -> writer the way the original
// serdi.c wires SerdReader -> SerdEnv -> SerdWriter: by handing the
// writer's own methods straight to tripn.With*Sink.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-tripn/tripn"
	"github.com/go-tripn/tripn/env"
)

// Syntax selects the output grammar.
type Syntax int

const (
	Turtle Syntax = iota
	NTriples
)

// Style is a bitset of output-shaping choices, restored from the
// original serdi.c's SERD_STYLE_* flags (§9, "output style flags").
type Style uint8

const (
	// StyleASCII forces \uXXXX escaping of every byte outside printable
	// ASCII. N-Triples output always carries this; Turtle never does.
	StyleASCII Style = 1 << iota
	// StyleAbbreviated turns on "a" for rdf:type, same-subject ';'
	// grouping and same-subject-predicate ',' grouping. N-Triples
	// output never carries this: each statement is one full line.
	StyleAbbreviated
	// StyleCURIEd abbreviates IRIs into bound "prefix:local" CURIEs
	// where possible instead of writing them out in full. The CLI's
	// -f flag ("keep full URIs") turns this off.
	StyleCURIEd
	// StyleResolved resolves relative IRI reference nodes against the
	// current base before writing, rather than passing the document's
	// lexical text straight through. CURIE nodes do not depend on this
	// bit: StyleCURIEd and StyleASCII alone decide whether they are
	// expanded. Only meaningful when the input syntax permits @base to
	// change mid-document, i.e. Turtle, not N-Triples.
	StyleResolved
	// StyleBulk gives the Writer a 64 KiB output buffer instead of the
	// default 4 KiB one. In both cases output is flushed only when the
	// buffer fills or Finish is called.
	StyleBulk
)

// Writer renders reader events as Turtle or N-Triples text.
type Writer struct {
	out    *bufio.Writer
	syntax Syntax
	style  Style
	env    *env.Env

	chopPrefix string

	// lastSubject/lastPredicate key the same-subject/same-predicate
	// coalescing decision for StyleAbbreviated; lineOpen is true
	// whenever a previous statement's line has not yet been
	// terminated with " .".
	lastSubject   string
	lastPredicate string
	lineOpen      bool
}

// New constructs a Writer over w. e supplies base-URI resolution and
// CURIE expansion/abbreviation; it may be shared with the Reader that is
// driving this Writer's sinks.
func New(w io.Writer, syntax Syntax, style Style, e *env.Env) *Writer {
	bufSize := 4096
	if style&StyleBulk != 0 {
		bufSize = 64 * 1024
	}
	return &Writer{
		out:    bufio.NewWriterSize(w, bufSize),
		syntax: syntax,
		style:  style,
		env:    e,
	}
}

// ChopBlankPrefix sets a blank-id prefix to strip from every blank node
// label on output, mirroring the CLI's -c flag.
func (w *Writer) ChopBlankPrefix(prefix string) { w.chopPrefix = prefix }

// Base implements tripn.BaseSink: it updates the shared Env's base URI
// and, in Turtle, writes an "@base" directive reflecting the change.
func (w *Writer) Base(uri []byte) error {
	if err := w.env.SetBase(uri); err != nil {
		return err
	}
	if w.syntax == Turtle {
		w.closeLine()
		fmt.Fprintf(w.out, "@base <%s> .\n", w.env.Base())
	}
	return nil
}

// Prefix implements tripn.PrefixSink: it binds the prefix on the shared
// Env and, in Turtle, writes an "@prefix" directive.
func (w *Writer) Prefix(name, uri []byte) error {
	if err := w.env.Bind(name, uri); err != nil {
		return err
	}
	if w.syntax == Turtle {
		w.closeLine()
		fmt.Fprintf(w.out, "@prefix %s: <%s> .\n", name, uri)
	}
	return nil
}

// End implements tripn.EndSink. Bracket reconstruction for anonymous
// nodes is intentionally not attempted (see DESIGN.md); every blank node
// this Writer emits, anonymous or labelled, is written as a plain
// "_:id" token, so End has nothing to close.
func (w *Writer) End(tripn.Node) error { return nil }

// Statement implements tripn.StatementSink.
func (w *Writer) Statement(subject, predicate, object tripn.Node, flags tripn.StatementFlags) error {
	if predicate.Type == tripn.NodeNone {
		// EmptyS with nothing else: "[] ." asserts no triple at all.
		return nil
	}

	subjText, err := w.renderSubjectOrObject(subject)
	if err != nil {
		return err
	}
	predText, err := w.renderPredicate(predicate)
	if err != nil {
		return err
	}
	objText, err := w.renderObject(object)
	if err != nil {
		return err
	}

	abbreviate := w.style&StyleAbbreviated != 0
	switch {
	case abbreviate && w.lineOpen && subjText == w.lastSubject && predText == w.lastPredicate:
		fmt.Fprintf(w.out, ",\n    %s", objText)
	case abbreviate && w.lineOpen && subjText == w.lastSubject:
		fmt.Fprintf(w.out, " ;\n    %s %s", predText, objText)
	default:
		w.closeLine()
		fmt.Fprintf(w.out, "%s %s %s", subjText, predText, objText)
		w.lineOpen = true
	}
	w.lastSubject = subjText
	w.lastPredicate = predText
	return nil
}

// Finish flushes any buffered output, terminating a still-open line.
func (w *Writer) Finish() error {
	w.closeLine()
	return w.out.Flush()
}

func (w *Writer) closeLine() {
	if w.lineOpen {
		w.out.WriteString(" .\n")
		w.lineOpen = false
		w.lastSubject = ""
		w.lastPredicate = ""
	}
}

func (w *Writer) renderSubjectOrObject(n tripn.Node) (string, error) {
	switch n.Type {
	case tripn.NodeURI:
		return w.renderURI(n.Value)
	case tripn.NodeCURIE:
		return w.renderCURIE(n)
	case tripn.NodeBlank:
		return w.renderBlank(n.Value), nil
	case tripn.NodeLiteral:
		return w.renderLiteral(n)
	default:
		return "[]", nil
	}
}

func (w *Writer) renderObject(n tripn.Node) (string, error) {
	return w.renderSubjectOrObject(n)
}

func (w *Writer) renderPredicate(n tripn.Node) (string, error) {
	if w.style&StyleAbbreviated != 0 && w.isRDFType(n) {
		return "a", nil
	}
	return w.renderSubjectOrObject(n)
}

func (w *Writer) isRDFType(n tripn.Node) bool {
	const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	if n.Type == tripn.NodeURI && string(n.Value) == rdfType {
		return true
	}
	if n.Type == tripn.NodeCURIE {
		if abs, ok := w.env.Expand(n); ok && abs == rdfType {
			return true
		}
	}
	return false
}

func (w *Writer) renderURI(value []byte) (string, error) {
	abs := string(value)
	if w.style&StyleResolved != 0 {
		if expanded, ok := w.env.Expand(tripn.Node{Type: tripn.NodeURI, Value: value}); ok {
			abs = expanded
		}
	}
	if w.style&StyleCURIEd != 0 {
		if curie, ok := w.env.Abbreviate(abs); ok {
			return curie, nil
		}
	}
	return "<" + abs + ">", nil
}

func (w *Writer) renderCURIE(n tripn.Node) (string, error) {
	if w.style&StyleCURIEd != 0 && w.style&StyleASCII == 0 {
		return string(n.Value), nil
	}
	abs, ok := w.env.Expand(n)
	if !ok {
		return "", fmt.Errorf("writer: unbound prefix in %q", n.Value)
	}
	return "<" + abs + ">", nil
}

func (w *Writer) renderBlank(id []byte) string {
	s := string(id)
	if w.chopPrefix != "" {
		s = strings.TrimPrefix(s, w.chopPrefix)
	}
	return "_:" + s
}

func (w *Writer) renderLiteral(n tripn.Node) (string, error) {
	if string(n.DatatypeURI) == tripn.XSDBoolean && w.style&StyleAbbreviated != 0 {
		if b, err := n.AsBool(); err == nil {
			if b {
				return "true", nil
			}
			return "false", nil
		}
	}

	var body string
	if n.Flags&tripn.HasNewline != 0 && w.style&StyleASCII == 0 {
		body = `"""` + escapeLong(n.Value) + `"""`
	} else {
		body = `"` + escapeShort(n.Value, w.style&StyleASCII != 0) + `"`
	}

	switch {
	case n.Lang != nil:
		body += "@" + string(n.Lang)
	case n.DatatypeURI != nil:
		dt, err := w.renderURI(n.DatatypeURI)
		if err != nil {
			return "", err
		}
		body += "^^" + dt
	case n.DatatypeCURIE != nil:
		dt, err := w.renderCURIE(tripn.Node{Type: tripn.NodeCURIE, Value: n.DatatypeCURIE})
		if err != nil {
			return "", err
		}
		body += "^^" + dt
	}
	return body, nil
}

// escapeShort escapes a literal body for the short-quoted "..." form:
// backslash, double quote, and the three ECHAR control characters always;
// every byte outside printable ASCII in addition when ascii is true.
func escapeShort(v []byte, ascii bool) string {
	var b strings.Builder
	for _, r := range string(v) {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			writeRune(&b, r, ascii)
		}
	}
	return b.String()
}

// escapeLong escapes a literal body for the triple-quoted """...""" form:
// only backslash and a quote run long enough to collide with the closing
// delimiter need escaping; raw newlines pass through.
func escapeLong(v []byte) string {
	var b strings.Builder
	quoteRun := 0
	for _, r := range string(v) {
		switch r {
		case '\\':
			b.WriteString(`\\`)
			quoteRun = 0
		case '"':
			quoteRun++
			if quoteRun >= 3 {
				b.WriteString(`\"`)
				quoteRun = 0
			} else {
				b.WriteRune(r)
			}
		default:
			quoteRun = 0
			writeRune(&b, r, false)
		}
	}
	return b.String()
}

func writeRune(b *strings.Builder, r rune, ascii bool) {
	if !ascii || (r >= 0x20 && r < 0x7f) {
		b.WriteRune(r)
		return
	}
	if r <= 0xFFFF {
		fmt.Fprintf(b, `\u%04X`, r)
	} else {
		fmt.Fprintf(b, `\U%08X`, r)
	}
}
