// Package env is the "environment" collaborator spec.md places outside
// THE CORE's scope (§1): it resolves CURIEs and relative IRI references
// against a current base URI and a prefix table, the way the original
// C reader's SerdEnv/SerdReadState split does. The core reader itself
// never expands anything — it hands back raw lexical text and leaves
// expansion to a second-layer consumer such as this package.
package env

import (
	"bytes"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/go-tripn/tripn"
)

// Env tracks the current base URI and the prefix -> namespace table a
// Turtle document builds up as its directives are read.
type Env struct {
	base    tripn.URI
	baseStr string

	// names/uris are parallel slices (not a map) so Abbreviate can try
	// longest-namespace-first without a separate sorted index.
	names []string
	uris  []string

	log *logrus.Logger
}

// Option configures an Env at construction time.
type Option func(*Env)

// WithURIDebug turns on the URI_DEBUG-style trace of every parsed and
// resolved URI's component ranges, logged at Debug level on log. This is
// the runtime replacement for the original reader's compile-time
// URI_DEBUG #ifdef - here it lives on Env rather than the core reader,
// since Env is the only collaborator that ever calls ParseURI/ResolveURI.
func WithURIDebug(log *logrus.Logger) Option {
	return func(e *Env) { e.log = log }
}

// New constructs an Env with base as the initial base URI. An empty base
// is valid; any subsequent relative @base or relative <uri> resolution
// against it will simply fail until a base is set.
func New(base string, opts ...Option) (*Env, error) {
	e := &Env{}
	for _, opt := range opts {
		opt(e)
	}
	if base != "" {
		if err := e.SetBase([]byte(base)); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// traceURI emits the URI_DEBUG trace for a parsed or resolved URI's
// component ranges, a no-op unless WithURIDebug installed a logger.
func (e *Env) traceURI(action string, u tripn.URI) {
	if e.log == nil {
		return
	}
	e.log.WithFields(logrus.Fields{
		"scheme":    string(u.Scheme),
		"authority": string(u.Authority),
		"pathBase":  string(u.PathBase),
		"path":      string(u.Path),
		"query":     string(u.Query),
		"fragment":  string(u.Fragment),
	}).Debugf("uri %s", action)
}

// Base returns the current absolute base URI, or "" if none has been set.
func (e *Env) Base() string { return e.baseStr }

// SetBase resolves uri against the current base (if any already set) and
// installs the result as the new base, mirroring a Turtle @base directive
// or the reader's BaseSink.
func (e *Env) SetBase(uri []byte) error {
	r := tripn.ParseURI(uri)
	e.traceURI("parse", r)
	resolved := r
	if e.baseStr != "" {
		resolved = tripn.ResolveURI(r, e.base)
		e.traceURI("resolve", resolved)
	} else if len(r.Scheme) == 0 {
		return errors.Errorf("env: relative base URI %q with no base set yet", uri)
	}
	out := resolved.Append(nil)
	// Re-parse the serialised form so the stored URI's ranges alias a
	// buffer this Env owns, not the caller's uri slice or the old base.
	e.base = tripn.ParseURI(out)
	e.baseStr = string(out)
	return nil
}

// Bind records a prefix -> namespace-URI binding, mirroring a Turtle
// @prefix directive or the reader's PrefixSink. A later Bind of the same
// name replaces the earlier one, matching Turtle's last-wins semantics.
func (e *Env) Bind(name, uri []byte) error {
	n := string(name)
	u := string(uri)
	for i, existing := range e.names {
		if existing == n {
			e.uris[i] = u
			return nil
		}
	}
	e.names = append(e.names, n)
	e.uris = append(e.uris, u)
	return nil
}

// Expand resolves node (a NodeURI or NodeCURIE) to an absolute IRI
// string. ok is false when a CURIE's prefix is unbound or a relative
// NodeURI is seen with no base set; Expand never fails loudly, since a
// writer choosing between abbreviated and full-IRI output needs a
// boolean, not an error, to fall back on.
func (e *Env) Expand(n tripn.Node) (absolute string, ok bool) {
	switch n.Type {
	case tripn.NodeURI:
		u := tripn.ParseURI(n.Value)
		e.traceURI("parse", u)
		if len(u.Scheme) > 0 {
			return string(n.Value), true
		}
		if e.baseStr == "" {
			return "", false
		}
		resolved := tripn.ResolveURI(u, e.base)
		e.traceURI("resolve", resolved)
		return string(resolved.Append(nil)), true
	case tripn.NodeCURIE:
		prefix, local, _ := splitCURIE(n.Value)
		ns, found := e.namespace(prefix)
		if !found {
			return "", false
		}
		return ns + local, true
	default:
		return "", false
	}
}

// Abbreviate is the inverse of Expand's CURIE case: given an absolute
// IRI, it finds the longest bound namespace that is a prefix of it and
// returns "name:local". Used by a writer in SERD_STYLE_CURIED mode.
func (e *Env) Abbreviate(absolute string) (curie string, ok bool) {
	bestLen := -1
	bestName, bestLocal := "", ""
	for i, ns := range e.uris {
		if len(ns) > bestLen && strings.HasPrefix(absolute, ns) {
			bestLen = len(ns)
			bestName = e.names[i]
			bestLocal = absolute[len(ns):]
		}
	}
	if bestLen < 0 {
		return "", false
	}
	return bestName + ":" + bestLocal, true
}

// Prefixes returns the bound prefix names in a stable, sorted order, for
// a writer that wants to emit @prefix directives deterministically.
func (e *Env) Prefixes() []string {
	out := append([]string(nil), e.names...)
	sort.Strings(out)
	return out
}

// Namespace returns the namespace URI bound to name, if any.
func (e *Env) Namespace(name string) (string, bool) {
	return e.namespace(name)
}

func (e *Env) namespace(name string) (string, bool) {
	for i, n := range e.names {
		if n == name {
			return e.uris[i], true
		}
	}
	return "", false
}

// splitCURIE splits "prefix:local" lexical text (as produced by the
// reader's readPrefixedName) at its first colon.
func splitCURIE(b []byte) (prefix, local string, ok bool) {
	i := bytes.IndexByte(b, ':')
	if i < 0 {
		return "", "", false
	}
	return string(b[:i]), string(b[i+1:]), true
}

