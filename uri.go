package tripn

import "github.com/pkg/errors"

// URI is a non-owning structural view of an RFC 3986 URI reference: six
// byte-ranges aliasing some backing buffer whose lifetime must dominate
// the view (typically the scratch arena, or a caller's own slice).
//
// A nil range means "absent"; a non-nil, zero-length range means
// "present but empty" (e.g. the authority of "file:///tmp" or the query
// of "http://x/?"). PathBase is only ever populated by Resolve, to mark
// "the prefix of the base path that the relative path extends"; regular
// Parse never sets it. Fragment's bytes include the leading '#'.
type URI struct {
	Scheme    []byte
	Authority []byte
	PathBase  []byte
	Path      []byte
	Query     []byte
	Fragment  []byte
}

// HasScheme reports whether b begins with an RFC 3986 scheme: an ALPHA
// followed by ALPHA/DIGIT/"+"/"-"/"." up to a terminating ':'. Any other
// byte encountered first means b is a relative reference.
func HasScheme(b []byte) bool {
	ok, _ := scanScheme(b)
	return ok
}

func scanScheme(b []byte) (ok bool, colon int) {
	if len(b) == 0 || !isAlpha(b[0]) {
		return false, 0
	}
	for j := 1; j < len(b); j++ {
		switch c := b[j]; {
		case c == ':':
			return true, j
		case c == '+' || c == '-' || c == '.':
			continue
		case isAlpha(c) || isDigit(c):
			continue
		default:
			return false, 0
		}
	}
	return false, 0
}

// ParseURI splits b into its components per RFC 3986 §3. It is zero-copy:
// every populated field aliases a sub-slice of b.
func ParseURI(b []byte) URI {
	var u URI
	n := len(b)
	i := 0

	if ok, colon := scanScheme(b); ok {
		u.Scheme = b[:colon]
		i = colon + 1
	}

	if i+1 < n && b[i] == '/' && b[i+1] == '/' {
		i += 2
		start := i
		for i < n && b[i] != '/' && b[i] != '?' && b[i] != '#' {
			i++
		}
		u.Authority = b[start:i]
	}

	if i < n && b[i] != '?' && b[i] != '#' {
		start := i
		for i < n && b[i] != '?' && b[i] != '#' {
			i++
		}
		u.Path = b[start:i]
	}

	if i < n && b[i] == '?' {
		i++
		start := i
		for i < n && b[i] != '#' {
			i++
		}
		u.Query = b[start:i]
	}

	if i < n && b[i] == '#' {
		u.Fragment = b[i:n]
	}

	return u
}

// ResolveURI resolves r against base per RFC 3986 §5.2.2.
func ResolveURI(r, base URI) URI {
	var t URI
	switch {
	case len(r.Scheme) > 0:
		t = r
		t.PathBase = nil
	case len(r.Authority) > 0:
		t.Authority = r.Authority
		t.Path = r.Path
		t.Query = r.Query
		t.Scheme = base.Scheme
		t.Fragment = r.Fragment
	default:
		t.Path = r.Path
		if len(r.Path) == 0 {
			t.PathBase = base.Path
			if len(r.Query) > 0 {
				t.Query = r.Query
			} else {
				t.Query = base.Query
			}
		} else {
			if r.Path[0] != '/' {
				t.PathBase = base.Path
			}
			t.Query = r.Query
		}
		t.Authority = base.Authority
		t.Scheme = base.Scheme
		t.Fragment = r.Fragment
	}
	return t
}

// Append serialises u per RFC 3986 §5.3, merging dot segments against
// PathBase where one is present, and appends the result to dst.
func (u URI) Append(dst []byte) []byte {
	if len(u.Scheme) > 0 {
		dst = append(dst, u.Scheme...)
		dst = append(dst, ':')
	}
	if u.Authority != nil {
		dst = append(dst, '/', '/')
		dst = append(dst, u.Authority...)
	}

	switch {
	case len(u.PathBase) > 0 && u.Path == nil:
		dst = append(dst, u.PathBase...)
	case len(u.PathBase) > 0 && u.Path != nil:
		dst = append(dst, mergePath(u.PathBase, u.Path)...)
	default:
		dst = append(dst, u.Path...)
	}

	if u.Query != nil {
		dst = append(dst, '?')
		dst = append(dst, u.Query...)
	}
	if u.Fragment != nil {
		dst = append(dst, u.Fragment...) // already carries the leading '#'
	}
	return dst
}

func (u URI) String() string {
	return string(u.Append(nil))
}

// mergePath implements the reference-path merge of RFC 3986 §5.2.3/§5.3:
// strip leading dot segments from path (counting ".." as "pop one" and
// collapsing a leading "//"), then splice the remainder after the
// up'th-last slash of pathBase.
func mergePath(pathBase, path []byte) []byte {
	begin := path
	up := 1

chop:
	for len(begin) > 0 {
		switch begin[0] {
		case '.':
			switch {
			case len(begin) >= 2 && begin[1] == '/':
				begin = begin[2:] // chop leading "./"
			case len(begin) >= 2 && begin[1] == '.':
				up++
				if len(begin) >= 3 && begin[2] == '/' {
					begin = begin[3:] // chop leading "../"
				} else {
					begin = begin[2:] // chop leading ".."
				}
			default:
				begin = begin[1:] // chop leading "."
			}
		case '/':
			if len(begin) >= 2 && begin[1] == '/' {
				begin = begin[1:] // replace leading "//" with "/"
			} else {
				break chop
			}
		default:
			break chop
		}
	}

	baseLast := len(pathBase) - 1
	for baseLast >= 0 {
		if pathBase[baseLast] == '/' {
			up--
		}
		if up <= 0 {
			break
		}
		baseLast--
		if baseLast <= 0 {
			break
		}
	}

	out := append([]byte(nil), pathBase[:baseLast+1]...)
	return append(out, begin...)
}

// ToPath extracts a filesystem path from uri: "file:" with no authority
// ("file:///tmp/x"), "file://host/tmp/x" (host is discarded), or a
// relative reference, which is returned unchanged. Any other scheme
// fails with a plain error (not a *SyntaxError carrying ErrBadArg).
func ToPath(uri []byte) ([]byte, error) {
	if !HasScheme(uri) {
		return uri, nil
	}
	u := ParseURI(uri)
	if string(u.Scheme) != "file" {
		return nil, errors.Errorf("tripn: non-file URI %q", uri)
	}
	return u.Path, nil
}
