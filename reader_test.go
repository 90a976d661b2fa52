package tripn

import (
	"slices"
	"testing"
)

// gotStatement flattens one StatementSink call into a comparable value so
// test tables can use slices.Equal, the way the original reader tests did.
type gotStatement struct {
	subjType NodeType
	subj     string
	predType NodeType
	pred     string
	objType  NodeType
	obj      string
	objLang  string
	objDT    string
	flags    StatementFlags
}

func collect(t *testing.T, turtle string) []gotStatement {
	t.Helper()
	var got []gotStatement
	r := NewReader(WithStatementSink(func(s, p, o Node, flags StatementFlags) error {
		g := gotStatement{
			subjType: s.Type, subj: string(s.Value),
			predType: p.Type, pred: string(p.Value),
			objType: o.Type, obj: string(o.Value),
			flags: flags,
		}
		if o.Lang != nil {
			g.objLang = string(o.Lang)
		}
		switch {
		case o.DatatypeURI != nil:
			g.objDT = string(o.DatatypeURI)
		case o.DatatypeCURIE != nil:
			g.objDT = string(o.DatatypeCURIE)
		}
		got = append(got, g)
		return nil
	}))
	if err := r.ReadString([]byte(turtle), "test.ttl"); err != nil {
		t.Fatalf("read error: %s\nfor turtle:\n%s", err, turtle)
	}
	return got
}

var turtleStatements = []struct {
	turtle string
	want   []gotStatement
}{
	{"", nil},
	{"\n", nil},
	{"\r\n\r", nil},
	{"\t# leading and trailing whitespace\n ", nil},
	{"# header\n# EOF at comment end", nil},

	{`<http://example.com/subject1> # N-Triples notation
<http://example.com/predicate1>         # stretched over multiple lines
# with leading and trailing space:

 <http://example.com/object1>
	. `,
		[]gotStatement{
			{NodeURI, "http://example.com/subject1", NodeURI, "http://example.com/predicate1", NodeURI, "http://example.com/object1", "", "", 0},
		},
	},

	{`@prefix : <http://example.com/> .   # empty prefix
          :subject1 :predicate1 :object1 .
          :subject2 a :object2 .              # rdf:type predicate`,
		[]gotStatement{
			{NodeCURIE, ":subject1", NodeCURIE, ":predicate1", NodeCURIE, ":object1", "", "", 0},
			{NodeCURIE, ":subject2", NodeURI, rdfTypeURI, NodeCURIE, ":object2", "", "", 0},
		},
	},

	// predicate list
	{`<http://example.org/#spiderman> <http://www.perceive.net/schemas/relationship/enemyOf> <http://example.org/#green-goblin> ;
                                             <http://xmlns.com/foaf/0.1/name> "Spiderman" .`,
		[]gotStatement{
			{NodeURI, "http://example.org/#spiderman", NodeURI, "http://www.perceive.net/schemas/relationship/enemyOf", NodeURI, "http://example.org/#green-goblin", "", "", 0},
			{NodeURI, "http://example.org/#spiderman", NodeURI, "http://xmlns.com/foaf/0.1/name", NodeLiteral, "Spiderman", "", "", 0},
		},
	},

	// object list with a plain string and a localized variant
	{`<http://example.org/#spiderman> <http://xmlns.com/foaf/0.1/name> "Spiderman", "Человек-паук"@ru .`,
		[]gotStatement{
			{NodeURI, "http://example.org/#spiderman", NodeURI, "http://xmlns.com/foaf/0.1/name", NodeLiteral, "Spiderman", "", "", 0},
			{NodeURI, "http://example.org/#spiderman", NodeURI, "http://xmlns.com/foaf/0.1/name", NodeLiteral, "Человек-паук", "ru", "", 0},
		},
	},

	// quoted strings, adapted from EXAMPLE 11 of the Turtle recommendation
	{`@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
show:218 rdfs:label "That Seventies Show"^^xsd:string .
show:218 rdfs:label "That Seventies Show"^^<http://www.w3.org/2001/XMLSchema#string> .
show:218 show:localName 'Cette Série des Années Soixante-dix'@fr .
show:218 show:blurb '''This is a multi-line
literal with many quotes (""""")
and up to two sequential apostrophes ('').''' .
`,
		[]gotStatement{
			{NodeCURIE, "show:218", NodeCURIE, "rdfs:label", NodeLiteral, "That Seventies Show", "", "xsd:string", 0},
			{NodeCURIE, "show:218", NodeCURIE, "rdfs:label", NodeLiteral, "That Seventies Show", "", "http://www.w3.org/2001/XMLSchema#string", 0},
			{NodeCURIE, "show:218", NodeCURIE, "show:localName", NodeLiteral, "Cette Série des Années Soixante-dix", "fr", "", 0},
			{NodeCURIE, "show:218", NodeCURIE, "show:blurb", NodeLiteral, "This is a multi-line\nliteral with many quotes (\"\"\"\"\")\nand up to two sequential apostrophes ('').", "", "", 0},
		},
	},

	// numbers, adapted from EXAMPLE 12 of the Turtle recommendation
	{`<http://en.wikipedia.org/wiki/Helium>
    :atomicNumber 2 ;
    :atomicMass 4.002602 ;
    :specificGravity 1.663E-4 .
`,
		[]gotStatement{
			{NodeURI, "http://en.wikipedia.org/wiki/Helium", NodeCURIE, ":atomicNumber", NodeLiteral, "2", "", xsdIntegerURI, 0},
			{NodeURI, "http://en.wikipedia.org/wiki/Helium", NodeCURIE, ":atomicMass", NodeLiteral, "4.002602", "", xsdDecimalURI, 0},
			{NodeURI, "http://en.wikipedia.org/wiki/Helium", NodeCURIE, ":specificGravity", NodeLiteral, "1.663E-4", "", xsdDoubleURI, 0},
		},
	},

	// boolean object
	{`<http://example.com/s> a true .`,
		[]gotStatement{
			{NodeURI, "http://example.com/s", NodeURI, rdfTypeURI, NodeLiteral, "true", "", xsdBooleanURI, 0},
		},
	},

	// blank node labels get rewritten with the docid prefix
	{`_:alice <http://xmlns.com/foaf/0.1/knows> _:bob .`,
		[]gotStatement{
			{NodeBlank, "docidalice", NodeURI, "http://xmlns.com/foaf/0.1/knows", NodeBlank, "docidbob", "", "", 0},
		},
	},

	// an empty anonymous object is flagged EmptyO
	{`<http://example.com/s> <http://example.com/p> [] .`,
		[]gotStatement{
			{NodeURI, "http://example.com/s", NodeURI, "http://example.com/p", NodeBlank, "genid1", "", "", EmptyO},
		},
	},

	// a collection in object position: the introducing statement carries
	// ListOBegin and comes first, the rdf:first/rdf:rest/rdf:nil chain it
	// opens is ListCont throughout.
	{`<http://example.com/s> <http://example.com/p> ( 1 2 ) .`,
		[]gotStatement{
			{NodeURI, "http://example.com/s", NodeURI, "http://example.com/p", NodeBlank, "genid1", "", "", ListOBegin},
			{NodeBlank, "genid1", NodeURI, rdfFirstURI, NodeLiteral, "1", "", xsdIntegerURI, ListCont},
			{NodeBlank, "genid1", NodeURI, rdfRestURI, NodeBlank, "genid2", "", "", ListCont},
			{NodeBlank, "genid2", NodeURI, rdfFirstURI, NodeLiteral, "2", "", xsdIntegerURI, ListCont},
			{NodeBlank, "genid2", NodeURI, rdfRestURI, NodeURI, rdfNilURI, "", "", ListCont},
		},
	},

	// a \uXXXX escape in a literal, and a \> escape inside an IRIREF
	{"<http://example.com/s\\>uffix> <http://example.com/p> \"caf\\u00E9\" .",
		[]gotStatement{
			{NodeURI, "http://example.com/s>uffix", NodeURI, "http://example.com/p", NodeLiteral, "café", "", "", 0},
		},
	},
}

func TestReader(t *testing.T) {
	for _, test := range turtleStatements {
		got := collect(t, test.turtle)
		if slices.Equal(got, test.want) {
			continue
		}
		t.Errorf("for turtle:\n%s\ngot:  %#v\nwant: %#v", test.turtle, got, test.want)
	}
}

func TestReaderAnonymousSubjectPropertyList(t *testing.T) {
	got := collect(t, `[ <http://example.com/p1> <http://example.com/o1> ; <http://example.com/p2> <http://example.com/o2> ] <http://example.com/p3> <http://example.com/o3> .`)
	want := []gotStatement{
		{NodeBlank, "genid1", NodeURI, "http://example.com/p1", NodeURI, "http://example.com/o1", "", "", AnonSBegin},
		{NodeBlank, "genid1", NodeURI, "http://example.com/p2", NodeURI, "http://example.com/o2", "", "", AnonCont},
		{NodeBlank, "genid1", NodeURI, "http://example.com/p3", NodeURI, "http://example.com/o3", "", "", 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got:  %#v\nwant: %#v", got, want)
	}
}

// TestReaderAnonymousObjectPropertyList covers spec scenario #5: the
// statement introducing an object-position anonymous node carries
// ANON_O_BEGIN and comes first, its nested predicateObjectList is
// ANON_CONT, and the end-sink fires once at the closing "]".
func TestReaderAnonymousObjectPropertyList(t *testing.T) {
	var ended []string
	var got []gotStatement
	r := NewReader(
		WithStatementSink(func(s, p, o Node, flags StatementFlags) error {
			got = append(got, gotStatement{
				subjType: s.Type, subj: string(s.Value),
				predType: p.Type, pred: string(p.Value),
				objType: o.Type, obj: string(o.Value),
				flags: flags,
			})
			return nil
		}),
		WithEndSink(func(n Node) error { ended = append(ended, string(n.Value)); return nil }),
	)
	err := r.ReadString([]byte(`<http://example.com/s> <http://example.com/p> [ <http://example.com/q> <http://example.com/r> ] .`), "test.ttl")
	if err != nil {
		t.Fatal(err)
	}
	want := []gotStatement{
		{NodeURI, "http://example.com/s", NodeURI, "http://example.com/p", NodeBlank, "genid1", "", "", AnonOBegin},
		{NodeBlank, "genid1", NodeURI, "http://example.com/q", NodeURI, "http://example.com/r", "", "", AnonCont},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got:  %#v\nwant: %#v", got, want)
	}
	if !slices.Equal(ended, []string{"genid1"}) {
		t.Errorf("end-sink fired for %v, want [genid1]", ended)
	}
}

func TestReaderEmptySubject(t *testing.T) {
	got := collect(t, `[] .`)
	want := []gotStatement{
		{NodeBlank, "genid1", NodeNone, "", NodeNone, "", "", "", EmptyS},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got:  %#v\nwant: %#v", got, want)
	}
}

func TestReaderDirectiveSinks(t *testing.T) {
	var bases, prefixNames, prefixURIs []string
	r := NewReader(
		WithBaseSink(func(uri []byte) error { bases = append(bases, string(uri)); return nil }),
		WithPrefixSink(func(name, uri []byte) error {
			prefixNames = append(prefixNames, string(name))
			prefixURIs = append(prefixURIs, string(uri))
			return nil
		}),
	)
	err := r.ReadString([]byte(`@base <http://example.com/> .
@prefix foaf: <http://xmlns.com/foaf/0.1/> .
<http://example.com/s> <http://example.com/p> <http://example.com/o> .`), "test.ttl")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(bases, []string{"http://example.com/"}) {
		t.Errorf("bases = %v", bases)
	}
	if !slices.Equal(prefixNames, []string{"foaf"}) || !slices.Equal(prefixURIs, []string{"http://xmlns.com/foaf/0.1/"}) {
		t.Errorf("prefixes = %v %v", prefixNames, prefixURIs)
	}
}

func TestReaderSyntaxError(t *testing.T) {
	r := NewReader()
	err := r.ReadString([]byte(`<http://example.com/s> <http://example.com/p> .`), "bad.ttl")
	if err == nil {
		t.Fatal("expected a syntax error for a missing object")
	}
	var synErr *SyntaxError
	if !asSyntaxError(err, &synErr) {
		t.Fatalf("error %v is not a *SyntaxError", err)
	}
	if synErr.Kind != ErrBadSyntax {
		t.Errorf("Kind = %v, want ErrBadSyntax", synErr.Kind)
	}
}

func asSyntaxError(err error, target **SyntaxError) bool {
	if se, ok := err.(*SyntaxError); ok {
		*target = se
		return true
	}
	return false
}
