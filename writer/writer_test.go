package writer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tripn/tripn"
	"github.com/go-tripn/tripn/env"
	"github.com/go-tripn/tripn/writer"
)

func render(t *testing.T, syntax writer.Syntax, style writer.Style, turtle string) string {
	t.Helper()
	e, err := env.New("")
	require.NoError(t, err)
	var buf bytes.Buffer
	w := writer.New(&buf, syntax, style, e)
	r := tripn.NewReader(
		tripn.WithBaseSink(w.Base),
		tripn.WithPrefixSink(w.Prefix),
		tripn.WithStatementSink(w.Statement),
		tripn.WithEndSink(w.End),
	)
	require.NoError(t, r.ReadString([]byte(turtle), "test.ttl"))
	require.NoError(t, w.Finish())
	return buf.String()
}

func TestWriterNTriples(t *testing.T) {
	out := render(t, writer.NTriples, writer.StyleASCII,
		`@prefix foaf: <http://xmlns.com/foaf/0.1/> .
		 <http://ex/s> foaf:name "René" .`)
	assert.Equal(t, "<http://ex/s> <http://xmlns.com/foaf/0.1/name> \"Ren\\u00E9\" .\n", out)
}

func TestWriterTurtleAbbreviatesType(t *testing.T) {
	out := render(t, writer.Turtle, writer.StyleAbbreviated|writer.StyleCURIEd,
		`@prefix : <http://ex/> . :s a :T .`)
	assert.Equal(t, "@prefix : <http://ex/> .\n:s a :T .\n", out)
}

func TestWriterTurtleGroupsSameSubject(t *testing.T) {
	out := render(t, writer.Turtle, writer.StyleAbbreviated|writer.StyleCURIEd,
		`@prefix : <http://ex/> . :s :p1 :o1 ; :p2 :o2 .`)
	assert.Equal(t, "@prefix : <http://ex/> .\n:s :p1 :o1 ;\n    :p2 :o2 .\n", out)
}

func TestWriterTurtleGroupsSameSubjectPredicate(t *testing.T) {
	out := render(t, writer.Turtle, writer.StyleAbbreviated|writer.StyleCURIEd,
		`@prefix : <http://ex/> . :s :p :o1, :o2 .`)
	assert.Equal(t, "@prefix : <http://ex/> .\n:s :p :o1,\n    :o2 .\n", out)
}

func TestWriterTurtleBooleanShorthand(t *testing.T) {
	out := render(t, writer.Turtle, writer.StyleAbbreviated|writer.StyleCURIEd,
		`<http://ex/s> <http://ex/p> true .`)
	assert.Equal(t, "<http://ex/s> <http://ex/p> true .\n", out)
}

func TestWriterLongStringForMultilineLiteral(t *testing.T) {
	out := render(t, writer.Turtle, writer.StyleAbbreviated|writer.StyleCURIEd,
		"<http://ex/s> <http://ex/p> \"\"\"line one\nline two\"\"\" .")
	assert.Equal(t, "<http://ex/s> <http://ex/p> \"\"\"line one\nline two\"\"\" .\n", out)
}
