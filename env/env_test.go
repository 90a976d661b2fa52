package env_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tripn/tripn"
	"github.com/go-tripn/tripn/env"
)

func TestExpandCURIE(t *testing.T) {
	e, err := env.New("")
	require.NoError(t, err)
	require.NoError(t, e.Bind([]byte("foaf"), []byte("http://xmlns.com/foaf/0.1/")))

	got, ok := e.Expand(tripn.Node{Type: tripn.NodeCURIE, Value: []byte("foaf:name")})
	require.True(t, ok)
	assert.Equal(t, "http://xmlns.com/foaf/0.1/name", got)

	_, ok = e.Expand(tripn.Node{Type: tripn.NodeCURIE, Value: []byte("unknown:name")})
	assert.False(t, ok)
}

func TestExpandRelativeURI(t *testing.T) {
	e, err := env.New("http://example.com/a/b")
	require.NoError(t, err)

	got, ok := e.Expand(tripn.Node{Type: tripn.NodeURI, Value: []byte("g")})
	require.True(t, ok)
	assert.Equal(t, "http://example.com/a/g", got)

	got, ok = e.Expand(tripn.Node{Type: tripn.NodeURI, Value: []byte("http://other/x")})
	require.True(t, ok)
	assert.Equal(t, "http://other/x", got)
}

func TestSetBaseResolvesAgainstPriorBase(t *testing.T) {
	e, err := env.New("http://example.com/a/b/")
	require.NoError(t, err)
	require.NoError(t, e.SetBase([]byte("../c/")))
	assert.Equal(t, "http://example.com/a/c/", e.Base())
}

func TestSetBaseWithNoPriorBaseRequiresAbsolute(t *testing.T) {
	e, err := env.New("")
	require.NoError(t, err)
	err = e.SetBase([]byte("relative"))
	assert.Error(t, err)
}

func TestAbbreviatePicksLongestNamespace(t *testing.T) {
	e, err := env.New("")
	require.NoError(t, err)
	require.NoError(t, e.Bind([]byte(""), []byte("http://example.com/")))
	require.NoError(t, e.Bind([]byte("x"), []byte("http://example.com/ns/")))

	curie, ok := e.Abbreviate("http://example.com/ns/Thing")
	require.True(t, ok)
	assert.Equal(t, "x:Thing", curie)

	curie, ok = e.Abbreviate("http://example.com/Thing")
	require.True(t, ok)
	assert.Equal(t, ":Thing", curie)

	_, ok = e.Abbreviate("http://unrelated/Thing")
	assert.False(t, ok)
}

func TestWithURIDebugTracesParseAndResolve(t *testing.T) {
	log, hook := logrustest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	e, err := env.New("http://example.com/a/b", env.WithURIDebug(log))
	require.NoError(t, err)
	hook.Reset()

	_, ok := e.Expand(tripn.Node{Type: tripn.NodeURI, Value: []byte("g")})
	require.True(t, ok)

	require.NotEmpty(t, hook.Entries)
	for _, entry := range hook.Entries {
		assert.Contains(t, entry.Message, "uri ")
	}
}

func TestPrefixesSorted(t *testing.T) {
	e, err := env.New("")
	require.NoError(t, err)
	require.NoError(t, e.Bind([]byte("z"), []byte("http://z/")))
	require.NoError(t, e.Bind([]byte("a"), []byte("http://a/")))
	assert.Equal(t, []string{"a", "z"}, e.Prefixes())
}
