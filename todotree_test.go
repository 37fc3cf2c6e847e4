package todotree_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/todotree"
	"github.com/aretw0/todotree/pkg/adapters/file"
	"github.com/aretw0/todotree/pkg/adapters/memory"
	"github.com/aretw0/todotree/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	outline, err := todotree.Open("testdata/inbox.yaml")
	require.NoError(t, err)

	assert.Equal(t, "inbox", outline.Name)
	assert.Equal(t, 5, outline.Len())
	assert.Equal(t, []string{"inbox", "errands", "call", "milk", "bread"}, outline.Order())
}

func TestOpen_Options(t *testing.T) {
	outline, err := todotree.Open("testdata/inbox.yaml", todotree.WithName("weekly"))
	require.NoError(t, err)
	assert.Equal(t, "weekly", outline.Name)

	_, err = todotree.Open("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_Memory(t *testing.T) {
	outline, err := todotree.Load(memory.NewLoader(`{"id": "R", "children": [{"id": "A"}, {"id": "B"}]}`, file.FormatJSON))
	require.NoError(t, err)
	assert.Equal(t, "R", outline.Name)
	assert.Equal(t, []string{"R", "A", "B"}, outline.Order())
}

func TestOutline_Prettify(t *testing.T) {
	b := dsl.New()
	r := b.Add("R").Name("root")
	r.Child("A").Name("a")
	root, err := b.Build()
	require.NoError(t, err)

	outline := todotree.New(root)
	assert.Equal(t, "R", outline.Name)
	assert.Equal(t, "{id: \"R\", name: \"root\"}\n  {id: \"A\", name: \"a\"}", outline.Prettify("name", "missing_attr"))
	assert.Equal(t, "{id: \"R\", completed: false, name: \"root\"}\n  {id: \"A\", completed: false, name: \"a\"}", outline.Prettify())

	var buf bytes.Buffer
	require.NoError(t, outline.Fprint(&buf, "name"))
	assert.Equal(t, outline.Prettify("name")+"\n", buf.String())
}

func TestOutline_Mermaid(t *testing.T) {
	outline, err := todotree.Open("testdata/inbox.yaml")
	require.NoError(t, err)

	got := outline.Mermaid("call")
	assert.Contains(t, got, "n0 --> n1")
	assert.Contains(t, got, "class n3 completed;")
	assert.Contains(t, got, "class n2 current;")
}
