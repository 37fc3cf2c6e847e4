package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	b := dsl.New()
	r := b.Add("inbox").Name("Inbox")
	e := r.Child("errands").Name("Errands")
	e.Child("milk").Name("Milk").Done()
	r.Child("call")
	root, err := b.Build()
	require.NoError(t, err)

	want := "- [ ] Inbox\n" +
		"  - [ ] Errands\n" +
		"    - [x] Milk\n" +
		"  - [ ] call\n"
	assert.Equal(t, want, Outline(root))

	out, err := RenderOutline(root, false)
	require.NoError(t, err)
	assert.Contains(t, out, "Inbox")
	assert.Contains(t, out, "Milk")
}

func TestOutline_Nil(t *testing.T) {
	var root *domain.Item
	assert.Equal(t, "", Outline(root))
	assert.Equal(t, "", Outline(nil))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_|")
}
