package memory_test

import (
	"testing"

	"github.com/aretw0/todotree/pkg/adapters/file"
	"github.com/aretw0/todotree/pkg/adapters/memory"
	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/dsl"
	contract "github.com/aretw0/todotree/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
id: R
children:
  - id: A
    children:
      - id: C
      - id: D
  - id: B
`

func TestInMemoryLoader_Contract(t *testing.T) {
	contract.OutlineLoaderContractTest(t, memory.NewLoader(doc, file.FormatYAML), []string{"R", "A", "B", "C", "D"})
}

func TestNewFromItem_Contract(t *testing.T) {
	b := dsl.New()
	r := b.Add("R")
	r.Child("A").Child("C")
	r.Child("B")
	root, err := b.Build()
	require.NoError(t, err)

	loader, err := memory.NewFromItem(root)
	require.NoError(t, err)
	contract.OutlineLoaderContractTest(t, loader, []string{"R", "A", "B", "C"})
}

func TestNewFromItem_MissingRoot(t *testing.T) {
	_, err := memory.NewFromItem(nil)
	assert.ErrorIs(t, err, domain.ErrMissingID)
}
