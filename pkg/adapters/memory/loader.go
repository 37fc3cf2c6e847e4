package memory

import (
	"fmt"

	"github.com/aretw0/todotree/pkg/adapters/file"
	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/ports"
)

// Loader implements ports.OutlineLoader from data held in memory.
type Loader struct {
	doc    []byte
	format file.Format
	root   *domain.Item
}

var _ ports.OutlineLoader = (*Loader)(nil)

// NewLoader creates a Loader parsing the given document (YAML or JSON) on
// every LoadOutline call.
func NewLoader(doc string, format file.Format) *Loader {
	return &Loader{doc: []byte(doc), format: format}
}

// NewFromItem creates a Loader handing out an already built tree.
// This improves DX for tests.
func NewFromItem(root *domain.Item) (*Loader, error) {
	if root == nil || root.ID() == "" {
		return nil, fmt.Errorf("root: %w", domain.ErrMissingID)
	}
	return &Loader{root: root}, nil
}

// LoadOutline returns the outline root.
func (l *Loader) LoadOutline() (*domain.Item, error) {
	if l.root != nil {
		return l.root, nil
	}
	return file.Parse(l.doc, l.format)
}
