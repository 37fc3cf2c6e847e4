package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/todotree/internal/dto"
	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/dsl"
	"github.com/aretw0/todotree/pkg/ports"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax understood by Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension, defaulting to YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads an outline file (YAML or JSON) and returns its root item.
func Load(path string) (*domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}
	root, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return root, nil
}

// Parse decodes an outline document held in memory.
func Parse(data []byte, format Format) (*domain.Item, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse outline json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse outline yaml: %w", err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("empty outline document")
	}

	var outline dto.OutlineItem
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &outline,
		// ids written as bare numbers in YAML still decode to strings
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode outline: %w", err)
	}

	b := dsl.New()
	if err := add(b, outline, ""); err != nil {
		return nil, err
	}
	return b.Build()
}

func add(b *dsl.Builder, item dto.OutlineItem, parentID string) error {
	if item.ID == "" {
		if parentID == "" {
			return fmt.Errorf("root: %w", domain.ErrMissingID)
		}
		return fmt.Errorf("child of %q: %w", parentID, domain.ErrMissingID)
	}
	if b.Has(item.ID) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateID, item.ID)
	}

	nb := b.Add(item.ID).Name(item.Name).Note(item.Note).Tag(item.Tags...)
	if item.Completed {
		nb.Done()
	}
	if parentID != "" {
		nb.Under(parentID)
	}
	for _, child := range item.Children {
		if err := add(b, child, item.ID); err != nil {
			return err
		}
	}
	return nil
}

// Loader implements ports.OutlineLoader for a file on disk.
// The file is read again on every LoadOutline call.
type Loader struct {
	Path string
}

var _ ports.OutlineLoader = (*Loader)(nil)

// NewLoader creates a Loader for path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// LoadOutline reads and parses the file.
func (l *Loader) LoadOutline() (*domain.Item, error) {
	return Load(l.Path)
}
