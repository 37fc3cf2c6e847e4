package ports

import "github.com/aretw0/todotree/pkg/domain"

// OutlineLoader defines how an outline is obtained.
// This allows the source (file, memory) to be decoupled from the inspections.
type OutlineLoader interface {
	// LoadOutline returns the root item of the outline, with parent links and
	// sibling positions wired.
	LoadOutline() (*domain.Item, error)
}
