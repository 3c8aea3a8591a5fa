package widget

import "sync"

// Descriptor advertises one widget kind in the catalog the host queries
// to discover available widget types.
type Descriptor struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     bool   `json:"preview"`
}

var (
	regMu   sync.Mutex
	catalog []Descriptor
)

// Register adds a widget kind to the process-wide catalog. Each kind
// registers itself once at package init.
func Register(d Descriptor) {
	regMu.Lock()
	defer regMu.Unlock()
	catalog = append(catalog, d)
}

// Catalog returns a copy of the registered widget kinds.
func Catalog() []Descriptor {
	regMu.Lock()
	defer regMu.Unlock()
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}
