package domain

import "errors"

// Widget kinds, mirrored in the catalog registry.
const (
	KindCard     = "tickets-events-card"
	KindEnhanced = "tickets-events-card-enhanced"
	KindMap      = "tickets-events-map"
)

// ErrEntityRequired is the fatal configuration error: a widget without an
// entity reference can never render anything.
var ErrEntityRequired = errors.New("widget config: entity is required")

// WidgetConfig is set once at setup and immutable afterwards.
type WidgetConfig struct {
	Kind       string
	Entity     string
	Title      *string
	MaxEvents  int    // default 5
	ShowImages bool   // default true
	ShowRating bool   // default true
	ShowPrice  bool   // default true
	Height     string // map card, default "400px"
	Zoom       int    // map card, default 12
}

// Validate applies defaults and rejects configs missing the entity.
func (c *WidgetConfig) Validate() error {
	if c.Entity == "" {
		return ErrEntityRequired
	}
	if c.MaxEvents <= 0 {
		c.MaxEvents = 5
	}
	if c.Height == "" {
		c.Height = "400px"
	}
	if c.Zoom <= 0 {
		c.Zoom = 12
	}
	return nil
}

// View phases of the enhanced card's detail state machine.
type Phase int

const (
	PhaseList Phase = iota
	PhaseDetail
)
