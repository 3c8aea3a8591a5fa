package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tickets_events/internal/app"
	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

var (
	ErrNoSuchEvent   = errors.New("no event at that index")
	ErrNotSelectable = errors.New("widget kind has no detail view")
	ErrUnknownKind   = errors.New("unknown widget kind")
)

// Instance is one configured widget. Config is immutable after setup;
// the only mutable view state is the enhanced card's selection, guarded
// by mu because fragment requests arrive on arbitrary goroutines.
type Instance struct {
	ID  string
	Cfg domain.WidgetConfig

	mu       sync.Mutex
	phase    domain.Phase
	selected *domain.EventRecord
}

// NewInstance validates the config eagerly: a missing entity is fatal at
// setup, not a render-time degradation.
func NewInstance(cfg domain.WidgetConfig) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Kind {
	case domain.KindCard, domain.KindEnhanced, domain.KindMap:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	return &Instance{ID: uuid.NewString(), Cfg: cfg}, nil
}

// Select transitions LIST -> DETAIL, capturing the record at idx. The
// record is copied so the open detail panel keeps showing what was
// selected even if the host pushes a new snapshot underneath it.
// Re-selecting while in DETAIL replaces the selection wholesale.
func (w *Instance) Select(snap domain.Snapshot, idx int) error {
	if w.Cfg.Kind != domain.KindEnhanced {
		return ErrNotSelectable
	}
	if idx < 0 || idx >= len(snap.Events) || idx >= w.Cfg.MaxEvents {
		return fmt.Errorf("%w: index %d", ErrNoSuchEvent, idx)
	}
	rec := snap.Events[idx]
	w.mu.Lock()
	w.phase = domain.PhaseDetail
	w.selected = &rec
	w.mu.Unlock()
	return nil
}

// Close returns to LIST and drops the selection. Closing an already
// closed widget is a no-op.
func (w *Instance) Close() {
	w.mu.Lock()
	w.phase = domain.PhaseList
	w.selected = nil
	w.mu.Unlock()
}

// State reports the current phase and selection (nil in LIST).
func (w *Instance) State() (domain.Phase, *domain.EventRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase, w.selected
}

// RenderDeps carries what a render needs. Now is injectable so the date
// bucketing is testable across day boundaries.
type RenderDeps struct {
	Snapshots *app.SnapshotService
	Renderer  *render.Renderer
	Now       func() time.Time
}

// Render produces the widget's current fragment. A missing snapshot for
// the configured entity renders an explanatory message, never an error;
// it resolves itself on the next host push.
func (w *Instance) Render(ctx context.Context, deps RenderDeps) ([]byte, error) {
	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}
	snap, err := deps.Snapshots.Get(ctx, w.Cfg.Entity)
	if errors.Is(err, domain.ErrNoSnapshot) {
		return deps.Renderer.Message(render.MessageView{
			Text: fmt.Sprintf("Entity %s not found.", w.Cfg.Entity),
		})
	}
	if err != nil {
		return nil, err
	}
	switch w.Cfg.Kind {
	case domain.KindCard:
		return w.renderCard(deps, snap, now)
	case domain.KindEnhanced:
		return w.renderEnhanced(deps, snap, now)
	case domain.KindMap:
		return w.renderMapCard(deps, snap, now)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, w.Cfg.Kind)
}

// Manager owns the configured instances.
type Manager struct {
	mu   sync.RWMutex
	byID map[string]*Instance
	list []*Instance
}

func NewManager(cfgs []domain.WidgetConfig) (*Manager, error) {
	m := &Manager{byID: make(map[string]*Instance, len(cfgs))}
	for _, cfg := range cfgs {
		inst, err := NewInstance(cfg)
		if err != nil {
			return nil, err
		}
		m.byID[inst.ID] = inst
		m.list = append(m.list, inst)
	}
	return m, nil
}

func (m *Manager) Get(id string) (*Instance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inst, ok := m.byID[id]
	return inst, ok
}

func (m *Manager) List() []*Instance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Instance, len(m.list))
	copy(out, m.list)
	return out
}
