package widget

import (
	"time"

	"tickets_events/internal/adapters/observability"
	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

func init() {
	Register(Descriptor{
		Type:        domain.KindEnhanced,
		Name:        "Tickets & Events Card Enhanced",
		Description: "Event list with detail modal, map, QR code and booking",
		Preview:     true,
	})
}

func (w *Instance) renderEnhanced(deps RenderDeps, snap domain.Snapshot, now time.Time) ([]byte, error) {
	observability.ObserveRender(domain.KindEnhanced)
	v := render.EnhancedView{
		WidgetID: w.ID,
		Entity:   w.Cfg.Entity,
		List:     render.BuildListView(w.Cfg, snap, now, render.StyleEnhanced),
	}
	if phase, sel := w.State(); phase == domain.PhaseDetail && sel != nil {
		dv := render.BuildDetailView(sel, now)
		v.Detail = &dv
	}
	return deps.Renderer.Enhanced(v)
}
