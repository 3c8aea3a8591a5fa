package widget

import (
	"time"

	"tickets_events/internal/adapters/observability"
	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

func init() {
	Register(Descriptor{
		Type:        domain.KindCard,
		Name:        "Tickets & Events Card",
		Description: "Display events with summary cards and booking buttons",
		Preview:     true,
	})
}

func (w *Instance) renderCard(deps RenderDeps, snap domain.Snapshot, now time.Time) ([]byte, error) {
	observability.ObserveRender(domain.KindCard)
	return deps.Renderer.Card(render.CardView{
		WidgetID: w.ID,
		Entity:   w.Cfg.Entity,
		List:     render.BuildListView(w.Cfg, snap, now, render.StyleCard),
	})
}
