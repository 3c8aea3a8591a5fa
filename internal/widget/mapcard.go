package widget

import (
	"time"

	"tickets_events/internal/adapters/observability"
	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

func init() {
	Register(Descriptor{
		Type:        domain.KindMap,
		Name:        "Tickets & Events Map",
		Description: "Show all events on an interactive map",
		Preview:     true,
	})
}

func (w *Instance) renderMapCard(deps RenderDeps, snap domain.Snapshot, now time.Time) ([]byte, error) {
	observability.ObserveRender(domain.KindMap)
	title := "Events Map"
	if w.Cfg.Title != nil && *w.Cfg.Title != "" {
		title = *w.Cfg.Title
	}
	return deps.Renderer.MapCard(render.MapCardView{
		WidgetID: w.ID,
		Entity:   w.Cfg.Entity,
		Title:    title,
		Height:   w.Cfg.Height,
		Map:      render.BuildMapView(snap.Events, w.Cfg.Zoom, now),
	})
}
