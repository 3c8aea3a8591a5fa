// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"tickets_events/internal/adapters/ical"
	"tickets_events/internal/adapters/observability"
	"tickets_events/internal/app"
	"tickets_events/internal/widget"
)

type Handlers struct {
	Snapshots *app.SnapshotService
	Widgets   *widget.Manager
	Deps      widget.RenderDeps

	// PushLimiter throttles host snapshot pushes. Nil disables limiting.
	PushLimiter *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Put("/v1/snapshots/{entity}", h.pushSnapshot)
	s.mux.Get("/v1/snapshots/{entity}", h.getSnapshot)
	s.mux.Get("/v1/snapshots/{entity}/calendar.ics", h.calendarFeed)

	s.mux.Get("/v1/widgets", h.listWidgets)
	s.mux.Get("/v1/widgets/{id}", h.renderWidget)
	s.mux.Post("/v1/widgets/{id}/select/{index}", h.selectEvent)
	s.mux.Post("/v1/widgets/{id}/close", h.closeDetail)

	s.MountAssets()
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- snapshots ----

func (h *Handlers) pushSnapshot(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	if h.PushLimiter != nil && !h.PushLimiter.Allow() {
		observability.ObserveSnapshotPush(entity, "rejected")
		writeProblem(w, http.StatusTooManyRequests, "Rate Limited", "snapshot push rate exceeded")
		return
	}
	var in app.SnapshotInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		observability.ObserveSnapshotPush(entity, "error")
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON snapshot")
		return
	}
	snap, err := h.Snapshots.Push(r.Context(), entity, in)
	if err != nil {
		observability.ObserveSnapshotPush(entity, "error")
		log.Error().Err(err).Str("entity", entity).Msg("snapshot push failed")
		writeProblem(w, http.StatusInternalServerError, "Push Failed", "could not store snapshot")
		return
	}
	observability.ObserveSnapshotPush(entity, "ok")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"entity": entity, "events": len(snap.Events)})
}

func (h *Handlers) getSnapshot(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	snap, err := h.Snapshots.Get(r.Context(), entity)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no snapshot for entity")
		return
	}

	etag, body := calcETagAndBody(snap)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write snapshot body")
	}
}

func (h *Handlers) calendarFeed(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	snap, err := h.Snapshots.Get(r.Context(), entity)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "no snapshot for entity")
		return
	}
	feed := ical.Build(snap, h.now())
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Error().Err(err).Msg("failed to write calendar feed")
	}
}

// ---- widgets ----

type widgetInstance struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Entity string  `json:"entity"`
	Title  *string `json:"title,omitempty"`
}

func (h *Handlers) listWidgets(w http.ResponseWriter, r *http.Request) {
	instances := make([]widgetInstance, 0)
	for _, inst := range h.Widgets.List() {
		instances = append(instances, widgetInstance{
			ID:     inst.ID,
			Kind:   inst.Cfg.Kind,
			Entity: inst.Cfg.Entity,
			Title:  inst.Cfg.Title,
		})
	}
	resp := map[string]any{
		"catalog": widget.Catalog(),
		"widgets": instances,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) renderWidget(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Widgets.Get(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown widget")
		return
	}
	h.writeFragment(w, r, inst)
}

func (h *Handlers) selectEvent(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Widgets.Get(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown widget")
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Index", "index must be an integer")
		return
	}
	snap, err := h.Snapshots.Get(r.Context(), inst.Cfg.Entity)
	if err != nil {
		writeProblem(w, http.StatusConflict, "No Snapshot", "entity has no events to select")
		return
	}
	if err := inst.Select(snap, idx); err != nil {
		switch {
		case errors.Is(err, widget.ErrNotSelectable):
			writeProblem(w, http.StatusBadRequest, "Not Selectable", "widget kind has no detail view")
		case errors.Is(err, widget.ErrNoSuchEvent):
			writeProblem(w, http.StatusBadRequest, "Invalid Index", err.Error())
		default:
			writeProblem(w, http.StatusInternalServerError, "Select Failed", err.Error())
		}
		return
	}
	h.writeFragment(w, r, inst)
}

func (h *Handlers) closeDetail(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Widgets.Get(chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown widget")
		return
	}
	inst.Close()
	h.writeFragment(w, r, inst)
}

// writeFragment renders the widget's current state as an HTML fragment.
// The markup is regenerated wholesale on every call; the client script
// swaps it in and re-binds handlers.
func (h *Handlers) writeFragment(w http.ResponseWriter, r *http.Request, inst *widget.Instance) {
	frag, err := inst.Render(r.Context(), h.Deps)
	if err != nil {
		log.Error().Err(err).Str("widget", inst.ID).Msg("widget render failed")
		writeProblem(w, http.StatusInternalServerError, "Render Failed", "widget could not be rendered")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(frag); err != nil {
		log.Error().Err(err).Str("widget", inst.ID).Msg("failed to write fragment")
	}
}

// now resolves the injectable clock shared with the render deps.
func (h *Handlers) now() time.Time {
	if h.Deps.Now != nil {
		return h.Deps.Now()
	}
	return time.Now()
}
