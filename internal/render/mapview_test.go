package render_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

func locatedEvent(id string, lat, lon float64) domain.EventRecord {
	return domain.EventRecord{
		ID: id, Title: "Event " + id, Type: domain.TypeTour,
		Lat: &lat, Lon: &lon,
	}
}

func TestBuildMapView_Empty(t *testing.T) {
	v := render.BuildMapView(nil, 12, time.Now())
	if !v.Empty {
		t.Fatal("expected empty view for no events")
	}

	// Events exist but none carry coordinates.
	v = render.BuildMapView(testEvents(3), 12, time.Now())
	if !v.Empty {
		t.Fatal("expected empty view for unlocated events")
	}
}

func TestBuildMapView_SingleMarker(t *testing.T) {
	v := render.BuildMapView([]domain.EventRecord{locatedEvent("a", 48.8606, 2.3376)}, 12, time.Now())
	if v.Empty || len(v.Markers) != 1 {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.CenterLat != 48.8606 || v.CenterLon != 2.3376 {
		t.Fatalf("center should be the one event: %v,%v", v.CenterLat, v.CenterLon)
	}
	if v.Zoom != 12 {
		t.Fatalf("zoom = %d", v.Zoom)
	}
	if v.FitBounds {
		t.Fatal("single marker should not fit bounds")
	}
}

func TestBuildMapView_CentroidAndBounds(t *testing.T) {
	events := []domain.EventRecord{
		locatedEvent("a", 48.0, 2.0),
		locatedEvent("b", 50.0, 4.0),
		{ID: "c", Title: "No coords", Type: domain.TypeTour},
	}
	v := render.BuildMapView(events, 12, time.Now())
	if len(v.Markers) != 2 {
		t.Fatalf("expected unlocated event filtered, got %d markers", len(v.Markers))
	}
	if math.Abs(v.CenterLat-49.0) > 1e-9 || math.Abs(v.CenterLon-3.0) > 1e-9 {
		t.Fatalf("centroid = %v,%v", v.CenterLat, v.CenterLon)
	}
	if !v.FitBounds || v.Padding != 0.1 {
		t.Fatalf("expected bounds fitting with padding, got %+v", v)
	}
}

func TestBuildMapView_ZeroCoordinatesAreValid(t *testing.T) {
	// 0,0 is a real place; only absent coordinates are filtered.
	v := render.BuildMapView([]domain.EventRecord{locatedEvent("a", 0, 0)}, 12, time.Now())
	if v.Empty || len(v.Markers) != 1 {
		t.Fatalf("0,0 event should be plotted: %+v", v)
	}
}

func TestBuildMapView_MarkerPopup(t *testing.T) {
	e := locatedEvent("a", 44.4275, 26.0875)
	e.Type = domain.TypeMuseum
	e.City = ptr("Bucharest")
	e.Country = ptr("Romania")
	e.Rating = ptr(4.3)
	e.RatingCount = ptr(651)
	e.Images = []domain.Image{{URL: "https://img.example/a.jpg"}}
	e.BookingURL = ptr("https://example.com/book")

	v := render.BuildMapView([]domain.EventRecord{e}, 12, time.Now())
	m := v.Markers[0]
	if m.Color != "#9C27B0" || m.Icon != "🏛️" {
		t.Fatalf("marker styling: %+v", m)
	}
	p := m.Popup
	if p.BadgeLabel != "Museum" || p.City != "Bucharest" || p.Rating != "4.3 (651)" {
		t.Fatalf("popup: %+v", p)
	}
	if p.Price != "Price N/A" {
		t.Fatalf("popup price fallback: %q", p.Price)
	}
	if p.ImageURL != "https://img.example/a.jpg" || p.BookingURL != "https://example.com/book" {
		t.Fatalf("popup links: %+v", p)
	}
}

func TestBuildSingleMapView(t *testing.T) {
	e := locatedEvent("a", 48.8584, 2.2945)
	e.City = ptr("Paris")

	v, ok := render.BuildSingleMapView(&e)
	if !ok {
		t.Fatal("expected ok for located event")
	}
	if v.Zoom != 15 {
		t.Fatalf("detail map zoom = %d, want 15", v.Zoom)
	}
	if v.CenterLat != 48.8584 || len(v.Markers) != 1 {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Markers[0].Popup.Title != "Event a" || v.Markers[0].Popup.City != "Paris" {
		t.Fatalf("popup: %+v", v.Markers[0].Popup)
	}

	bare := domain.EventRecord{ID: "b", Title: "Nowhere"}
	if _, ok := render.BuildSingleMapView(&bare); ok {
		t.Fatal("expected !ok without coordinates")
	}
}

func TestBuildMapView_RebuildReplacesMarkers(t *testing.T) {
	now := time.Now()
	first := render.BuildMapView([]domain.EventRecord{
		locatedEvent("a", 1, 1),
		locatedEvent("b", 2, 2),
	}, 12, now)

	second := render.BuildMapView([]domain.EventRecord{locatedEvent("c", 3, 3)}, 12, now)
	if len(second.Markers) != 1 || second.Markers[0].Popup.Title != "Event c" {
		t.Fatalf("second build carries stale markers: %+v", second.Markers)
	}
	if len(first.Markers) != 2 {
		t.Fatalf("first build mutated: %+v", first.Markers)
	}
}

func TestMapViewJSON(t *testing.T) {
	v := render.BuildMapView([]domain.EventRecord{locatedEvent("a", 1, 2)}, 12, time.Now())
	s := v.JSON()
	if !strings.Contains(s, `"center_lat":1`) {
		t.Fatalf("json: %s", s)
	}
	var back render.MapView
	if err := json.Unmarshal([]byte(s), &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Zoom != 12 || len(back.Markers) != 1 {
		t.Fatalf("round trip view: %+v", back)
	}
}
