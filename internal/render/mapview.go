package render

import (
	"encoding/json"
	"time"

	"tickets_events/internal/domain"
)

// Zoom levels: single-event detail maps zoom in close, multi-event maps
// start from the configured default and then fit bounds.
const (
	singleEventZoom = 15
	boundsPadding   = 0.1
)

// Marker is one plotted event. Popup fields are resolved here so the
// client script only places what it is given.
type Marker struct {
	Lat   float64     `json:"lat"`
	Lon   float64     `json:"lon"`
	Color string      `json:"color"`
	Icon  string      `json:"icon"`
	Popup MarkerPopup `json:"popup"`
}

type MarkerPopup struct {
	ImageURL   string `json:"image_url,omitempty"`
	BadgeLabel string `json:"badge_label"`
	BadgeColor string `json:"badge_color"`
	Title      string `json:"title"`
	Rating     string `json:"rating,omitempty"`
	City       string `json:"city"`
	Price      string `json:"price"`
	BookingURL string `json:"booking_url,omitempty"`
}

// MapView is the full display model for one map render. It is rebuilt
// from scratch on every invocation; the client discards any previous map
// instance before applying it.
type MapView struct {
	Empty     bool     `json:"empty"`
	CenterLat float64  `json:"center_lat"`
	CenterLon float64  `json:"center_lon"`
	Zoom      int      `json:"zoom"`
	FitBounds bool     `json:"fit_bounds"`
	Padding   float64  `json:"padding,omitempty"`
	Markers   []Marker `json:"markers"`
}

// JSON serializes the view for the data attribute the init script reads.
func (m MapView) JSON() string {
	b, err := json.Marshal(m)
	if err != nil {
		return `{"empty":true}`
	}
	return string(b)
}

// BuildMapView plots every located event: centroid center, configured
// zoom, one styled marker per event, bounds fitting when more than one
// marker exists. Events without both coordinates are filtered out; if
// none remain the view is Empty and the template renders the no-location
// message instead of a map.
func BuildMapView(events []domain.EventRecord, zoom int, now time.Time) MapView {
	located := make([]*domain.EventRecord, 0, len(events))
	for i := range events {
		if _, _, ok := events[i].Coords(); ok {
			located = append(located, &events[i])
		}
	}
	if len(located) == 0 {
		return MapView{Empty: true}
	}

	var sumLat, sumLon float64
	markers := make([]Marker, 0, len(located))
	for _, e := range located {
		lat, lon, _ := e.Coords()
		sumLat += lat
		sumLon += lon
		markers = append(markers, buildMarker(e, lat, lon, now))
	}

	v := MapView{
		CenterLat: sumLat / float64(len(located)),
		CenterLon: sumLon / float64(len(located)),
		Zoom:      zoom,
		Markers:   markers,
	}
	if len(markers) > 1 {
		v.FitBounds = true
		v.Padding = boundsPadding
	}
	return v
}

// BuildSingleMapView is the detail panel's mode: centered on the one
// event at a fixed close zoom, plain marker, title+city popup. ok=false
// when the record has no coordinates.
func BuildSingleMapView(e *domain.EventRecord) (MapView, bool) {
	lat, lon, ok := e.Coords()
	if !ok {
		return MapView{Empty: true}, false
	}
	return MapView{
		CenterLat: lat,
		CenterLon: lon,
		Zoom:      singleEventZoom,
		Markers: []Marker{{
			Lat: lat,
			Lon: lon,
			Popup: MarkerPopup{
				Title: e.Title,
				City:  Location(e.City, nil, false),
			},
		}},
	}, true
}

func buildMarker(e *domain.EventRecord, lat, lon float64, now time.Time) Marker {
	badge := TypeBadge(e.Type)
	m := Marker{
		Lat:   lat,
		Lon:   lon,
		Color: badge.Color,
		Icon:  badge.Icon,
		Popup: MarkerPopup{
			BadgeLabel: badge.Label,
			BadgeColor: badge.Color,
			Title:      e.Title,
			Rating:     FormatRating(e.Rating, e.RatingCount),
			City:       Location(e.City, nil, false),
			Price:      FormatPrice(e.Price, e.Currency, "Price N/A"),
		},
	}
	if len(e.Images) > 0 {
		m.Popup.ImageURL = e.Images[0].URL
	}
	if u, ok := e.ResolveBookingURL(); ok {
		m.Popup.BookingURL = u
	}
	return m
}
