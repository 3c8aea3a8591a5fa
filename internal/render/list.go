package render

import (
	"time"

	"tickets_events/internal/domain"
)

// ListStyle captures the small presentation differences between the two
// list-bearing cards: the basic card labels missing prices "Free" and
// shows the country next to the city, the enhanced card says "N/A" and
// shows the city alone.
type ListStyle struct {
	PriceFallback string
	WithCountry   bool
	PerPerson     bool // basic card appends a "per person" label to real prices
}

var (
	StyleCard     = ListStyle{PriceFallback: "Free", WithCountry: true, PerPerson: true}
	StyleEnhanced = ListStyle{PriceFallback: "N/A", WithCountry: false}
)

// ListItem is one summary card, fully resolved for the template.
type ListItem struct {
	Index       int
	ID          string
	Title       string
	Badge       Badge
	Date        string
	ImageURL    string // "" omits the <img> entirely
	Rating      string // "" omits the rating row
	Location    string
	Description string
	Price       string // "" when show_price is off
	PerPerson   bool
	BookingURL  string
	HasBooking  bool
}

// ListView is the display model for a whole list card.
type ListView struct {
	Title string
	Total int
	Items []ListItem
}

// BuildListView truncates the snapshot's events to the pagination ceiling,
// preserving order, and resolves each record's display fields. It never
// filters or reorders; an empty snapshot yields an empty Items slice and
// the template shows the no-events message.
func BuildListView(cfg domain.WidgetConfig, snap domain.Snapshot, now time.Time, style ListStyle) ListView {
	v := ListView{Title: cardTitle(cfg, snap), Total: len(snap.Events)}
	n := cfg.MaxEvents
	if n > len(snap.Events) {
		n = len(snap.Events)
	}
	v.Items = make([]ListItem, 0, n)
	for i := 0; i < n; i++ {
		v.Items = append(v.Items, buildListItem(&snap.Events[i], i, cfg, now, style))
	}
	return v
}

func buildListItem(e *domain.EventRecord, idx int, cfg domain.WidgetConfig, now time.Time, style ListStyle) ListItem {
	it := ListItem{
		Index:    idx,
		ID:       e.ID,
		Title:    e.Title,
		Badge:    TypeBadge(e.Type),
		Date:     FormatDate(e.Date, now),
		Location: Location(e.City, e.Country, style.WithCountry),
	}
	if cfg.ShowImages && len(e.Images) > 0 {
		it.ImageURL = e.Images[0].URL
	}
	if cfg.ShowRating {
		it.Rating = FormatRating(e.Rating, e.RatingCount)
	}
	if cfg.ShowPrice {
		it.Price = FormatPrice(e.Price, e.Currency, style.PriceFallback)
		it.PerPerson = style.PerPerson && e.Price != nil && *e.Price > 0
	}
	if e.Description != nil {
		it.Description = *e.Description
	}
	it.BookingURL, it.HasBooking = e.ResolveBookingURL()
	return it
}

// cardTitle resolves the header text: config override, then the
// snapshot's destination title, then a generic fallback.
func cardTitle(cfg domain.WidgetConfig, snap domain.Snapshot) string {
	if cfg.Title != nil && *cfg.Title != "" {
		return *cfg.Title
	}
	if snap.DestinationTitle != nil && *snap.DestinationTitle != "" {
		return *snap.DestinationTitle
	}
	return "Events"
}
