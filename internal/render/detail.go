package render

import (
	"html/template"
	"time"

	"tickets_events/internal/domain"
)

// Detail panel limits: how many extra available dates show as chips
// before collapsing into an overflow count.
const maxDateChips = 3

// DetailView is the display model for the enhanced card's modal.
type DetailView struct {
	Title       string
	Badge       Badge
	Date        string
	Location    string
	ImageURL    string
	Rating      string // long form, "" omits the row
	Description string

	HasMap bool
	Map    MapView

	Price      string
	DateChips  []string
	MoreDates  int
	// QRData is a data URI; html/template's URL filter rejects the data
	// scheme, so it is typed as a pre-sanitized URL. "" shows the
	// decorative placeholder instead.
	QRData     template.URL
	BookingURL string
	HasBooking bool
}

// BuildDetailView expands one selected record into the full-information
// panel model. Every optional field degrades to an omitted section or a
// placeholder, mirroring the list renderer's rules.
func BuildDetailView(e *domain.EventRecord, now time.Time) DetailView {
	v := DetailView{
		Title:       e.Title,
		Badge:       TypeBadge(e.Type),
		Date:        FormatDate(e.Date, now),
		Location:    Location(e.City, e.Country, true),
		Rating:      FormatRatingLong(e.Rating, e.RatingCount),
		Description: "No description available.",
		Price:       FormatPrice(e.Price, e.Currency, "N/A"),
	}
	if len(e.Images) > 0 {
		v.ImageURL = e.Images[0].URL
	}
	if e.Description != nil && *e.Description != "" {
		v.Description = *e.Description
	}
	if mv, ok := BuildSingleMapView(e); ok {
		v.HasMap = true
		v.Map = mv
	}
	for i, d := range e.AvailableDates {
		if i == maxDateChips {
			v.MoreDates = len(e.AvailableDates) - maxDateChips
			break
		}
		v.DateChips = append(v.DateChips, FormatDate(&d, now))
	}
	if e.QRCodeData != nil {
		v.QRData = template.URL(*e.QRCodeData)
	}
	v.BookingURL, v.HasBooking = e.ResolveBookingURL()
	return v
}
