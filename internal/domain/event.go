package domain

// EventType tags an event with one of the known categories. Anything
// outside the known set renders with the neutral badge.
type EventType string

const (
	TypeTour       EventType = "tour"
	TypeMuseum     EventType = "museum"
	TypeConcert    EventType = "concert"
	TypeAttraction EventType = "attraction"
	TypeFoodTour   EventType = "food_tour"
	TypeShow       EventType = "show"
	TypeCruise     EventType = "cruise"
)

// EventRecord is one bookable activity as supplied by the host snapshot.
// The widget layer never mutates a record; optional fields stay nil when
// the source omitted them and every renderer degrades per-field.
type EventRecord struct {
	ID                   string
	Title                string
	Type                 EventType
	Date                 *string // calendar date string, host format
	AvailableDates       []string
	City, Country        *string
	Lat, Lon             *float64
	Rating               *float64
	RatingCount          *int
	Price                *float64
	Currency             string // defaults to EUR in the mapper
	Description          *string
	Images               []Image
	BookingURL           *string
	BookingURLWithParams *string
	QRCodeData           *string // data URI
	RawJSON              []byte  // full host payload for this event
}

type Image struct {
	URL string
	Alt string
}

// Coords returns the record's coordinate pair, or ok=false when either
// half is missing. A 0,0 coordinate is valid.
func (e *EventRecord) Coords() (lat, lon float64, ok bool) {
	if e.Lat == nil || e.Lon == nil {
		return 0, 0, false
	}
	return *e.Lat, *e.Lon, true
}

// ResolveBookingURL picks the parameterized booking URL when present,
// falling back to the plain one. ok=false means the booking affordance
// must be inert.
func (e *EventRecord) ResolveBookingURL() (string, bool) {
	if e.BookingURLWithParams != nil && *e.BookingURLWithParams != "" {
		return *e.BookingURLWithParams, true
	}
	if e.BookingURL != nil && *e.BookingURL != "" {
		return *e.BookingURL, true
	}
	return "", false
}

// Snapshot is the host-pushed state for one entity: the full ordered
// event sequence plus optional destination metadata.
type Snapshot struct {
	Entity           string
	DestinationTitle *string
	Events           []EventRecord
	PushedAtUnix     int64
}
