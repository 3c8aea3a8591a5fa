package render

import (
	"fmt"
	"strings"
	"time"

	"tickets_events/internal/domain"
)

// DatePlaceholder is what every card shows when a record has no usable date.
const DatePlaceholder = "Date TBA"

// Badge is the display form of an event type.
type Badge struct {
	Label string
	Color string
	Icon  string
}

// neutral badge for unrecognized or absent types
var defaultBadge = Badge{Label: "Event", Color: "#757575", Icon: "📌"}

var typeBadges = map[domain.EventType]Badge{
	domain.TypeTour:       {Label: "Tour", Color: "#2196F3", Icon: "🗺️"},
	domain.TypeMuseum:     {Label: "Museum", Color: "#9C27B0", Icon: "🏛️"},
	domain.TypeConcert:    {Label: "Concert", Color: "#E91E63", Icon: "🎵"},
	domain.TypeAttraction: {Label: "Attraction", Color: "#FF9800", Icon: "🎡"},
	domain.TypeFoodTour:   {Label: "Food Tour", Color: "#4CAF50", Icon: "🍽️"},
	domain.TypeShow:       {Label: "Show", Color: "#F44336", Icon: "🎭"},
	domain.TypeCruise:     {Label: "Cruise", Color: "#00BCD4", Icon: "⛴️"},
}

// TypeBadge looks up the badge for a type, falling back to the neutral one.
// A non-empty unknown type keeps its own text as the label so the host's
// tag still shows up, just without a dedicated color.
func TypeBadge(t domain.EventType) Badge {
	if b, ok := typeBadges[t]; ok {
		return b
	}
	if t != "" {
		b := defaultBadge
		b.Label = strings.ReplaceAll(string(t), "_", " ")
		return b
	}
	return defaultBadge
}

// dateLayouts are tried in order when parsing host-supplied date strings.
// ParseDate is shared with the calendar feed, which needs the instant
// rather than the bucketed label.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// calendarDay truncates an instant to its local midnight. Bucketing must
// compare days, not instants: 23:59 today and 00:01 tomorrow are one day
// apart even though the instants are two minutes apart.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// FormatDate buckets a raw date against "now": Today, Tomorrow, or an
// abbreviated month/day (with year when it differs from the current one).
// Absent or unparseable input degrades to DatePlaceholder.
func FormatDate(raw *string, now time.Time) string {
	if raw == nil {
		return DatePlaceholder
	}
	loc := now.Location()
	t, ok := ParseDate(*raw, loc)
	if !ok {
		return DatePlaceholder
	}
	day := calendarDay(t, loc)
	today := calendarDay(now, loc)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case day.Year() == today.Year():
		return day.Format("Jan 2")
	default:
		return day.Format("Jan 2, 2006")
	}
}

// FormatPrice renders a positive price with two decimals and its currency
// code. Absent or non-positive prices fall back to the caller's label:
// the list card says "Free", the enhanced and map surfaces say "N/A".
func FormatPrice(price *float64, currency, fallback string) string {
	if price == nil || *price <= 0 {
		return fallback
	}
	if currency == "" {
		currency = "EUR"
	}
	return fmt.Sprintf("%.2f %s", *price, currency)
}

// FormatRating renders "4.3 (651)", with the review count defaulting to 0.
// Returns "" when there is no rating, which omits the rating row.
func FormatRating(rating *float64, count *int) string {
	if rating == nil {
		return ""
	}
	n := 0
	if count != nil {
		n = *count
	}
	return fmt.Sprintf("%.1f (%d)", *rating, n)
}

// FormatRatingLong is the detail panel variant: "4.3 / 5 (651 reviews)".
func FormatRatingLong(rating *float64, count *int) string {
	if rating == nil {
		return ""
	}
	n := 0
	if count != nil {
		n = *count
	}
	return fmt.Sprintf("%.1f / 5 (%d reviews)", *rating, n)
}

// Location renders "City, Country" with per-part fallbacks. The list
// renderer passes withCountry=false to show the city alone.
func Location(city, country *string, withCountry bool) string {
	c := "Unknown"
	if city != nil && *city != "" {
		c = *city
	}
	if !withCountry || country == nil || *country == "" {
		return c
	}
	return c + ", " + *country
}
