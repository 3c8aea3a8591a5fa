package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tickets_events/internal/domain"
)

/********** alias registries (single source of truth) **********/

var eventAliases = map[string][]string{
	"id":          {"id", "event_id", "eventId"},
	"title":       {"title", "name", "event_title"},
	"type":        {"type", "category", "event_type"},
	"date":        {"date", "start_date", "startDate"},
	"city":        {"city", "location.city", "address.city"},
	"country":     {"country", "location.country", "address.country"},
	"currency":    {"currency", "price_currency"},
	"description": {"description", "summary", "text"},
	"booking":     {"booking_url", "bookingUrl", "url"},
	"booking_params": {
		"booking_url_with_params", "bookingUrlWithParams", "booking_url_full",
	},
	"qr": {"qr_code_data", "qrCodeData", "qr_code"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstNonEmptyAlias: first non-empty string for a named alias set.
func firstNonEmptyAlias(m map[string]any, key string) *string {
	for _, p := range eventAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return &s
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstIntFlexible: int from several paths (float64/int/string).
func firstIntFlexible(m map[string]any, paths ...string) *int {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int(v)
			return &x
		case int:
			x := v
			return &x
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				return &n
			}
		}
	}
	return nil
}

// firstID: identifiers arrive as numbers or strings depending on source.
func firstID(m map[string]any, paths ...string) string {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// firstSliceStrings: accept []any with plain strings.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		if raw, ok := lookupAny(m, k).([]any); ok {
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				if s, ok := it.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// mapImages: accept []any with either url strings or {url, alt} objects.
func mapImages(m map[string]any, paths ...string) []domain.Image {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]domain.Image, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, domain.Image{URL: t})
				}
			case map[string]any:
				u, _ := t["url"].(string)
				if u == "" {
					u, _ = t["src"].(string)
				}
				if u == "" {
					continue
				}
				alt, _ := t["alt"].(string)
				out = append(out, domain.Image{URL: u, Alt: alt})
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** event mapper **********/

// mapEvent normalizes one raw host event into an EventRecord. Optional
// fields stay nil; the renderers own the placeholder rules.
func mapEvent(raw map[string]any) domain.EventRecord {
	e := domain.EventRecord{
		ID:    firstID(raw, eventAliases["id"]...),
		Title: deref(firstNonEmptyAlias(raw, "title")),
		Type:  domain.EventType(deref(firstNonEmptyAlias(raw, "type"))),

		Date:           firstNonEmptyAlias(raw, "date"),
		AvailableDates: firstSliceStrings(raw, "available_dates", "availableDates", "dates"),

		City:    firstNonEmptyAlias(raw, "city"),
		Country: firstNonEmptyAlias(raw, "country"),
		Lat:     getFloatFlexible(raw, "latitude", "lat", "location.lat"),
		Lon:     getFloatFlexible(raw, "longitude", "lon", "lng", "location.lon", "location.lng"),

		Rating:      getFloatFlexible(raw, "rating", "rating.value", "score"),
		RatingCount: firstIntFlexible(raw, "rating_count", "ratingCount", "reviews_count"),
		Price:       getFloatFlexible(raw, "price", "price_eur"),
		Currency:    deref(firstNonEmptyAlias(raw, "currency")),

		Description: firstNonEmptyAlias(raw, "description"),
		Images:      mapImages(raw, "images", "photos"),

		BookingURL:           firstNonEmptyAlias(raw, "booking"),
		BookingURLWithParams: firstNonEmptyAlias(raw, "booking_params"),
		QRCodeData:           firstNonEmptyAlias(raw, "qr"),
	}
	if e.Currency == "" {
		e.Currency = "EUR"
	}

	if b, err := json.Marshal(raw); err == nil {
		e.RawJSON = b
	} else {
		log.Error().Err(err).Str("context", "mapEvent").Msg("marshal raw event failed")
	}
	return e
}

// mapEvents keeps the host's order untouched.
func mapEvents(in []map[string]any) []domain.EventRecord {
	out := make([]domain.EventRecord, 0, len(in))
	for _, raw := range in {
		out = append(out, mapEvent(raw))
	}
	return out
}
