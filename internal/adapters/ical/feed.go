// Package ical exports a snapshot's dated events as an iCalendar feed so
// calendar clients can subscribe to a destination's upcoming events.
package ical

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

// Build serializes every event with a parseable date as an all-day
// VEVENT. Undated events are skipped; a feed is about when, and an
// event with no date has no when.
func Build(snap domain.Snapshot, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tickets-events//widget-server//EN")
	if snap.DestinationTitle != nil && *snap.DestinationTitle != "" {
		cal.SetName(*snap.DestinationTitle)
	}

	loc := now.Location()
	for i := range snap.Events {
		e := &snap.Events[i]
		if e.Date == nil {
			continue
		}
		day, ok := render.ParseDate(*e.Date, loc)
		if !ok {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("%s@%s", e.ID, snap.Entity))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(e.Title)
		ev.SetLocation(render.Location(e.City, e.Country, true))
		ev.SetDescription(describe(e))
		if u, ok := e.ResolveBookingURL(); ok {
			ev.SetURL(u)
		}
	}
	return cal.Serialize()
}

// describe composes the VEVENT description from the fields a calendar
// entry can usefully carry.
func describe(e *domain.EventRecord) string {
	var parts []string
	if b := render.TypeBadge(e.Type); b.Label != "" {
		parts = append(parts, "Type: "+b.Label)
	}
	parts = append(parts, "Price: "+render.FormatPrice(e.Price, e.Currency, "N/A"))
	if r := render.FormatRating(e.Rating, e.RatingCount); r != "" {
		parts = append(parts, "Rating: "+r)
	}
	if e.Description != nil && *e.Description != "" {
		parts = append(parts, *e.Description)
	}
	if u, ok := e.ResolveBookingURL(); ok {
		parts = append(parts, "Book: "+u)
	}
	return strings.Join(parts, "\n")
}
