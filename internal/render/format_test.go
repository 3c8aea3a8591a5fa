package render_test

import (
	"testing"
	"time"

	"tickets_events/internal/domain"
	"tickets_events/internal/render"
)

func ptr[T any](v T) *T { return &v }

func TestFormatDate_Buckets(t *testing.T) {
	// Fixed "now" late in the evening so day bucketing, not instant
	// arithmetic, decides Today vs Tomorrow.
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  *string
		want string
	}{
		{"nil", nil, "Date TBA"},
		{"garbage", ptr("not-a-date"), "Date TBA"},
		{"empty", ptr(""), "Date TBA"},
		{"today", ptr("2026-03-14"), "Today"},
		{"today late instant", ptr("2026-03-14T00:01:00"), "Today"},
		{"tomorrow", ptr("2026-03-15"), "Tomorrow"},
		{"tomorrow early instant", ptr("2026-03-15T00:01:00Z"), "Tomorrow"},
		{"same year", ptr("2026-07-04"), "Jul 4"},
		{"past same year", ptr("2026-01-02"), "Jan 2"},
		{"other year", ptr("2027-01-02"), "Jan 2, 2027"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render.FormatDate(tc.raw, now); got != tc.want {
				t.Fatalf("FormatDate(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFormatDate_DayBoundary(t *testing.T) {
	// 23:59 on the 14th and 00:01 on the 15th are one calendar day apart.
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	if got := render.FormatDate(ptr("2026-03-15"), now); got != "Tomorrow" {
		t.Fatalf("expected Tomorrow across midnight, got %q", got)
	}

	now = time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)
	if got := render.FormatDate(ptr("2026-03-15"), now); got != "Today" {
		t.Fatalf("expected Today just after midnight, got %q", got)
	}
}

func TestParseDate_Layouts(t *testing.T) {
	for _, raw := range []string{
		"2026-03-14",
		"2026-03-14T10:30:00Z",
		"2026-03-14T10:30:00",
		"2026-03-14 10:30:00",
		"  2026-03-14  ",
	} {
		tm, ok := render.ParseDate(raw, time.UTC)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", raw)
		}
		if tm.Year() != 2026 || tm.Month() != time.March || tm.Day() != 14 {
			t.Fatalf("ParseDate(%q) = %v", raw, tm)
		}
	}
	if _, ok := render.ParseDate("14/03/2026", time.UTC); ok {
		t.Fatal("expected unsupported layout to fail")
	}
}

func TestTypeBadge(t *testing.T) {
	b := render.TypeBadge(domain.TypeTour)
	if b.Label != "Tour" || b.Color != "#2196F3" {
		t.Fatalf("unexpected tour badge: %+v", b)
	}
	b = render.TypeBadge(domain.TypeFoodTour)
	if b.Label != "Food Tour" || b.Color != "#4CAF50" {
		t.Fatalf("unexpected food_tour badge: %+v", b)
	}

	// Unknown types keep their text (underscores become spaces) but take
	// the neutral styling.
	b = render.TypeBadge("wine_tasting")
	if b.Label != "wine tasting" || b.Color != "#757575" || b.Icon != "📌" {
		t.Fatalf("unexpected unknown badge: %+v", b)
	}

	b = render.TypeBadge("")
	if b.Label != "Event" || b.Color != "#757575" {
		t.Fatalf("unexpected empty badge: %+v", b)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := render.FormatPrice(ptr(32.9), "EUR", "Free"); got != "32.90 EUR" {
		t.Fatalf("got %q", got)
	}
	if got := render.FormatPrice(ptr(15.0), "", "Free"); got != "15.00 EUR" {
		t.Fatalf("expected default currency, got %q", got)
	}
	if got := render.FormatPrice(nil, "EUR", "Free"); got != "Free" {
		t.Fatalf("got %q", got)
	}
	if got := render.FormatPrice(ptr(0.0), "EUR", "N/A"); got != "N/A" {
		t.Fatalf("zero price should fall back, got %q", got)
	}
}

func TestFormatRating(t *testing.T) {
	if got := render.FormatRating(ptr(4.3), ptr(651)); got != "4.3 (651)" {
		t.Fatalf("got %q", got)
	}
	if got := render.FormatRating(ptr(4.3), nil); got != "4.3 (0)" {
		t.Fatalf("got %q", got)
	}
	if got := render.FormatRating(nil, ptr(10)); got != "" {
		t.Fatalf("expected empty for nil rating, got %q", got)
	}
	if got := render.FormatRatingLong(ptr(4.3), ptr(651)); got != "4.3 / 5 (651 reviews)" {
		t.Fatalf("got %q", got)
	}
}

func TestLocation(t *testing.T) {
	if got := render.Location(ptr("Paris"), ptr("France"), true); got != "Paris, France" {
		t.Fatalf("got %q", got)
	}
	if got := render.Location(ptr("Paris"), ptr("France"), false); got != "Paris" {
		t.Fatalf("got %q", got)
	}
	if got := render.Location(nil, nil, true); got != "Unknown" {
		t.Fatalf("got %q", got)
	}
	if got := render.Location(nil, ptr("France"), true); got != "Unknown, France" {
		t.Fatalf("got %q", got)
	}
}
