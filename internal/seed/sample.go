// Package seed builds demo snapshots so the widgets render something
// before a real host is wired up.
package seed

import (
	"time"
)

// Destination is one entity's worth of demo data.
type Destination struct {
	Entity string
	Title  string
	Events []map[string]any
}

// Destinations returns the demo set with dates computed relative to now,
// so the Today/Tomorrow buckets always have something in them.
func Destinations(now time.Time) []Destination {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := now.AddDate(0, 0, 7).Format("2006-01-02")

	return []Destination{
		{
			Entity: "sensor.tickets_events_bucharest",
			Title:  "Events in Bucharest",
			Events: []map[string]any{
				{
					"id":          976227,
					"title":       "Palace of the Parliament Tour",
					"description": "Guided tour of one of the largest buildings in the world. Experience the opulence and grandeur of Romania's most iconic landmark with expert guides.",
					"city":        "Bucharest",
					"country":     "Romania",
					"price":       32.90,
					"currency":    "EUR",
					"rating":      4.3,
					"rating_count": 651,
					"type":        "tour",
					"date":        today,
					"available_dates": []any{today, tomorrow, nextWeek},
					"latitude":    44.4275,
					"longitude":   26.0875,
					"images": []any{
						map[string]any{"url": "https://cdn.tiqets.com/wordpress/blog/wp-content/uploads/2019/03/27093459/Palace-of-the-Parliament-Bucharest.jpg", "alt": "Palace of the Parliament exterior"},
					},
					"booking_url": "https://www.tiqets.com/en/bucharest-attractions/palace-of-the-parliament/",
				},
				{
					"id":          976228,
					"title":       "National Museum of Art of Romania",
					"description": "Explore Romania's finest art collection in the former Royal Palace. Medieval art, Romanian masters, and European galleries.",
					"city":        "Bucharest",
					"country":     "Romania",
					"price":       15.00,
					"currency":    "EUR",
					"rating":      4.5,
					"rating_count": 423,
					"type":        "museum",
					"date":        tomorrow,
					"available_dates": []any{tomorrow, nextWeek},
					"latitude":    44.4393,
					"longitude":   26.0963,
					"images": []any{
						map[string]any{"url": "https://cdn.tiqets.com/wordpress/blog/wp-content/uploads/2019/03/27093500/National-Museum-Art-Romania.jpg", "alt": "Museum facade"},
					},
					"booking_url": "https://www.tiqets.com/en/bucharest-attractions/national-museum-of-art/",
				},
				{
					// free event, no image, no coordinates: exercises the
					// placeholder paths
					"id":          976229,
					"title":       "Old Town Walking Tour",
					"description": "Free walking tour through Bucharest's historic Lipscani district.",
					"city":        "Bucharest",
					"country":     "Romania",
					"price":       0,
					"currency":    "EUR",
					"type":        "tour",
					"date":        nextWeek,
				},
			},
		},
		{
			Entity: "sensor.tickets_events_paris",
			Title:  "Events in Paris",
			Events: []map[string]any{
				{
					"id":          981001,
					"title":       "Louvre Museum Skip-the-Line",
					"description": "Priority entrance to the world's most visited museum. See the Mona Lisa, Venus de Milo, and thousands of masterpieces.",
					"city":        "Paris",
					"country":     "France",
					"price":       22.00,
					"currency":    "EUR",
					"rating":      4.7,
					"rating_count": 8214,
					"type":        "museum",
					"date":        today,
					"available_dates": []any{today, tomorrow, nextWeek},
					"latitude":    48.8606,
					"longitude":   2.3376,
					"images": []any{
						map[string]any{"url": "https://cdn.tiqets.com/wordpress/blog/wp-content/uploads/2018/05/louvre-museum-paris.jpg", "alt": "Louvre pyramid"},
					},
					"booking_url": "https://www.tiqets.com/en/paris-attractions/louvre-museum/",
				},
				{
					"id":          981002,
					"title":       "Seine River Evening Cruise",
					"description": "One-hour cruise past the Eiffel Tower, Notre-Dame and the Musée d'Orsay as the city lights come on.",
					"city":        "Paris",
					"country":     "France",
					"price":       17.50,
					"currency":    "EUR",
					"rating":      4.4,
					"rating_count": 3102,
					"type":        "cruise",
					"date":        tomorrow,
					"available_dates": []any{tomorrow, nextWeek},
					"latitude":    48.8584,
					"longitude":   2.2945,
					"images": []any{
						map[string]any{"url": "https://cdn.tiqets.com/wordpress/blog/wp-content/uploads/2018/05/seine-cruise-paris.jpg", "alt": "Seine cruise at dusk"},
					},
					"booking_url": "https://www.tiqets.com/en/paris-attractions/seine-cruise/",
				},
				{
					"id":          981003,
					"title":       "Montmartre Food Tour",
					"description": "Taste your way through Montmartre: cheese, wine, chocolate and the best croissant in the 18th arrondissement.",
					"city":        "Paris",
					"country":     "France",
					"price":       89.00,
					"currency":    "EUR",
					"rating":      4.9,
					"rating_count": 412,
					"type":        "food_tour",
					"date":        nextWeek,
					"available_dates": []any{nextWeek},
					"latitude":    48.8867,
					"longitude":   2.3431,
					"images": []any{
						map[string]any{"url": "https://cdn.tiqets.com/wordpress/blog/wp-content/uploads/2018/05/montmartre-food.jpg", "alt": "Montmartre bakery"},
					},
					"booking_url": "https://www.tiqets.com/en/paris-attractions/montmartre-food-tour/",
				},
			},
		},
	}
}
