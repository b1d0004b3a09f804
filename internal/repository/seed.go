package repository

import "connected/internal/models"

// seedEvents is the fixed starter set used whenever no snapshot exists: six
// events spread around the world plus three clustered at the default filter
// center in Columbia, Missouri.
var seedEvents = []models.Event{
	{
		ID:          1,
		Title:       "New Year's Gala",
		Description: "Ring in the new year with style at the annual gala in New York City.",
		Date:        "2026-01-31T20:00",
		Lat:         40.7128,
		Lon:         -74.0060,
		City:        "New York",
		Image:       "https://images.pexels.com/photos/313707/pexels-photo-313707.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          2,
		Title:       "LA Tech Conference",
		Description: "A day of talks and networking for developers and founders in Los Angeles.",
		Date:        "2026-02-15T09:00",
		Lat:         34.0522,
		Lon:         -118.2437,
		City:        "Los Angeles",
		Image:       "https://images.pexels.com/photos/2480708/pexels-photo-2480708.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          3,
		Title:       "London Music Festival",
		Description: "Live performances from top artists across three open-air stages.",
		Date:        "2026-03-20T18:00",
		Lat:         51.5074,
		Lon:         -0.1278,
		City:        "London",
		Image:       "https://images.pexels.com/photos/460672/pexels-photo-460672.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          4,
		Title:       "Tokyo Gaming Expo",
		Description: "The latest in gaming hardware and indie releases at the Tokyo expo hall.",
		Date:        "2026-04-10T10:00",
		Lat:         35.6895,
		Lon:         139.6917,
		City:        "Tokyo",
		Image:       "https://images.pexels.com/photos/3861969/pexels-photo-3861969.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          5,
		Title:       "Paris Food Fair",
		Description: "Cuisines from around the world served along the Seine.",
		Date:        "2026-05-05T11:00",
		Lat:         48.8566,
		Lon:         2.3522,
		City:        "Paris",
		Image:       "https://images.pexels.com/photos/338515/pexels-photo-338515.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          6,
		Title:       "Sydney Beach Party",
		Description: "A summer celebration on the sand in beautiful Sydney.",
		Date:        "2026-12-25T15:00",
		Lat:         -33.8688,
		Lon:         151.2093,
		City:        "Sydney",
		Image:       "https://images.pexels.com/photos/356830/pexels-photo-356830.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          7,
		Title:       "Downtown Block Party",
		Description: "Music, cake and games at a light-hearted neighborhood celebration.",
		Date:        "2026-06-15T18:00",
		Lat:         38.9517,
		Lon:         -92.3341,
		City:        "Columbia",
		Image:       "https://images.pexels.com/photos/207962/pexels-photo-207962.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          8,
		Title:       "Trivia Night",
		Description: "A quirky pub trivia competition with prizes for the winning table.",
		Date:        "2026-07-10T19:00",
		Lat:         38.9517,
		Lon:         -92.3341,
		City:        "Columbia",
		Image:       "https://images.pexels.com/photos/716411/pexels-photo-716411.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
	{
		ID:          9,
		Title:       "Charity Auction",
		Description: "Bid on donated treasures to raise money for local charities.",
		Date:        "2026-08-05T17:00",
		Lat:         38.9517,
		Lon:         -92.3341,
		City:        "Columbia",
		Image:       "https://images.pexels.com/photos/534064/pexels-photo-534064.jpeg?auto=compress&cs=tinysrgb&w=800",
		Privacy:     "public",
		Creator:     "Jane Doe",
	},
}

// SeedEvents returns a deep copy of the seed set so callers can mutate their
// copy without corrupting the package-level defaults.
func SeedEvents() []models.Event {
	out := make([]models.Event, len(seedEvents))
	copy(out, seedEvents)
	for i := range out {
		if len(seedEvents[i].Reels) > 0 {
			out[i].Reels = append([]string(nil), seedEvents[i].Reels...)
		}
	}
	return out
}
