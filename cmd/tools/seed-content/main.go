// Command seed-content populates an empty database with a small starter
// catalog for local development.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ceylontrip/ceylontrip/internal/config"
	"github.com/ceylontrip/ceylontrip/internal/domain"
	"github.com/ceylontrip/ceylontrip/internal/logger"
	"github.com/ceylontrip/ceylontrip/internal/service"
	"github.com/ceylontrip/ceylontrip/internal/storage/pg"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	renderer := service.NewRenderer()
	destinations := service.NewDestination(storage, renderer)
	attractions := service.NewAttraction(storage, renderer)
	hotels := service.NewHotel(storage, renderer)
	events := service.NewEvent(storage, renderer)

	for _, d := range seedDestinations {
		if _, err := destinations.Create(d); err != nil {
			fmt.Fprintf(os.Stderr, "seed destination %q: %v\n", d.Name, err)
			os.Exit(1)
		}
	}
	for _, a := range seedAttractions {
		if _, err := attractions.Create(a); err != nil {
			fmt.Fprintf(os.Stderr, "seed attraction %q: %v\n", a.Name, err)
			os.Exit(1)
		}
	}
	for _, h := range seedHotels {
		if _, err := hotels.Create(h); err != nil {
			fmt.Fprintf(os.Stderr, "seed hotel %q: %v\n", h.Name, err)
			os.Exit(1)
		}
	}
	for _, e := range seedEvents {
		if _, err := events.Create(e); err != nil {
			fmt.Fprintf(os.Stderr, "seed event %q: %v\n", e.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d destinations, %d attractions, %d hotels, %d events\n",
		len(seedDestinations), len(seedAttractions), len(seedHotels), len(seedEvents))
}

var seedDestinations = []domain.Destination{
	{
		Name: "Sigiriya",
		Description: "The **Lion Rock** fortress rises 200 metres above the jungle. " +
			"Climb past the mirror wall and frescoes to the palace ruins on the summit.",
		Location:        "Central Province",
		Category:        "Historical",
		MainImage:       "https://images.ceylontrip.example/sigiriya.jpg",
		Highlights:      []string{"Lion's Paw entrance", "Summit palace ruins", "Frescoes"},
		Activities:      []string{"Hiking", "Photography"},
		BestTimeToVisit: "January to April",
		HowToReach:      "Four hours by road from Colombo via Dambulla",
		Featured:        true,
	},
	{
		Name:            "Mirissa",
		Description:     "A crescent beach on the south coast known for *whale watching* between November and April.",
		Location:        "Southern Province",
		Category:        "Beach",
		MainImage:       "https://images.ceylontrip.example/mirissa.jpg",
		Highlights:      []string{"Blue whale safaris", "Parrot Rock"},
		Activities:      []string{"Whale watching", "Surfing", "Snorkeling"},
		BestTimeToVisit: "November to April",
		HowToReach:      "Southern Expressway to Matara, then 15 minutes by road",
	},
	{
		Name:            "Ella",
		Description:     "A laid-back hill town wrapped in tea estates, waterfalls and hiking trails.",
		Location:        "Uva Province",
		Category:        "Mountain",
		MainImage:       "https://images.ceylontrip.example/ella.jpg",
		Highlights:      []string{"Nine Arches Bridge", "Little Adam's Peak"},
		Activities:      []string{"Hiking", "Train rides", "Tea tasting"},
		BestTimeToVisit: "December to March",
		HowToReach:      "Scenic train from Kandy or six hours by road from Colombo",
	},
}

var seedAttractions = []domain.Attraction{
	{
		Name:         "Temple of the Sacred Tooth Relic",
		Description:  "Kandy's golden-roofed temple houses Sri Lanka's most revered Buddhist relic.",
		Location:     "Kandy",
		Category:     "Temple",
		MainImage:    "https://images.ceylontrip.example/tooth-temple.jpg",
		EntryFee:     10,
		OpeningHours: "05:30-20:00",
		Featured:     true,
	},
	{
		Name:         "Galle Fort",
		Description:  "A 17th century Dutch fort city, now a living quarter of cafes, ramparts and lighthouses.",
		Location:     "Galle",
		Category:     "Fort",
		MainImage:    "https://images.ceylontrip.example/galle-fort.jpg",
		EntryFee:     0,
		OpeningHours: "Open 24 hours",
	},
}

var seedHotels = []domain.Hotel{
	{
		Name:        "Tea Country Lodge",
		Description: "Colonial-era bungalow among the tea terraces of Nuwara Eliya.",
		Location:    "Nuwara Eliya",
		StarRating:  4,
		MainImage:   "https://images.ceylontrip.example/tea-lodge.jpg",
		PriceRange:  120,
		Amenities:   []string{"Restaurant", "Garden", "Fireplace"},
	},
	{
		Name:        "Mirissa Bay Resort",
		Description: "Beachfront rooms a short walk from the whale watching harbour.",
		Location:    "Mirissa",
		StarRating:  3,
		MainImage:   "https://images.ceylontrip.example/mirissa-bay.jpg",
		PriceRange:  80,
		Amenities:   []string{"Pool", "Beach access", "WiFi"},
	},
}

var seedEvents = []domain.Event{
	{
		Name:        "Kandy Esala Perahera",
		Description: "Ten nights of drummers, dancers and lantern-lit elephants honouring the Sacred Tooth Relic.",
		Location:    "Kandy",
		Category:    "Religious",
		Venue:       "Temple of the Tooth and city streets",
		StartDate:   time.Date(2026, 7, 29, 19, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 8, 23, 0, 0, 0, time.UTC),
		Featured:    true,
	},
	{
		Name:        "Galle Literary Festival",
		Description: "Writers and readers take over the fort for a long weekend of talks and readings.",
		Location:    "Galle",
		Category:    "Art",
		Venue:       "Galle Fort",
		StartDate:   time.Date(2027, 1, 20, 9, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 1, 24, 22, 0, 0, 0, time.UTC),
	},
}
