package service

import (
	"context"

	"github.com/shopspring/decimal"

	"squote/internal/domain"
)

type starterItem struct {
	name        string
	description string
	category    domain.Category
	price       string
	quantity    int
	unit        string
}

var starterCatalog = []starterItem{
	// Photography
	{"Traditional Still Camera", "Professional traditional photography for all events", domain.CategoryPhotography, "15000", 1, "per event"},
	{"Candid Photography", "Candid photography with professional equipment", domain.CategoryPhotography, "20000", 1, "per event"},
	{"4K Video", "4K video recording for all ceremonies", domain.CategoryPhotography, "25000", 1, "per event"},
	{"Cinematic Video", "Cinematic video with Sony HD cameras", domain.CategoryPhotography, "30000", 1, "per event"},
	{"Drone Photography", "Aerial photography and videography", domain.CategoryPhotography, "15000", 1, "per event"},
	{"Wedding Albums", "100 sheets premium glossy albums for bride & groom", domain.CategoryPhotography, "8000", 2, "per album"},
	{"Pre/Post Wedding Shoot", "Complimentary couple shoot", domain.CategoryPhotography, "0", 1, "complimentary"},
	{"Event Promos", "Short promotional videos for each event", domain.CategoryPhotography, "5000", 1, "per event"},

	// Equipment
	{"LED Screens", "LED screens for live display", domain.CategoryEquipment, "8000", 1, "per day"},
	{"Professional Lighting", "Studio lighting setup", domain.CategoryEquipment, "5000", 1, "per day"},
	{"Sound System", "Professional sound system", domain.CategoryEquipment, "3000", 1, "per day"},
	{"Camera Equipment", "Nikon Z8, Sony S3, Sony FX3 with lenses", domain.CategoryEquipment, "12000", 1, "per day"},

	// Catering
	{"Wedding Dinner", "3-course dinner per person", domain.CategoryCatering, "850", 1, "per person"},
	{"Cocktail Hour", "Open bar and appetizers", domain.CategoryCatering, "250", 1, "per person"},
	{"Wedding Cake", "Custom wedding cake", domain.CategoryCatering, "4500", 1, "per cake"},
	{"Breakfast/Lunch", "Traditional breakfast or lunch", domain.CategoryCatering, "400", 1, "per person"},

	// Decoration
	{"Mandap Decoration", "Traditional wedding mandap decoration", domain.CategoryDecoration, "25000", 1, "per setup"},
	{"Stage Decoration", "Reception stage decoration", domain.CategoryDecoration, "15000", 1, "per setup"},
	{"Entrance Decoration", "Grand entrance decoration", domain.CategoryDecoration, "8000", 1, "per setup"},
	{"Table Centerpieces", "Floral centerpieces for tables", domain.CategoryDecoration, "750", 1, "per table"},
	{"Lighting Decoration", "Ambient and decorative lighting", domain.CategoryDecoration, "12000", 1, "per setup"},

	// Entertainment
	{"DJ Services", "Professional DJ with sound system", domain.CategoryEntertainment, "8000", 1, "per day"},
	{"Live Band", "Traditional/modern live band", domain.CategoryEntertainment, "15000", 1, "per day"},
	{"Dhol Players", "Traditional dhol players", domain.CategoryEntertainment, "3000", 2, "per player"},
	{"Dance Performers", "Professional dance performers", domain.CategoryEntertainment, "10000", 1, "per performance"},

	// Venue
	{"Wedding Hall", "Air-conditioned wedding hall", domain.CategoryVenue, "50000", 1, "per day"},
	{"Outdoor Venue", "Garden/outdoor ceremony space", domain.CategoryVenue, "30000", 1, "per day"},
	{"Parking Space", "Dedicated parking area", domain.CategoryVenue, "5000", 1, "per day"},

	// Staffing
	{"Event Coordinator", "Professional wedding coordinator", domain.CategoryStaffing, "1500", 8, "per hour"},
	{"Waitstaff", "Professional serving staff", domain.CategoryStaffing, "250", 1, "per hour per person"},
	{"Security Staff", "Event security personnel", domain.CategoryStaffing, "300", 8, "per hour"},
	{"Makeup Artist", "Professional makeup artist", domain.CategoryStaffing, "8000", 1, "per day"},

	// Transportation
	{"Bridal Car", "Decorated luxury car for bride", domain.CategoryTransportation, "5000", 1, "per day"},
	{"Guest Transportation", "Bus/van for guest transportation", domain.CategoryTransportation, "8000", 1, "per day"},
	{"Horse/Elephant", "Traditional groom entry", domain.CategoryTransportation, "12000", 1, "per day"},

	// Flowers
	{"Bridal Bouquet", "Custom bridal bouquet", domain.CategoryFlowers, "1500", 1, "per bouquet"},
	{"Garlands", "Fresh flower garlands", domain.CategoryFlowers, "500", 10, "per garland"},
	{"Flower Petals", "Rose petals for ceremony", domain.CategoryFlowers, "800", 5, "per kg"},
	{"Floral Jewelry", "Traditional floral jewelry", domain.CategoryFlowers, "2000", 1, "per set"},

	// Other
	{"Invitation Cards", "Custom wedding invitation design & printing", domain.CategoryOther, "50", 200, "per card"},
	{"Mehendi Artist", "Professional mehendi/henna artist", domain.CategoryOther, "5000", 1, "per day"},
	{"Pandit/Priest", "Wedding ceremony priest", domain.CategoryOther, "3000", 1, "per ceremony"},
	{"Return Gifts", "Wedding return gifts for guests", domain.CategoryOther, "200", 1, "per gift"},
}

// StarterCatalog returns fresh copies of the built-in catalog with new ids.
func StarterCatalog() []domain.QuoteItem {
	items := make([]domain.QuoteItem, 0, len(starterCatalog))
	for _, s := range starterCatalog {
		items = append(items, domain.NewQuoteItem(s.name, s.description, s.category, decimal.RequireFromString(s.price), s.quantity, s.unit))
	}
	return items
}

// Seed installs the starter catalog when the catalog is empty. It reports
// whether anything was written.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	if len(s.defaultItems) > 0 {
		return false, nil
	}
	s.defaultItems = StarterCatalog()
	if err := s.saveDefaultItems(ctx); err != nil {
		return false, err
	}
	s.logger.WithField("items", len(s.defaultItems)).Info("seeded starter catalog")
	return true, nil
}
