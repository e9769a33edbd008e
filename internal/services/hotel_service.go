package services

import (
	"context"
	"time"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
)

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time) []trip_models.HotelOffer
}

type HotelService struct {
	catalog *catalog.Catalog
}

// SearchHotels returns a copy of the destination's hotel catalog in catalog
// order. Unsupported destinations yield an empty, non-nil slice. The stay
// dates do not affect the listing.
func (h *HotelService) SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time) []trip_models.HotelOffer {
	city, ok := h.catalog.Lookup(destination)
	if !ok {
		return []trip_models.HotelOffer{}
	}

	offers := make([]trip_models.HotelOffer, 0, len(city.Hotels))
	for _, hotel := range city.Hotels {
		offers = append(offers, trip_models.HotelOffer{
			Name:          hotel.Name,
			PricePerNight: hotel.PricePerNight,
			Rating:        hotel.Rating,
			Available:     hotel.Available,
		})
	}
	return offers
}

func NewHotelService(c *catalog.Catalog) HotelServiceInterface {
	return &HotelService{catalog: c}
}
