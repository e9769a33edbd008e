package services

import (
	"tripagent/internal/models/trip_models"
)

type HotelSelectorInterface interface {
	Select(offers []trip_models.HotelOffer) *trip_models.HotelOffer
}

// ValueHotelSelector picks the offer with the best rating-to-price ratio.
type ValueHotelSelector struct{}

// Select returns nil only for an empty list. Ties keep the earlier offer.
// Offers without a positive price cannot be scored and are skipped; if none
// can be scored the first offer wins.
func (ValueHotelSelector) Select(offers []trip_models.HotelOffer) *trip_models.HotelOffer {
	if len(offers) == 0 {
		return nil
	}

	best := -1
	bestScore := 0.0
	for i, offer := range offers {
		score, ok := offer.ValueScore()
		if !ok {
			continue
		}
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 {
		best = 0
	}

	selected := offers[best]
	return &selected
}

func NewHotelSelector() HotelSelectorInterface {
	return ValueHotelSelector{}
}
