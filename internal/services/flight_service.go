package services

import (
	"context"
	"math/rand/v2"
	"time"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

// noFlightProbability is the share of dates with no seat for sale.
const noFlightProbability = 0.2

// fareSpread bounds the random deviation from a city's base fare.
const fareSpread = 200

type FlightServiceInterface interface {
	SearchFlight(ctx context.Context, destination string, date time.Time) *trip_models.FlightOffer
}

type FlightService struct {
	catalog *catalog.Catalog
}

// SearchFlight returns the simulated offer for destination on date, or nil.
// The result depends only on the arguments and the catalog: the random
// source is seeded from the calendar date.
func (f *FlightService) SearchFlight(ctx context.Context, destination string, date time.Time) *trip_models.FlightOffer {
	city, ok := f.catalog.Lookup(destination)
	if !ok {
		return nil
	}

	seed := utils.DateSeed(utils.FormatDate(utils.DateOnly(date)))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if rng.Float64() < noFlightProbability {
		return nil
	}

	flightNumber := city.FlightNumbers[rng.IntN(len(city.FlightNumbers))]
	price := city.BasePrice + rng.IntN(2*fareSpread+1) - fareSpread
	departure := f.catalog.DepartureTimes[rng.IntN(len(f.catalog.DepartureTimes))]

	return &trip_models.FlightOffer{
		FlightNumber:  flightNumber,
		AirlineCode:   flightNumber[:2],
		Price:         price,
		DepartureTime: departure,
	}
}

func NewFlightService(c *catalog.Catalog) FlightServiceInterface {
	return &FlightService{catalog: c}
}
