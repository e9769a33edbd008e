package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

// monday is 2024-01-01, a Monday.
var monday = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

type stubCompletionClient struct {
	response string
	err      error
	delay    time.Duration
	calls    atomic.Int32
	prompts  []string
}

func (s *stubCompletionClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	s.prompts = append(s.prompts, prompt)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.response, s.err
}

func (s *stubCompletionClient) ListModels(ctx context.Context) ([]string, error) {
	return []string{"stub-model"}, nil
}

func (s *stubCompletionClient) Close() error { return nil }

type stubExtractor struct {
	req trip_models.TripRequest
}

func (s stubExtractor) Extract(ctx context.Context, rawText string) trip_models.TripRequest {
	r := s.req
	r.RawText = rawText
	return r
}

type stubFlights struct {
	offer *trip_models.FlightOffer
}

func (s stubFlights) SearchFlight(ctx context.Context, destination string, date time.Time) *trip_models.FlightOffer {
	return s.offer
}

type stubHotels struct {
	offers []trip_models.HotelOffer
}

func (s stubHotels) SearchHotels(ctx context.Context, destination string, checkIn, checkOut time.Time) []trip_models.HotelOffer {
	return s.offers
}

type nilSelector struct{}

func (nilSelector) Select(offers []trip_models.HotelOffer) *trip_models.HotelOffer { return nil }

type failingBooking struct{}

func (failingBooking) Book(ctx context.Context, flightNumber, hotelName, guestName string) trip_models.BookingConfirmation {
	return trip_models.BookingConfirmation{Status: trip_models.BookingStatusFailed, Message: "inventory locked"}
}

// flightDate scans forward from 2024-01-01 for a date whose flight lookup
// to destination does (or does not) yield an offer.
func flightDate(t *testing.T, destination string, wantFlight bool) time.Time {
	t.Helper()
	svc := NewFlightService(catalog.Default())
	d := utils.DateOnly(monday)
	for i := 0; i < 366; i++ {
		got := svc.SearchFlight(context.Background(), destination, d) != nil
		if got == wantFlight {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	t.Fatalf("no date in 2024 with flight=%v to %s", wantFlight, destination)
	return time.Time{}
}
