package services

import (
	"context"

	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

type BookingServiceInterface interface {
	Book(ctx context.Context, flightNumber, hotelName, guestName string) trip_models.BookingConfirmation
}

type BookingService struct {
	clock utils.Clock
}

// Book always succeeds. The id is derived from the flight and hotel alone,
// so two guests on the same pair share it.
func (b *BookingService) Book(ctx context.Context, flightNumber, hotelName, guestName string) trip_models.BookingConfirmation {
	return trip_models.BookingConfirmation{
		BookingID:    utils.BookingID(flightNumber, hotelName),
		FlightNumber: flightNumber,
		HotelName:    hotelName,
		GuestName:    guestName,
		Timestamp:    b.clock(),
		Status:       trip_models.BookingStatusSuccess,
		Message:      "Booking confirmed! Please check your confirmation email.",
	}
}

func NewBookingService(clock utils.Clock) BookingServiceInterface {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &BookingService{clock: clock}
}
