package trip_models

import "time"

const (
	// UnsupportedDestination marks a destination outside the catalog.
	UnsupportedDestination = "unsupported"
	// DefaultGuestName is used when no name could be extracted.
	DefaultGuestName = "guest"
	// DefaultNights is used when the stay length is not stated.
	DefaultNights = 2

	DateLayout = "2006-01-02"
)

// ExtractionSource records which extractor produced a TripRequest.
type ExtractionSource string

const (
	SourceSemantic ExtractionSource = "semantic"
	SourceRules    ExtractionSource = "rules"
)

// TripRequest is the structured form of a free-text travel ask.
type TripRequest struct {
	RawText              string           `json:"raw_text"`
	GuestName            string           `json:"guest_name"`
	Destination          string           `json:"destination"`
	RequestedDestination string           `json:"requested_destination"`
	TravelDate           time.Time        `json:"travel_date"`
	Nights               int              `json:"nights"`
	Source               ExtractionSource `json:"source"`
}

// CheckOutDate is the travel date plus the number of nights.
func (r TripRequest) CheckOutDate() time.Time {
	return r.TravelDate.AddDate(0, 0, r.Nights)
}

// IsSupported reports whether the destination is in the catalog.
func (r TripRequest) IsSupported() bool {
	return r.Destination != "" && r.Destination != UnsupportedDestination
}

// DisplayDestination is the destination as the traveller asked for it.
func (r TripRequest) DisplayDestination() string {
	if r.RequestedDestination != "" {
		return r.RequestedDestination
	}
	return r.Destination
}

type FlightOffer struct {
	FlightNumber  string `json:"flight_number"`
	AirlineCode   string `json:"airline"`
	Price         int    `json:"price"`
	DepartureTime string `json:"departure_time"`
}

type HotelOffer struct {
	Name          string  `json:"name"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Available     bool    `json:"available"`
}

// ValueScore is rating*100/pricePerNight. ok is false when the price is not positive.
func (h HotelOffer) ValueScore() (score float64, ok bool) {
	if h.PricePerNight <= 0 {
		return 0, false
	}
	return h.Rating * 100 / float64(h.PricePerNight), true
}

type BookingStatus string

const (
	BookingStatusSuccess BookingStatus = "success"
	BookingStatusFailed  BookingStatus = "failed"
)

type BookingConfirmation struct {
	BookingID    string        `json:"booking_id"`
	FlightNumber string        `json:"flight_number"`
	HotelName    string        `json:"hotel_name"`
	GuestName    string        `json:"guest_name"`
	Timestamp    time.Time     `json:"timestamp"`
	Status       BookingStatus `json:"status"`
	Message      string        `json:"message,omitempty"`
}
