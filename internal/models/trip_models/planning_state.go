package trip_models

// Step is the pipeline position recorded on a PlanningState.
type Step string

const (
	StepStart                Step = "start"
	StepInformationExtracted Step = "information_extracted"
	StepFlightsFound         Step = "flights_found"
	StepFlightsNotFound      Step = "flights_not_found"
	StepHotelsFound          Step = "hotels_found"
	StepHotelsNotFound       Step = "hotels_not_found"
	StepHotelSelected        Step = "hotel_selected"
	StepBookingCompleted     Step = "booking_completed"
	StepError                Step = "error"
)

// IsTerminal reports whether no transition leaves this step.
func (s Step) IsTerminal() bool {
	return s == StepBookingCompleted || s == StepError
}

// FailureKind classifies why a run ended in StepError.
type FailureKind string

const (
	FailureNone                FailureKind = ""
	FailureNoFlightAvailable   FailureKind = "no_flight_available"
	FailureNoHotelAvailable    FailureKind = "no_hotel_available"
	FailureSelectionImpossible FailureKind = "selection_impossible"
	FailureBookingFailed       FailureKind = "booking_failed"
)

// PlanningState is the working record of one pipeline run. Only the pipeline
// mutates it; drivers read the terminal snapshot.
type PlanningState struct {
	ID            string               `json:"id"`
	RawText       string               `json:"raw_text"`
	Request       *TripRequest         `json:"request,omitempty"`
	Flight        *FlightOffer         `json:"flight,omitempty"`
	Hotels        []HotelOffer         `json:"hotels"`
	SelectedHotel *HotelOffer          `json:"selected_hotel,omitempty"`
	Booking       *BookingConfirmation `json:"booking,omitempty"`
	CurrentStep   Step                 `json:"current_step"`
	FailureKind   FailureKind          `json:"failure_kind,omitempty"`
	ErrorMessage  string               `json:"error_message,omitempty"`
	ExecutionLog  []string             `json:"execution_log"`
}

func NewPlanningState(id, rawText string) *PlanningState {
	return &PlanningState{
		ID:           id,
		RawText:      rawText,
		Hotels:       []HotelOffer{},
		CurrentStep:  StepStart,
		ExecutionLog: []string{},
	}
}

func (s *PlanningState) AppendLog(entry string) {
	s.ExecutionLog = append(s.ExecutionLog, entry)
}

// Fail records the failure; the error stage moves the state to StepError.
func (s *PlanningState) Fail(kind FailureKind, message string) {
	s.FailureKind = kind
	s.ErrorMessage = message
}

func (s *PlanningState) Succeeded() bool {
	return s.CurrentStep == StepBookingCompleted && s.Booking != nil
}

// FlightCost is the fare of the found flight, or 0.
func (s *PlanningState) FlightCost() int {
	if s.Flight == nil {
		return 0
	}
	return s.Flight.Price
}

// HotelTotal is the selected hotel's nightly price times the number of nights, or 0.
func (s *PlanningState) HotelTotal() int {
	if s.SelectedHotel == nil || s.Request == nil {
		return 0
	}
	return s.SelectedHotel.PricePerNight * s.Request.Nights
}

func (s *PlanningState) TotalCost() int {
	return s.FlightCost() + s.HotelTotal()
}
