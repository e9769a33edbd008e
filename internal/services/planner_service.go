package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripagent/internal/models/trip_models"
	"tripagent/pkg/metrics"
	"tripagent/pkg/utils"
)

type PlannerServiceInterface interface {
	// Run drives one request through the pipeline and returns the terminal state.
	Run(ctx context.Context, rawText string) *trip_models.PlanningState
}

type stage int

const (
	stageExtract stage = iota
	stageFlightLookup
	stageHotelLookup
	stageHotelSelection
	stageBooking
	stageError
	stageDone
)

type PlannerService struct {
	// mu serializes runs; one request is processed to completion at a time.
	mu sync.Mutex

	extractor ExtractorServiceInterface
	flights   FlightServiceInterface
	hotels    HotelServiceInterface
	selector  HotelSelectorInterface
	booking   BookingServiceInterface
	metrics   *metrics.PlannerMetrics
	logger    *zap.Logger
	newID     func() string
}

func NewPlannerService(
	extractor ExtractorServiceInterface,
	flights FlightServiceInterface,
	hotels HotelServiceInterface,
	selector HotelSelectorInterface,
	booking BookingServiceInterface,
	m *metrics.PlannerMetrics,
	logger *zap.Logger,
) PlannerServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		extractor: extractor,
		flights:   flights,
		hotels:    hotels,
		selector:  selector,
		booking:   booking,
		metrics:   m,
		logger:    logger.Named("planner"),
		newID:     uuid.NewString,
	}
}

func (p *PlannerService) Run(ctx context.Context, rawText string) *trip_models.PlanningState {
	p.mu.Lock()
	defer p.mu.Unlock()

	started := time.Now()
	state := trip_models.NewPlanningState(p.newID(), rawText)
	log := p.logger.With(zap.String("plan_id", state.ID))

	for next := stageExtract; next != stageDone; {
		next = p.step(ctx, next, state, log)
	}

	p.metrics.ObserveRun(string(state.CurrentStep), time.Since(started).Seconds())
	log.Info("plan finished",
		zap.String("step", string(state.CurrentStep)),
		zap.Duration("elapsed", time.Since(started)))

	return state
}

// step executes one stage and names the stage that follows it.
func (p *PlannerService) step(ctx context.Context, s stage, state *trip_models.PlanningState, log *zap.Logger) stage {
	switch s {
	case stageExtract:
		req := p.extractor.Extract(ctx, state.RawText)
		state.Request = &req
		state.CurrentStep = trip_models.StepInformationExtracted
		state.AppendLog(fmt.Sprintf("information extracted (%s): destination=%s date=%s nights=%d guest=%s",
			req.Source, req.DisplayDestination(), utils.FormatDate(req.TravelDate), req.Nights, req.GuestName))
		p.metrics.ObserveExtraction(string(req.Source))
		log.Debug("extracted", zap.String("source", string(req.Source)), zap.String("destination", req.Destination))
		return stageFlightLookup

	case stageFlightLookup:
		req := state.Request
		offer := p.flights.SearchFlight(ctx, req.Destination, req.TravelDate)
		if offer == nil {
			state.CurrentStep = trip_models.StepFlightsNotFound
			state.Fail(trip_models.FailureNoFlightAvailable,
				fmt.Sprintf("no flight available for %s to %s", utils.FormatDate(req.TravelDate), req.DisplayDestination()))
			state.AppendLog("flight search: no flight available")
			return stageError
		}
		state.Flight = offer
		state.CurrentStep = trip_models.StepFlightsFound
		state.AppendLog(fmt.Sprintf("flight found: %s departing %s, price %d", offer.FlightNumber, offer.DepartureTime, offer.Price))
		log.Debug("flight found", zap.String("flight", offer.FlightNumber))
		return stageHotelLookup

	case stageHotelLookup:
		req := state.Request
		offers := p.hotels.SearchHotels(ctx, req.Destination, req.TravelDate, req.CheckOutDate())
		if len(offers) == 0 {
			state.CurrentStep = trip_models.StepHotelsNotFound
			state.Fail(trip_models.FailureNoHotelAvailable, fmt.Sprintf("no hotel available in %s", req.DisplayDestination()))
			state.AppendLog("hotel search: no hotel available")
			return stageError
		}
		state.Hotels = offers
		state.CurrentStep = trip_models.StepHotelsFound
		state.AppendLog(fmt.Sprintf("hotels found: %d options", len(offers)))
		return stageHotelSelection

	case stageHotelSelection:
		selected := p.selector.Select(state.Hotels)
		if selected == nil {
			state.Fail(trip_models.FailureSelectionImpossible, "no hotel could be selected")
			state.AppendLog("hotel selection: nothing to choose from")
			return stageError
		}
		state.SelectedHotel = selected
		state.CurrentStep = trip_models.StepHotelSelected
		state.AppendLog(fmt.Sprintf("hotel selected: %s (rating %.1f, %d per night)", selected.Name, selected.Rating, selected.PricePerNight))
		return stageBooking

	case stageBooking:
		if state.Flight == nil || state.SelectedHotel == nil {
			state.Fail(trip_models.FailureBookingFailed, "cannot book: flight or hotel missing")
			state.AppendLog("booking: skipped, flight or hotel missing")
			return stageError
		}
		conf := p.booking.Book(ctx, state.Flight.FlightNumber, state.SelectedHotel.Name, state.Request.GuestName)
		if conf.Status != trip_models.BookingStatusSuccess {
			msg := conf.Message
			if msg == "" {
				msg = "booking failed"
			}
			state.Fail(trip_models.FailureBookingFailed, msg)
			state.AppendLog("booking: rejected")
			return stageError
		}
		state.Booking = &conf
		state.CurrentStep = trip_models.StepBookingCompleted
		state.AppendLog(fmt.Sprintf("booking completed: %s", conf.BookingID))
		p.metrics.ObserveBooking()
		return stageDone

	case stageError:
		state.CurrentStep = trip_models.StepError
		state.AppendLog("run aborted: " + state.ErrorMessage)
		log.Warn("plan aborted",
			zap.String("failure", string(state.FailureKind)),
			zap.String("reason", state.ErrorMessage))
		return stageDone
	}

	return stageDone
}
