package response_models

import (
	"tripagent/internal/catalog"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

// RetrySuggestions are shown with every failed plan.
var RetrySuggestions = []string{
	"Try a different travel date",
	"Pick another destination",
	"Try again later",
}

type CostSummary struct {
	FlightCost int `json:"flight_cost"`
	HotelTotal int `json:"hotel_total"`
	Total      int `json:"total"`
}

type TripWindow struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
}

// PlanResponse is the terminal state plus the figures drivers display.
type PlanResponse struct {
	*trip_models.PlanningState
	Success     bool         `json:"success"`
	Cost        *CostSummary `json:"cost,omitempty"`
	Trip        *TripWindow  `json:"trip,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

func NewPlanResponse(state *trip_models.PlanningState) PlanResponse {
	resp := PlanResponse{
		PlanningState: state,
		Success:       state.Succeeded(),
	}
	if state.Request != nil {
		resp.Trip = &TripWindow{
			CheckIn:  utils.FormatDate(state.Request.TravelDate),
			CheckOut: utils.FormatDate(state.Request.CheckOutDate()),
			Nights:   state.Request.Nights,
		}
	}
	if resp.Success {
		resp.Cost = &CostSummary{
			FlightCost: state.FlightCost(),
			HotelTotal: state.HotelTotal(),
			Total:      state.TotalCost(),
		}
	} else if state.CurrentStep == trip_models.StepError {
		resp.Suggestions = RetrySuggestions
	}
	return resp
}

type PlanSummary struct {
	ID          string           `json:"id"`
	RawText     string           `json:"raw_text"`
	Destination string           `json:"destination,omitempty"`
	CurrentStep trip_models.Step `json:"current_step"`
	BookingID   string           `json:"booking_id,omitempty"`
	Error       string           `json:"error,omitempty"`
}

func NewPlanSummary(state *trip_models.PlanningState) PlanSummary {
	s := PlanSummary{
		ID:          state.ID,
		RawText:     state.RawText,
		CurrentStep: state.CurrentStep,
		Error:       state.ErrorMessage,
	}
	if state.Request != nil {
		s.Destination = state.Request.DisplayDestination()
	}
	if state.Booking != nil {
		s.BookingID = state.Booking.BookingID
	}
	return s
}

type DestinationResponse struct {
	Name      string          `json:"name"`
	Aliases   []string        `json:"aliases"`
	BasePrice int             `json:"base_price"`
	Hotels    []catalog.Hotel `json:"hotels"`
}

func NewDestinationResponses(c *catalog.Catalog) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(c.Cities))
	for _, city := range c.Cities {
		out = append(out, DestinationResponse{
			Name:      city.Name,
			Aliases:   city.Aliases,
			BasePrice: city.BasePrice,
			Hotels:    city.Hotels,
		})
	}
	return out
}

type PromptTemplate struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// PromptTemplates are the quick-start requests offered by the dashboard and REPL.
var PromptTemplates = []PromptTemplate{
	{Name: "Beijing weekend", Prompt: "I want to go to Beijing for 2 nights, my name is Wang Wei"},
	{Name: "Shanghai business trip", Prompt: "Book a hotel in Shanghai for 2 nights from tomorrow, call me Li Hua"},
	{Name: "Guangzhou one night", Prompt: "Next Saturday to Guangzhou, one night, my name is Zhang San"},
	{Name: "北京3日游", Prompt: "我想去北京玩3天，住两晚，我叫王伟"},
	{Name: "上海商务行", Prompt: "预订上海2晚酒店，明天出发，姓名李华"},
}
