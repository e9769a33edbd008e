package main

import (
	"fmt"
	"io"
	"strings"

	"tripagent/internal/catalog"
	"tripagent/internal/models/response_models"
	"tripagent/internal/models/trip_models"
	"tripagent/pkg/utils"
)

const rule = "------------------------------------------------------------"

func renderBanner(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "tripagent: describe your trip and we will book it")
	fmt.Fprintf(w, "Supported destinations: %s\n", strings.Join(c.CityNames(), ", "))
	fmt.Fprintln(w, "Examples:")
	for _, tpl := range response_models.PromptTemplates {
		fmt.Fprintf(w, "  - %s\n", tpl.Prompt)
	}
	fmt.Fprintln(w, "Type quit, exit or q to leave.")
	fmt.Fprintln(w, rule)
}

// renderPlan prints the outcome of a run followed by its execution log.
func renderPlan(w io.Writer, state *trip_models.PlanningState) {
	resp := response_models.NewPlanResponse(state)

	fmt.Fprintln(w, rule)
	if resp.Success {
		b := state.Booking
		fmt.Fprintln(w, "Trip booked")
		fmt.Fprintf(w, "  Booking ID:  %s\n", b.BookingID)
		fmt.Fprintf(w, "  Guest:       %s\n", b.GuestName)
		fmt.Fprintf(w, "  Destination: %s\n", state.Request.DisplayDestination())
		if resp.Trip != nil {
			fmt.Fprintf(w, "  Stay:        %s to %s (%d nights)\n", resp.Trip.CheckIn, resp.Trip.CheckOut, resp.Trip.Nights)
		}
		fmt.Fprintf(w, "  Flight:      %s departing %s, %d\n", state.Flight.FlightNumber, state.Flight.DepartureTime, resp.Cost.FlightCost)
		fmt.Fprintf(w, "  Hotel:       %s (%.1f), %d total\n", state.SelectedHotel.Name, state.SelectedHotel.Rating, resp.Cost.HotelTotal)
		fmt.Fprintf(w, "  Total:       %d\n", resp.Cost.Total)
		fmt.Fprintf(w, "  Booked at:   %s\n", b.Timestamp.Format(utils.DisplayLayout))
		if b.Message != "" {
			fmt.Fprintf(w, "  %s\n", b.Message)
		}
	} else {
		fmt.Fprintf(w, "Planning failed: %s\n", state.ErrorMessage)
		if len(resp.Suggestions) > 0 {
			fmt.Fprintln(w, "Suggestions:")
			for _, s := range resp.Suggestions {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
	}

	fmt.Fprintln(w, "Execution log:")
	for i, entry := range state.ExecutionLog {
		fmt.Fprintf(w, "  %d. %s\n", i+1, entry)
	}
	fmt.Fprintln(w, rule)
}
