package main

import (
	"context"
	"fmt"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/formatter"
	"github.com/urfave/cli/v3"
)

// FlightsSearch looks up flights without subscribing.
func (r *Runner) FlightsSearch(ctx context.Context, cmd *cli.Command) error {
	date := cmd.String("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	results, err := r.api.SearchFlights(ctx, cmd.String("airline"), cmd.String("flight"), date)
	if err != nil {
		return fmt.Errorf("flight search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if len(results) == 0 {
		return r.writePlain("No flights found with the specified criteria.\n")
	}

	for i, result := range results {
		r.writePlain("%d. %s %s - %s\n", i+1, result.AirlineCode, result.FlightNumber, result.AirlineName)
		r.writePlain("   Scheduled:   %s\n", formatter.FormatDisplayTime(result.ScheduledTime))
		r.writePlain("   Estimated:   %s\n", formatter.FormatDisplayTime(result.EstimatedTime))
		r.writePlain("   Destination: %s (%s)\n", result.CityEn, result.CountryEn)
		r.writePlain("   Status:      %s\n", result.StatusEn)
	}
	return nil
}
