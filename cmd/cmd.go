// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// subscriptionsCommand handles subscription operations
func subscriptionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "subscriptions",
		Aliases: []string{"subs"},
		Usage:   "Manage flight subscriptions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List active subscriptions",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SubscriptionsList,
			},
			{
				Name:  "add",
				Usage: "Subscribe to a flight",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "airline",
						Aliases:  []string{"a"},
						Usage:    "Airline code (e.g. LY)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "flight",
						Aliases:  []string{"f"},
						Usage:    "Flight number (e.g. 001)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Scheduled date (YYYY-MM-DD, defaults to today)",
					},
				},
				Action: r.SubscriptionsAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Delete a subscription",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "airline",
						Aliases:  []string{"a"},
						Usage:    "Airline code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "flight",
						Aliases:  []string{"f"},
						Usage:    "Flight number",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "date",
						Aliases:  []string{"d"},
						Usage:    "Scheduled date or timestamp",
						Required: true,
					},
				},
				Action: r.SubscriptionsRemove,
			},
			{
				Name:  "cached",
				Usage: "Show the last locally saved subscription list",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SubscriptionsCached,
			},
		},
	}
}

// flightsCommand handles flight search operations
func flightsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "flights",
		Usage: "Flight lookup operations",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search flights by airline, number, and date",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "airline",
						Aliases:  []string{"a"},
						Usage:    "Airline code",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "flight",
						Aliases:  []string{"f"},
						Usage:    "Flight number",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Scheduled date (YYYY-MM-DD, defaults to today)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.FlightsSearch,
			},
		},
	}
}

// setupCommand handles configuration bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file and initialize the local cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive subscription management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for flight subscriptions",
		Action:  r.TUI,
	}
}
