package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/itinerary"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Validator itinerary.EnvelopeValidator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every step to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Extract the itinerary of a confirmation document"`
	History HistoryCmd `cmd:"" help:"List previously stored results"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Source     string `arg:"" help:"Confirmation document path or http(s) URL"`
	Output     string `short:"o" help:"Write the envelope to this file instead of stdout"`
	Layout     string `short:"l" env:"ITINERARY_LAYOUT" help:"YAML file overriding marker classes"`
	DB         string `env:"ITINERARY_DB" help:"SQLite database recording every result"`
	NoValidate bool   `help:"Skip envelope schema validation"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB     string `required:"" env:"ITINERARY_DB" help:"SQLite database with stored results"`
	Source string `help:"Only show results for this source"`
	Status string `help:"Only show results with this status (ok, fail)"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of results"`
}
