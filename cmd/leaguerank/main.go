/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/leaguerank/internal"
	"github.com/mikeb26/leaguerank/league"
	"github.com/mikeb26/leaguerank/tabular"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help": handleHelp,
	"rank": handleRank,
	"show": handleShow,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// rankOpts holds the flags shared by rank and show.
type rankOpts struct {
	configFile string
	win        int
	tie        int
	loss       int
	since      string
	until      string
}

func newRankFlagSet(name string, opts *rankOpts) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&opts.configFile, "config", internal.DefaultConfigFile,
		"YAML configuration file")
	fs.IntVar(&opts.win, "win", -1, "Points for a win (overrides config)")
	fs.IntVar(&opts.tie, "tie", -1, "Points for a tie (overrides config)")
	fs.IntVar(&opts.loss, "loss", -1, "Points for a loss (overrides config)")
	fs.StringVar(&opts.since, "since", "", "Ignore matches played before this date")
	fs.StringVar(&opts.until, "until", "", "Ignore matches played after this date")

	return fs
}

// rankSetup holds everything derived from rankOpts that a run needs.
type rankSetup struct {
	cfg    *internal.Config
	since  time.Time
	until  time.Time
	client *tabular.Client
}

func (opts *rankOpts) setup(ctx context.Context, fs *flag.FlagSet) (*rankSetup,
	error) {

	cfg, err := internal.LoadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}
	// flags only override when given explicitly
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "win":
			cfg.Scoring.Win = opts.win
		case "tie":
			cfg.Scoring.Tie = opts.tie
		case "loss":
			cfg.Scoring.Loss = opts.loss
		}
	})

	ret := &rankSetup{cfg: cfg}
	if ret.since, err = internal.ParseDateOrZero(opts.since); err != nil {
		return nil, fmt.Errorf("invalid -since %q: %w", opts.since, err)
	}
	if ret.until, err = internal.ParseDateOrZero(opts.until); err != nil {
		return nil, fmt.Errorf("invalid -until %q: %w", opts.until, err)
	}
	if !ret.until.IsZero() && ret.until.Before(ret.since) {
		return nil, fmt.Errorf("-until %v is before -since %v", opts.until,
			opts.since)
	}
	ret.client = tabular.NewClient(ctx, cfg.Cache)

	return ret, nil
}

func (s *rankSetup) compute(ctx context.Context,
	inputs []string) ([]*league.Standing, error) {

	records, err := s.client.LoadAll(ctx, inputs)
	if err != nil {
		return nil, err
	}
	records = league.FilterPlayed(records, s.since, s.until)

	return league.Compute(records, s.cfg.ScoreMap())
}

func handleRank(ctx context.Context, args []string) {
	var opts rankOpts
	fs := newRankFlagSet("rank", &opts)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Please provide at least one input and an output.")
		fs.Usage()
		os.Exit(1)
	}
	inputs := fs.Args()[:fs.NArg()-1]
	output := fs.Arg(fs.NArg() - 1)

	setup, err := opts.setup(ctx, fs)
	if err != nil {
		log.Fatalf("leaguerank: %v", err)
	}
	standings, err := setup.compute(ctx, inputs)
	if err != nil {
		log.Fatalf("leaguerank: %v", err)
	}
	if err := setup.client.Save(ctx, output, standings); err != nil {
		log.Fatalf("leaguerank: failed to write %v: %v", output, err)
	}
}

func handleShow(ctx context.Context, args []string) {
	var opts rankOpts
	fs := newRankFlagSet("show", &opts)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Please provide at least one input.")
		fs.Usage()
		os.Exit(1)
	}

	setup, err := opts.setup(ctx, fs)
	if err != nil {
		log.Fatalf("leaguerank: %v", err)
	}
	standings, err := setup.compute(ctx, fs.Args())
	if err != nil {
		log.Fatalf("leaguerank: %v", err)
	}
	fmt.Print(tabular.BuildStandingsOutput(standings))
}
