// Command stepsearch runs one stepwise grid search in batch mode and prints
// the outcome, optionally with the final ASCII frame and the run metrics.
//
// Usage:
//
//	stepsearch [-algo astar|dijkstra|randomwalk|bfs] [-size 100x100]
//	           [-start 5,5] [-goal 70,35] [-demo] [-max-steps N] [-seed N]
//	           [-timeout 10s] [-render] [-metrics] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/stepsearch/algorithms"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/session"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, "stepsearch:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	def := session.DefaultConfig()

	fs := flag.NewFlagSet("stepsearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		algo     = fs.String("algo", def.Algorithm.String(), "search algorithm: astar, dijkstra, randomwalk or bfs")
		size     = fs.String("size", fmt.Sprintf("%dx%d", def.Width, def.Height), "grid size WxH")
		start    = fs.String("start", fmt.Sprintf("%d,%d", def.Start.X, def.Start.Y), "start cell x,y")
		goal     = fs.String("goal", fmt.Sprintf("%d,%d", def.Goal.X, def.Goal.Y), "goal cell x,y")
		demo     = fs.Bool("demo", true, "place the demo obstacles")
		maxSteps = fs.Int("max-steps", 0, "iteration cap, 0 for none")
		seed     = fs.Uint64("seed", 0, "random seed, 0 for a random one")
		timeout  = fs.Duration("timeout", 0, "abort the run after this long, 0 for none")
		render   = fs.Bool("render", false, "print the final frame")
		metrics  = fs.Bool("metrics", false, "print the run metrics in text exposition format")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := session.Config{MaxSteps: *maxSteps, Seed: *seed}
	var err error
	if cfg.Algorithm, err = algorithms.ParseKind(*algo); err != nil {
		return err
	}
	if _, err = fmt.Sscanf(*size, "%dx%d", &cfg.Width, &cfg.Height); err != nil {
		return fmt.Errorf("parse -size %q: %w", *size, err)
	}
	if cfg.Start, err = parseState(*start); err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	if cfg.Goal, err = parseState(*goal); err != nil {
		return fmt.Errorf("parse -goal: %w", err)
	}

	reg := prometheus.NewRegistry()
	s, err := session.New(cfg, session.WithLogger(logger), session.WithRegisterer(reg))
	if err != nil {
		return err
	}
	if *demo {
		s.ApplyScene(session.DemoScene)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	res, err := s.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "algorithm: %s\nstatus:    %s\nsteps:     %d\nexplored:  %d\n",
		res.Algorithm, res.Status, res.Steps, res.Explored)
	if res.Status == session.Found {
		fmt.Fprintf(stdout, "path:      %d cells, cost %.3f\n", len(res.Path), res.Cost)
	}
	fmt.Fprintf(stdout, "duration:  %s\n", res.Duration.Round(time.Microsecond))

	if *render {
		if err = s.Render(stdout); err != nil {
			return err
		}
	}
	if *metrics {
		return writeMetrics(stdout, reg)
	}

	return nil
}

func parseState(v string) (gridgraph.State, error) {
	var st gridgraph.State
	if _, err := fmt.Sscanf(v, "%d,%d", &st.X, &st.Y); err != nil {
		return st, fmt.Errorf("%q is not x,y: %w", v, err)
	}

	return st, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
