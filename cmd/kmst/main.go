// Command kmst searches a low-cost k-node subtree of a weighted graph with
// the whale optimization algorithm, once per seed, and reports the best
// result across seeds.
//
// Usage:
//
//	kmst -p graph.txt -k 10 -s 1:30 [-v] [-svg] [-config kmst.yaml] [-store sqlite] [-out dir]
//	kmst -p graph.txt -k 10 -s 1 30
//	kmst -p graph.txt -k 10 -rs 5
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
	"path/filepath"
	"time"

	"github.com/katalvlaran/kmst/config"
	"github.com/katalvlaran/kmst/graph"
	"github.com/katalvlaran/kmst/graphio"
	"github.com/katalvlaran/kmst/store"
	"github.com/katalvlaran/kmst/woa"
)

const stampLayout = "20060102T150405"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, time.Now)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) error {
	opts, err := parseFlags(args, stderr, now)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.storeKind != "" {
		cfg.Store.Kind = opts.storeKind
	}
	if opts.outDir != "" {
		cfg.Report.Dir = opts.outDir
	}
	cfg.Report.SVG = cfg.Report.SVG || opts.svg
	if err = cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inputs, err := graphio.ReadEdgesFile(opts.path)
	if err != nil {
		return err
	}
	g, err := graph.New(inputs)
	if err != nil {
		return fmt.Errorf("build graph from %s: %w", opts.path, err)
	}
	logger.Info("graph loaded", slog.String("path", opts.path),
		slog.Int("nodes", g.NumNodes()), slog.Float64("diameter", g.Diameter()))

	st, err := store.NewStore(cfg.Store.Kind, cfg.Store.Path)
	if err != nil {
		return err
	}
	if err = st.Init(ctx); err != nil {
		return fmt.Errorf("init %s store: %w", cfg.Store.Kind, err)
	}
	defer func() {
		_ = st.Close()
	}()

	stamp := now().UTC().Format(stampLayout)
	runs := make([]store.Run, 0, len(opts.seeds))
	for _, seed := range opts.seeds {
		res, err := search(ctx, g, opts.k, seed, cfg, logger)
		if err != nil {
			return err
		}
		if err = writeOutputs(cfg.Report, seed, stamp, res, logger); err != nil {
			return err
		}

		rec := store.NewRun(opts.path, res, now())
		if rec.ID, err = st.SaveRun(ctx, rec); err != nil {
			return fmt.Errorf("save run for seed %d: %w", seed, err)
		}
		runs = append(runs, rec)
		fmt.Fprintf(stdout, "seed=%d cost=%.6f connected=%t stalls=%d id=%s\n",
			seed, res.Cost, res.Connected, res.Stalls, rec.ID)
	}

	best, _ := store.Best(runs)
	fmt.Fprintf(stdout, "best seed=%d cost=%.6f connected=%t nodes=%v\n",
		best.Seed, best.Cost, best.Connected, best.Nodes)

	return nil
}

func search(ctx context.Context, g *graph.Graph, k int, seed int64, cfg *config.Config, logger *slog.Logger) (woa.Result, error) {
	opts := append(cfg.Options(), woa.WithLogger(logger.With(slog.Int64("seed", seed))))
	o, err := woa.New(g, k, seed, opts...)
	if err != nil {
		return woa.Result{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	if _, err = o.Run(ctx); err != nil {
		return woa.Result{}, fmt.Errorf("seed %d: %w", seed, err)
	}

	return o.Result(), nil
}

// writeOutputs writes the text report and, when enabled, the two SVGs.
func writeOutputs(rep config.Report, seed int64, stamp string, res woa.Result, logger *slog.Logger) error {
	path, err := graphio.WriteReport(rep.Dir, seed, stamp, res.Edges)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	logger.Info("report saved", slog.String("path", path))
	if !rep.SVG {
		return nil
	}

	treePath := filepath.Join(rep.Dir, fmt.Sprintf("tree_seed_%d_%s.svg", seed, stamp))
	if err = writeSVG(treePath, func(w io.Writer) error { return graphio.PlotTree(w, res.Edges) }); err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	curvePath := filepath.Join(rep.Dir, fmt.Sprintf("convergence_seed_%d_%s.svg", seed, stamp))
	if err = writeSVG(curvePath, func(w io.Writer) error { return graphio.PlotConvergence(w, res.Curve) }); err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	logger.Info("svg saved", slog.String("tree", treePath), slog.String("convergence", curvePath))

	return nil
}

func writeSVG(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err = render(file); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
