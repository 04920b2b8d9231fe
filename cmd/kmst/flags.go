package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/kmst/woa"
)

// maxSeeds bounds a single -s range or -rs count.
const maxSeeds = 100000

var errUsage = errors.New("usage")

type options struct {
	path       string
	k          int
	seeds      []int64
	verbose    bool
	svg        bool
	configPath string
	storeKind  string
	outDir     string
}

func usageError(msg string) error {
	return fmt.Errorf("%w: %s (see -h)", errUsage, msg)
}

// parseFlags parses args into options. now seeds the -rs stream.
func parseFlags(args []string, stderr io.Writer, now func() time.Time) (options, error) {
	var (
		opts      options
		seedArg   string
		randSeeds int
	)
	fs := flag.NewFlagSet("kmst", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.path, "p", "", "path to the .txt edge list (from,to,weight per line)")
	fs.IntVar(&opts.k, "k", 0, "number of nodes of the subtree")
	fs.StringVar(&seedArg, "s", "", "seed n, or inclusive range i:f (also -s i f)")
	fs.IntVar(&randSeeds, "rs", 0, "run n random seeds (exclusive with -s)")
	fs.BoolVar(&opts.verbose, "v", false, "verbose (debug) logging")
	fs.BoolVar(&opts.svg, "svg", false, "write tree and convergence SVGs next to each report")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML configuration file")
	fs.StringVar(&opts.storeKind, "store", "", "run store backend: memory|sqlite (overrides config)")
	fs.StringVar(&opts.outDir, "out", "", "report directory (overrides config)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	// "-s i f" gives the range end as the next positional argument; flag
	// parsing resumes after it.
	if rest := fs.Args(); seedArg != "" && !strings.Contains(seedArg, ":") && len(rest) > 0 {
		if _, err := strconv.ParseInt(rest[0], 10, 64); err == nil {
			seedArg += ":" + rest[0]
			if err = fs.Parse(rest[1:]); err != nil {
				return options{}, err
			}
		}
	}
	if fs.NArg() > 0 {
		return options{}, usageError(fmt.Sprintf("unexpected arguments %q", fs.Args()))
	}

	if opts.path == "" {
		return options{}, usageError("missing -p")
	}
	if opts.k <= 0 {
		return options{}, usageError("-k must be a positive integer")
	}

	var err error
	switch {
	case seedArg != "" && randSeeds != 0:
		return options{}, usageError("-s and -rs cannot be combined")
	case seedArg != "":
		if opts.seeds, err = parseSeedArg(seedArg); err != nil {
			return options{}, err
		}
	case randSeeds > 0 && randSeeds <= maxSeeds:
		opts.seeds = woa.DeriveSeeds(now().UnixNano(), randSeeds)
	case randSeeds != 0:
		return options{}, usageError(fmt.Sprintf("-rs must be in [1, %d]", maxSeeds))
	default:
		return options{}, usageError("one of -s or -rs is required")
	}

	return opts, nil
}

// parseSeedArg accepts "n" or an inclusive range "i:f" with i <= f.
func parseSeedArg(arg string) ([]int64, error) {
	lo, hi, isRange := strings.Cut(arg, ":")
	start, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return nil, usageError(fmt.Sprintf("invalid seed %q", lo))
	}
	if !isRange {
		return []int64{start}, nil
	}

	end, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return nil, usageError(fmt.Sprintf("invalid seed %q", hi))
	}
	if start > end {
		return nil, usageError(fmt.Sprintf("seed range %d:%d is empty", start, end))
	}
	if uint64(end-start) >= maxSeeds {
		return nil, usageError(fmt.Sprintf("seed range %d:%d exceeds %d seeds", start, end, maxSeeds))
	}

	seeds := make([]int64, 0, end-start+1)
	for s := start; ; s++ {
		seeds = append(seeds, s)
		if s == end {
			break
		}
	}

	return seeds, nil
}
