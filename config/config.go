// Package config loads the run configuration of the kmst command from an
// optional YAML file, a .env file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kmst/woa"
)

// Store kinds accepted by Validate.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Environment variable names.
const (
	EnvPopulation = "SIZE_POPULATION"
	EnvIterations = "MAX_ITERATION"
	EnvLowerBound = "LB"
	EnvUpperBound = "UB"
	EnvStore      = "KMST_STORE"
	EnvStorePath  = "KMST_STORE_PATH"
	EnvReportDir  = "KMST_REPORT_DIR"
)

// EnvFile is the dotenv file Load reads from the working directory. Variables
// already present in the environment take precedence over its entries.
const EnvFile = ".env"

// ErrInvalid is wrapped by every validation and parse failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration. The four search fields have no
// defaults: Load fails unless the YAML file or the environment sets each.
type Config struct {
	PopulationSize int     `yaml:"population_size"`
	MaxIterations  int     `yaml:"max_iterations"`
	LowerBound     float64 `yaml:"lb"`
	UpperBound     float64 `yaml:"ub"`
	Store          Store   `yaml:"store"`
	Report         Report  `yaml:"report"`
}

// Store selects the run store backend. Path is used by the sqlite kind.
type Store struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path,omitempty"`
}

// Report controls where per-seed reports go and whether SVGs are drawn.
type Report struct {
	Dir string `yaml:"dir"`
	SVG bool   `yaml:"svg"`
}

// searchFields mirrors the required Config fields with pointers so that a
// key absent from the YAML file stays nil.
type searchFields struct {
	PopulationSize *int     `yaml:"population_size"`
	MaxIterations  *int     `yaml:"max_iterations"`
	LowerBound     *float64 `yaml:"lb"`
	UpperBound     *float64 `yaml:"ub"`
}

// Default returns the built-in store and report settings. The search fields
// are left zero; see Load.
func Default() *Config {
	return &Config{
		Store:  Store{Kind: StoreMemory, Path: "kmst.db"},
		Report: Report{Dir: "edges_reports"},
	}
}

// Load builds the configuration in order: Default, the YAML file at path
// when path is not empty, then the environment (after loading EnvFile if it
// exists). The result is validated.
//
// Errors:
//   - ErrInvalid if EnvFile or the YAML file does not parse, an environment
//     value does not parse, a search field is set nowhere, or Validate fails.
//   - the read error of a YAML file that cannot be opened.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to load %s: %v", ErrInvalid, EnvFile, err)
	}

	config := Default()
	seen := make(map[string]bool, 4)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file %s: %v", ErrInvalid, path, err)
		}
		var fields searchFields
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file %s: %v", ErrInvalid, path, err)
		}
		seen[EnvPopulation] = fields.PopulationSize != nil
		seen[EnvIterations] = fields.MaxIterations != nil
		seen[EnvLowerBound] = fields.LowerBound != nil
		seen[EnvUpperBound] = fields.UpperBound != nil
	}
	if err := config.applyEnv(seen); err != nil {
		return nil, err
	}
	for _, key := range []string{EnvPopulation, EnvIterations, EnvLowerBound, EnvUpperBound} {
		if !seen[key] {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalid, key)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnv overlays every non-empty variable and marks the search fields it
// set in seen.
func (c *Config) applyEnv(seen map[string]bool) error {
	var err error
	if c.PopulationSize, err = envInt(EnvPopulation, c.PopulationSize, seen); err != nil {
		return err
	}
	if c.MaxIterations, err = envInt(EnvIterations, c.MaxIterations, seen); err != nil {
		return err
	}
	if c.LowerBound, err = envFloat(EnvLowerBound, c.LowerBound, seen); err != nil {
		return err
	}
	if c.UpperBound, err = envFloat(EnvUpperBound, c.UpperBound, seen); err != nil {
		return err
	}
	c.Store.Kind = envString(EnvStore, c.Store.Kind)
	c.Store.Path = envString(EnvStorePath, c.Store.Path)
	c.Report.Dir = envString(EnvReportDir, c.Report.Dir)

	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return fmt.Errorf("%w: population_size must be positive, got %d", ErrInvalid, c.PopulationSize)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max_iterations must be positive, got %d", ErrInvalid, c.MaxIterations)
	case !(c.LowerBound < c.UpperBound):
		return fmt.Errorf("%w: lb (%v) must be less than ub (%v)", ErrInvalid, c.LowerBound, c.UpperBound)
	case c.Store.Kind != StoreMemory && c.Store.Kind != StoreSQLite:
		return fmt.Errorf("%w: unknown store kind %q", ErrInvalid, c.Store.Kind)
	case c.Store.Kind == StoreSQLite && c.Store.Path == "":
		return fmt.Errorf("%w: sqlite store requires a path", ErrInvalid)
	case c.Report.Dir == "":
		return fmt.Errorf("%w: report dir is required", ErrInvalid)
	}

	return nil
}

// Options converts the search parameters into woa options.
func (c *Config) Options() []woa.Option {
	return []woa.Option{
		woa.WithPopulationSize(c.PopulationSize),
		woa.WithMaxIterations(c.MaxIterations),
		woa.WithBounds(c.LowerBound, c.UpperBound),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func envInt(key string, fallback int, seen map[string]bool) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	seen[key] = true

	return n, nil
}

func envFloat(key string, fallback float64, seen map[string]bool) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalid, key, err)
	}
	seen[key] = true

	return f, nil
}
