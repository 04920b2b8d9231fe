package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmst/config"
	"github.com/katalvlaran/kmst/woa"
)

var searchKeys = []string{config.EnvPopulation, config.EnvIterations, config.EnvLowerBound, config.EnvUpperBound}

// clearEnv blanks every override so a developer's shell cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range append([]string{config.EnvStore, config.EnvStorePath, config.EnvReportDir}, searchKeys...) {
		t.Setenv(key, "")
	}
}

// setSearchEnv sets all four required search variables.
func setSearchEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvPopulation, "30")
	t.Setenv(config.EnvIterations, "100")
	t.Setenv(config.EnvLowerBound, "-10")
	t.Setenv(config.EnvUpperBound, "10")
}

// valid returns a configuration that passes Validate.
func valid() *config.Config {
	c := config.Default()
	c.PopulationSize, c.MaxIterations = woa.DefaultPopulationSize, woa.DefaultMaxIterations
	c.LowerBound, c.UpperBound = woa.DefaultLowerBound, woa.DefaultUpperBound

	return c
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kmst.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	setSearchEnv(t)

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, valid(), c)
	assert.Equal(t, config.StoreMemory, c.Store.Kind)
}

func TestLoad_MissingSearchFieldIsFatal(t *testing.T) {
	for _, missing := range searchKeys {
		t.Run(missing, func(t *testing.T) {
			clearEnv(t)
			setSearchEnv(t)
			t.Setenv(missing, "")

			_, err := config.Load("")
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorContains(t, err, missing+" is required")
		})
	}

	clearEnv(t)
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid, "nothing set at all")
}

func TestLoad_FileSatisfiesRequiredFields(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvLowerBound, "-1")
	path := writeFile(t, "population_size: 4\nmax_iterations: 2\nub: 0\n")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.PopulationSize)
	assert.Equal(t, -1.0, c.LowerBound)
	assert.Zero(t, c.UpperBound, "an explicit zero counts as set")

	_, err = config.Load(writeFile(t, "population_size: 4\nmax_iterations: 2\nub: 1\n"))
	assert.NoError(t, err)
	t.Setenv(config.EnvLowerBound, "")
	_, err = config.Load(writeFile(t, "population_size: 4\nmax_iterations: 2\nub: 1\n"))
	assert.ErrorContains(t, err, config.EnvLowerBound+" is required")
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	for _, key := range []string{config.EnvPopulation, config.EnvIterations, config.EnvLowerBound} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv(config.EnvUpperBound, "9")

	dir := t.TempDir()
	body := "SIZE_POPULATION=7\nMAX_ITERATION=11\nLB=-4\nUB=2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFile), []byte(body), 0o644))
	t.Chdir(dir)

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.PopulationSize)
	assert.Equal(t, 11, c.MaxIterations)
	assert.Equal(t, -4.0, c.LowerBound)
	assert.Equal(t, 9.0, c.UpperBound, "the environment wins over the file")
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
population_size: 12
max_iterations: 40
lb: -2
ub: 3.5
store:
  kind: sqlite
  path: runs.db
report:
  dir: out
  svg: true
`)

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.PopulationSize)
	assert.Equal(t, 40, c.MaxIterations)
	assert.Equal(t, -2.0, c.LowerBound)
	assert.Equal(t, 3.5, c.UpperBound)
	assert.Equal(t, config.Store{Kind: config.StoreSQLite, Path: "runs.db"}, c.Store)
	assert.Equal(t, config.Report{Dir: "out", SVG: true}, c.Report)

	t.Setenv(config.EnvPopulation, "50")
	t.Setenv(config.EnvUpperBound, "9")
	t.Setenv(config.EnvStore, config.StoreMemory)
	t.Setenv(config.EnvReportDir, "elsewhere")
	c, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, c.PopulationSize)
	assert.Equal(t, 40, c.MaxIterations)
	assert.Equal(t, 9.0, c.UpperBound)
	assert.Equal(t, config.StoreMemory, c.Store.Kind)
	assert.Equal(t, "elsewhere", c.Report.Dir)
}

func TestLoad_BadEnvIsFatal(t *testing.T) {
	for key, value := range map[string]string{
		config.EnvPopulation: "many",
		config.EnvIterations: "1.5",
		config.EnvLowerBound: "low",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			setSearchEnv(t)
			t.Setenv(key, value)
			_, err := config.Load("")
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "population_size: [1, 2]\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(c *config.Config){
		"population": func(c *config.Config) { c.PopulationSize = 0 },
		"iterations": func(c *config.Config) { c.MaxIterations = -1 },
		"bounds":     func(c *config.Config) { c.LowerBound, c.UpperBound = 1, 1 },
		"store kind": func(c *config.Config) { c.Store.Kind = "redis" },
		"store path": func(c *config.Config) { c.Store = config.Store{Kind: config.StoreSQLite} },
		"report dir": func(c *config.Config) { c.Report.Dir = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			mutate(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
	assert.NoError(t, valid().Validate())
	assert.ErrorIs(t, config.Default().Validate(), config.ErrInvalid, "search fields have no defaults")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	assert.Len(t, valid().Options(), 3)
}
