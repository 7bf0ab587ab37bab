package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/gripdex/constants"
	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(constants.TuningEnv, "")
	t.Setenv(constants.AddrEnv, "")
	path := writeConfig(t, `
tuning = "D2 A2 D3 G3 B3 E4"
limit = 3

[server]
addr = ":9090"
allowed_origins = ["http://localhost:4200"]

[generator]
min_fret = 3
allow_barre = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	tuning, err := cfg.ResolvedTuning()
	assert.NoError(err)
	assert.Equal("D2", tuning[0].String())
	assert.Equal(":9090", cfg.ResolvedAddr())
	assert.Equal(3, cfg.ResolvedLimit())
	assert.Equal([]string{"http://localhost:4200"}, cfg.ResolvedAllowedOrigins())

	opts := cfg.GeneratorOptions()
	assert.Equal(3, opts.MinFret)
	assert.False(opts.AllowBarre)
	assert.Equal(grip.DefaultOptions().MaxFret, opts.MaxFret)
	assert.True(opts.AllowInversions)
}

func TestMissingFileMeansDefaults(t *testing.T) {
	t.Setenv(constants.TuningEnv, "")
	t.Setenv(constants.AddrEnv, "")
	t.Setenv(constants.OutDirEnv, "")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert := assert.New(t)
	tuning, err := cfg.ResolvedTuning()
	assert.NoError(err)
	assert.Equal(model.StandardTuning, tuning)
	assert.Equal(constants.DefaultAddr, cfg.ResolvedAddr())
	assert.Equal(constants.DefaultOutDir, cfg.ResolvedOutDir())
	assert.Equal(constants.DefaultLimit, cfg.ResolvedLimit())
	assert.Equal(constants.CacheSize, cfg.ResolvedCacheSize())
	assert.Equal(grip.DefaultOptions(), cfg.GeneratorOptions())

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(err)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv(constants.TuningEnv, "")

	_, err := Load(writeConfig(t, `tuning = "E2 A2"`))
	assert.ErrorIs(t, err, model.ErrInvalidPitch)

	_, err = Load(writeConfig(t, "[generator]\nmin_fret = 0\n"))
	assert.ErrorIs(t, err, grip.ErrInvalidFretRange)

	_, err = Load(writeConfig(t, "tuning = [1, 2"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv(constants.TuningEnv, "D2 G2 D3 G3 B3 D4")
	t.Setenv(constants.AddrEnv, ":7000")

	cfg := Config{Tuning: "E2 A2 D3 G3 B3 E4", Server: ServerConfig{Addr: ":9090"}}
	tuning, err := cfg.ResolvedTuning()
	require.NoError(t, err)
	assert.Equal(t, "D2 G2 D3 G3 B3 D4", tuning.String())
	assert.Equal(t, ":7000", cfg.ResolvedAddr())
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(constants.TuningEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	maxFret := 7
	cfg := Config{
		Tuning:    "D2 A2 D3 G3 B3 E4",
		Generator: model.GripOptions{MaxFret: &maxFret},
	}

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Tuning, loaded.Tuning)
	assert.Equal(t, 7, loaded.GeneratorOptions().MaxFret)
}

func TestGripOptionsOfRoundTrips(t *testing.T) {
	opts := grip.DefaultOptions()
	opts.MaxFret = 9
	opts.AllowDuplicateNotes = true

	cfg := Config{Generator: GripOptionsOf(opts)}
	assert.Equal(t, opts, cfg.GeneratorOptions())
}
