package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := Loader{Path: filepath.Join(t.TempDir(), "nope.json")}
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitPathFallsThrough(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	body := `{"generation": {"count": 7}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grand_config.json"), []byte(body), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Loader{Path: filepath.Join(dir, "missing.json")}.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Generation.Count)
}

func TestLoadHomeBeforeWorkingDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".grand"), 0o755))
	homeCfg := `{"generation": {"count": 11}}`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".grand", "config.json"), []byte(homeCfg), 0o644))

	dir := t.TempDir()
	cwdCfg := `{"generation": {"count": 22}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grand_config.json"), []byte(cwdCfg), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Loader{}.Load()
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Generation.Count)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "generation": {"count": 25, "seed": 42},
  "distribution": {"name": "normal", "parameters": {"mu": 1.0, "sigma": 0.5}},
  "output": {"format": "csv", "file_path": "samples.csv"},
  "verbose": true
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Loader{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Generation.Count)
	require.NotNil(t, cfg.Generation.Seed)
	assert.Equal(t, int64(42), *cfg.Generation.Seed)
	assert.Equal(t, "normal", cfg.Distribution.Name)
	assert.Equal(t, rng.Params{"mu": 1.0, "sigma": 0.5}, cfg.Distribution.Parameters)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "samples.csv", cfg.Output.FilePath)
	assert.True(t, cfg.Verbose)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"distribution": {"name": "poisson", "parameters": {"lambda": 3.0}}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Loader{Path: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, "poisson", cfg.Distribution.Name)
	assert.Equal(t, 100, cfg.Generation.Count)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Loader{Path: path}.Load()
	require.Error(t, err)
	assert.Equal(t, errdefs.KindConfiguration, errdefs.KindOf(err))
	assert.Contains(t, err.Error(), path)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"distribution": {"name": "gamma"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Loader{Path: path}.Load()
	require.Error(t, err)
	assert.Equal(t, errdefs.KindConfiguration, errdefs.KindOf(err))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "dirs", "config.json")
	seed := int64(7)
	cfg := Default()
	cfg.Generation.Seed = &seed
	cfg.Distribution.Name = "binomial"
	cfg.Distribution.Parameters = rng.Params{"trials": 20.0, "p": 0.25}

	l := Loader{Path: path}
	wrote, err := l.Save(cfg)
	require.NoError(t, err)
	assert.Equal(t, path, wrote)

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestCreateDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	l := Loader{Path: path}

	wrote, err := l.CreateDefault()
	require.NoError(t, err)
	assert.Equal(t, path, wrote)

	// Mark the file, then check a second call does not overwrite it.
	custom := Default()
	custom.Generation.Count = 7
	_, err = l.Save(custom)
	require.NoError(t, err)

	_, err = l.CreateDefault()
	require.NoError(t, err)
	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, got.Generation.Count)
}
