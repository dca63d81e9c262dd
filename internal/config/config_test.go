package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
delay: 250ms
log_level: debug
output: json
array:
  size: 8
graph:
  nodes: 10
  density: 0.5
metrics:
  addr: ":9102"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.DelayDuration())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 8, cfg.Array.Size)
	assert.Equal(t, int64(defaultArrayMax), cfg.Array.Max)
	assert.Equal(t, 10, cfg.Graph.Nodes)
	assert.Equal(t, 0.5, cfg.Graph.Density)
	assert.Equal(t, int64(defaultMaxWeight), cfg.Graph.MaxWeight)
	assert.Equal(t, ":9102", cfg.Metrics.Addr)
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "delay: soon\n"))
	assert.Error(t, err)
}

func TestLoad_ReportsEveryInvalidField(t *testing.T) {
	path := writeConfig(t, `
delay: -1s
output: xml
graph:
  nodes: 0
  density: 2
`)
	_, err := Load(path)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)
}

func TestDuration_MarshalYAML(t *testing.T) {
	v, err := Duration(1500 * time.Millisecond).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", v)
}
