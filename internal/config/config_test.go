package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
engines:
  - name: stockfish
    path: /usr/bin/stockfish
    args: ["--threads", "4"]
    options:
      Hash: "256"
  - name: lc0
    path: /usr/bin/lc0
analysis:
  depth: 20
  multipv: 3
log:
  level: debug
  file: /tmp/engineroom.log
  max_size_mb: 10
`

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	require.Len(t, cfg.Engines, 2)
	assert.Equal(t, "stockfish", cfg.Engines[0].Name)
	assert.Equal(t, "/usr/bin/stockfish", cfg.Engines[0].Path)
	assert.Equal(t, []string{"--threads", "4"}, cfg.Engines[0].Args)
	assert.Equal(t, "256", cfg.Engines[0].Options["Hash"])

	require.NotNil(t, cfg.Analysis.Depth)
	assert.Equal(t, 20, *cfg.Analysis.Depth)
	require.NotNil(t, cfg.Analysis.MultiPV)
	assert.Equal(t, 3, *cfg.Analysis.MultiPV)
	assert.Nil(t, cfg.Analysis.MoveTimeMs)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestParse_NoEnginesFails(t *testing.T) {
	_, err := Parse([]byte("engines: []"))
	assert.Error(t, err)
}

func TestParse_MissingPathFails(t *testing.T) {
	_, err := Parse([]byte(`
engines:
  - name: stockfish
`))
	assert.Error(t, err)
}

func TestParse_DuplicateNamesFail(t *testing.T) {
	_, err := Parse([]byte(`
engines:
  - name: sf
    path: /a
  - name: sf
    path: /b
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate engine name")
}

func TestParse_BadLogLevelFails(t *testing.T) {
	_, err := Parse([]byte(`
engines:
  - name: sf
    path: /a
log:
  level: loud
`))
	assert.Error(t, err)
}

func TestParse_BadDepthFails(t *testing.T) {
	_, err := Parse([]byte(`
engines:
  - name: sf
    path: /a
analysis:
  depth: 0
`))
	assert.Error(t, err)
}

func TestParse_MalformedYAMLFails(t *testing.T) {
	_, err := Parse([]byte("engines: [unterminated"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Engines, 2)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
