package repo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalConfig(t *testing.T) {
	cfg, err := UnmarshalConfig("./testdata/cita-cli.toml")
	require.Nil(t, err)

	assert.Equal(t, "http://127.0.0.1:1337", cfg.URI)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.Color)
	assert.Equal(t, "blake2b", cfg.Algorithm)
	assert.Equal(t, uint32(1), cfg.ChainID)
	assert.Equal(t, uint32(2), cfg.Version)
}

func TestUnmarshalConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(envDir, t.TempDir())

	cfg, err := UnmarshalConfig("")
	require.Nil(t, err)
	assert.Equal(t, DefaultURI, cfg.URI)
	assert.Equal(t, "sha3", cfg.Algorithm)
	assert.True(t, cfg.Color)
}

func TestSessionOutputOverwrite(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Output())

	s.SetOutput(json.RawMessage(`"0x01"`))
	s.SetOutput(json.RawMessage(`"0x02"`))
	assert.Equal(t, json.RawMessage(`"0x02"`), s.Output())
}
