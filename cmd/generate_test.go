package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
)

func TestGenerateConfigSeedFlag(t *testing.T) {
	generateConfigPath = ""

	// Untouched flag keeps the configured seed.
	cfg, err := generateConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Seed, cfg.Seed)

	// An explicit --seed=0 is a real request, not "unset".
	require.NoError(t, generateCmd.Flags().Set("seed", "0"))
	cfg, err = generateConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)

	require.NoError(t, generateCmd.Flags().Set("seed", "99"))
	cfg, err = generateConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
}
