package main

import (
	"testing"

	"label-tool/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDetermineConfigPath(t *testing.T) {
	t.Setenv("LABEL_TOOL_CONFIG", "")
	assert.Equal(t, config.DefaultPath, determineConfigPath())

	t.Setenv("LABEL_TOOL_CONFIG", "/etc/labels.yaml")
	assert.Equal(t, "/etc/labels.yaml", determineConfigPath())
}

func TestDetermineLogLevel(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, determineLogLevel())

	t.Setenv("DEBUG", "1")
	assert.Equal(t, zerolog.DebugLevel, determineLogLevel())
}
