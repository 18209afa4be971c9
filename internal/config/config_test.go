package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.8, cfg.SimilarityThreshold)
	assert.Equal(t, 0.5, cfg.LineTolerance)
	assert.Equal(t, "eng", cfg.OCRLanguage)
	assert.Equal(t, 300, cfg.RenderDPI)
	assert.Equal(t, 2.0, cfg.ExtractScale)
	assert.Equal(t, "stderr", cfg.LogOutput)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PDFTOOLS_SIMILARITY_THRESHOLD", "0.9")
	t.Setenv("PDFTOOLS_OCR_LANGUAGE", "deu")
	t.Setenv("PDFTOOLS_RENDER_DPI", "150")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.SimilarityThreshold)
	assert.Equal(t, "deu", cfg.OCRLanguage)
	assert.Equal(t, 150, cfg.RenderDPI)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("PDFTOOLS_SIMILARITY_THRESHOLD", "1.5")

	_, err := Load()
	assert.ErrorContains(t, err, "PDFTOOLS_SIMILARITY_THRESHOLD")
}

func TestLoadRejectsLowDPI(t *testing.T) {
	t.Setenv("PDFTOOLS_RENDER_DPI", "10")

	_, err := Load()
	assert.ErrorContains(t, err, "PDFTOOLS_RENDER_DPI")
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("PDFTOOLS_LINE_TOLERANCE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.LineTolerance)
}

func TestGetLoggerConfig(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json", LogOutput: "stderr"}
	lc := cfg.GetLoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.Equal(t, "stderr", lc.Output)
}
