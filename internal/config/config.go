package config

import (
	"fmt"
	"os"
	"strconv"

	"pdftools/internal/logger"
)

// Config carries process-wide defaults. Every value can be overridden
// through the environment (or a .env file loaded in main). The matcher
// thresholds are empirically tuned constants carried over from the
// previous implementation of these tools; they are exposed as settings
// rather than re-derived.
type Config struct {
	// Text replacement tuning
	SimilarityThreshold float64 // minimum Jaccard character similarity for a fuzzy match
	LineTolerance       float64 // vertical grouping band as a fraction of font size

	// OCR configuration
	OCRLanguage string // Tesseract language code, e.g. "eng"
	RenderDPI   int    // rasterization resolution for OCR and pptx conversion

	// Extraction defaults
	ExtractScale float64 // coordinate scale factor for extracted text positions

	// Logging configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		SimilarityThreshold: getFloat("PDFTOOLS_SIMILARITY_THRESHOLD", 0.8),
		LineTolerance:       getFloat("PDFTOOLS_LINE_TOLERANCE", 0.5),
		OCRLanguage:         getEnv("PDFTOOLS_OCR_LANGUAGE", "eng"),
		RenderDPI:           getInt("PDFTOOLS_RENDER_DPI", 300),
		ExtractScale:        getFloat("PDFTOOLS_EXTRACT_SCALE", 2.0),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:       getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:           getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("PDFTOOLS_SIMILARITY_THRESHOLD must be in (0,1], got %v", c.SimilarityThreshold)
	}
	if c.LineTolerance <= 0 {
		return fmt.Errorf("PDFTOOLS_LINE_TOLERANCE must be positive, got %v", c.LineTolerance)
	}
	if c.RenderDPI < 72 {
		return fmt.Errorf("PDFTOOLS_RENDER_DPI must be at least 72, got %d", c.RenderDPI)
	}
	if c.ExtractScale <= 0 {
		return fmt.Errorf("PDFTOOLS_EXTRACT_SCALE must be positive, got %v", c.ExtractScale)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
