package transform

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdftools/internal/logger"
)

// Compression levels. Low rewrites the cross reference and object streams
// only, medium also consolidates resource dictionaries, high additionally
// deduplicates identical content streams.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// CompressionStats reports the outcome of a compression run. Sizes are in
// bytes; CompressionRatio is the percentage saved relative to the original.
type CompressionStats struct {
	Success          bool    `json:"success"`
	OriginalSize     int64   `json:"original_size"`
	CompressedSize   int64   `json:"compressed_size"`
	CompressionRatio float64 `json:"compression_ratio"`
	SizeReduction    int64   `json:"size_reduction"`
}

// Compress optimizes the PDF at inputPath into outputPath at the given
// level. An empty level means medium. When the optimized file turns out
// larger than the original, the original is kept instead, so the output is
// never worse than the input.
func Compress(inputPath, outputPath, level string) (*CompressionStats, error) {
	log := logger.WithComponent("transform")
	if level == "" {
		level = LevelMedium
	}
	conf, err := compressionConf(level)
	if err != nil {
		return nil, err
	}
	if err := checkInput(inputPath, conf); err != nil {
		return nil, err
	}

	origSize, err := fileSize(inputPath)
	if err != nil {
		return nil, err
	}

	if err := api.OptimizeFile(inputPath, outputPath, conf); err != nil {
		return nil, fmt.Errorf("optimizing %s: %w", inputPath, err)
	}

	newSize, err := fileSize(outputPath)
	if err != nil {
		return nil, err
	}

	if newSize >= origSize {
		log.Debug().
			Int64("original", origSize).
			Int64("optimized", newSize).
			Msg("optimization did not shrink file, keeping original")
		if err := copyFile(inputPath, outputPath); err != nil {
			return nil, fmt.Errorf("restoring original: %w", err)
		}
		newSize = origSize
	}

	stats := &CompressionStats{
		Success:        true,
		OriginalSize:   origSize,
		CompressedSize: newSize,
		SizeReduction:  origSize - newSize,
	}
	if origSize > 0 {
		stats.CompressionRatio = float64(origSize-newSize) / float64(origSize) * 100
	}

	log.Info().
		Str("output", outputPath).
		Str("level", level).
		Int64("saved_bytes", stats.SizeReduction).
		Float64("ratio_pct", stats.CompressionRatio).
		Msg("compressed PDF")
	return stats, nil
}

func compressionConf(level string) (*model.Configuration, error) {
	conf := newConf()
	switch level {
	case LevelLow:
		conf.OptimizeResourceDicts = false
		conf.OptimizeDuplicateContentStreams = false
	case LevelMedium, "":
		conf.OptimizeResourceDicts = true
		conf.OptimizeDuplicateContentStreams = false
	case LevelHigh:
		conf.OptimizeResourceDicts = true
		conf.OptimizeDuplicateContentStreams = true
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLevel, level)
	}
	return conf, nil
}
