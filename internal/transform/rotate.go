package transform

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdftools/internal/logger"
)

// Rotate adds the given angle to the current rotation of the selected
// pages, or of every page when pages is empty. Page numbers are 0-indexed;
// negative entries are dropped. Only 90, 180 and 270 are accepted; pages
// already rotated keep their accumulated rotation, matching how viewers
// interpret the page /Rotate entry.
func Rotate(inputPath, outputPath string, degrees int, pages []int) error {
	if degrees != 90 && degrees != 180 && degrees != 270 {
		return fmt.Errorf("%w: got %d", ErrInvalidRotation, degrees)
	}

	selected, err := pageSelection(pages)
	if err != nil {
		return err
	}

	conf := newConf()
	if err := checkInput(inputPath, conf); err != nil {
		return err
	}

	if err := api.RotateFile(inputPath, outputPath, degrees, selected, conf); err != nil {
		return fmt.Errorf("rotating %s by %d: %w", inputPath, degrees, err)
	}

	log := logger.WithComponent("transform")
	log.Info().
		Str("output", outputPath).
		Int("degrees", degrees).
		Int("pages", len(pages)).
		Msg("rotated PDF")
	return nil
}

// pageSelection converts 0-indexed page numbers to the 1-based selection
// strings pdfcpu expects. nil means all pages.
func pageSelection(pages []int) ([]string, error) {
	if len(pages) == 0 {
		return nil, nil
	}
	var selected []string
	for _, p := range pages {
		if p < 0 {
			continue
		}
		selected = append(selected, strconv.Itoa(p+1))
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPages, pages)
	}
	return selected, nil
}
