package convert

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pdftools/internal/logger"
	"pdftools/internal/pdfpage"
)

// ToXLSX converts the PDF into a workbook with one sheet per page. Each
// text line becomes a row; spans within the line land in consecutive
// columns, which keeps simple tabular layouts usable.
func ToXLSX(inputPath, outputPath string, lineTolerance float64) error {
	pages, err := pdfpage.ExtractPages(inputPath, lineTolerance)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return ErrEmptyDocument
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, p := range pages {
		sheet := fmt.Sprintf("Page %d", p.Number)
		if p.Number == 1 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		for row, ln := range p.Lines {
			for col, span := range ln.Spans {
				cell, err := excelize.CoordinatesToCellName(col+1, row+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, span.Text); err != nil {
					return err
				}
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}

	log := logger.WithComponent("convert")
	log.Info().
		Str("output", outputPath).
		Int("pages", len(pages)).
		Msg("converted PDF to XLSX")
	return nil
}
