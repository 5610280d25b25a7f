package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/quizforge/docxtract/pkg/docx"
)

// WriteXLSX renders the result as a workbook with three sheets:
// Paragraphs, Highlights and Images. Image bytes are not embedded, only
// their inventory.
func WriteXLSX(w io.Writer, result *docx.ExtractResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Paragraphs"); err != nil {
		return fmt.Errorf("failed to create Paragraphs sheet: %w", err)
	}
	if _, err := f.NewSheet("Highlights"); err != nil {
		return fmt.Errorf("failed to create Highlights sheet: %w", err)
	}
	if _, err := f.NewSheet("Images"); err != nil {
		return fmt.Errorf("failed to create Images sheet: %w", err)
	}

	if err := setRow(f, "Paragraphs", 1, "#", "Text", "Highlights", "Images"); err != nil {
		return err
	}
	for i, p := range result.Paragraphs {
		if err := setRow(f, "Paragraphs", i+2, i+1, p.Text, len(p.Highlighted), len(p.Images)); err != nil {
			return err
		}
	}

	if err := setRow(f, "Highlights", 1, "Paragraph", "Text", "Color"); err != nil {
		return err
	}
	row := 2
	for i, p := range result.Paragraphs {
		for _, span := range p.Highlighted {
			if err := setRow(f, "Highlights", row, i+1, span.Text, span.Color); err != nil {
				return err
			}
			row++
		}
	}

	if err := setRow(f, "Images", 1, "Path", "Filename", "Content Type", "Size (bytes)", "Dimensions"); err != nil {
		return err
	}
	for i, img := range result.AllImages {
		if err := setRow(f, "Images", i+2, img.ID, img.Filename, img.ContentType, len(img.Data), formatDimensions(img)); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func formatDimensions(img docx.Image) string {
	if img.Width == 0 && img.Height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", img.Width, img.Height)
}
