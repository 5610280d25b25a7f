package export

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/quizforge/docxtract/pkg/docx"
)

// WriteSummary prints a human-readable overview of the extraction:
// totals, per-color highlight counts and the image inventory.
func WriteSummary(w io.Writer, result *docx.ExtractResult) {
	title := color.New(color.FgCyan, color.Bold)

	highlightCount := 0
	placedImages := 0
	colorCounts := map[string]int{}
	var colorOrder []string
	for _, p := range result.Paragraphs {
		highlightCount += len(p.Highlighted)
		placedImages += len(p.Images)
		for _, span := range p.Highlighted {
			if _, seen := colorCounts[span.Color]; !seen {
				colorOrder = append(colorOrder, span.Color)
			}
			colorCounts[span.Color]++
		}
	}

	title.Fprintln(w, "Extraction Summary")
	overview := table.NewWriter()
	overview.SetOutputMirror(w)
	overview.SetStyle(table.StyleLight)
	overview.AppendRows([]table.Row{
		{"Paragraphs", len(result.Paragraphs)},
		{"Highlighted spans", highlightCount},
		{"Images placed in paragraphs", placedImages},
		{"Media files in archive", len(result.AllImages)},
	})
	overview.Render()

	if len(colorOrder) > 0 {
		fmt.Fprintln(w)
		title.Fprintln(w, "Highlights by Color")
		colors := table.NewWriter()
		colors.SetOutputMirror(w)
		colors.SetStyle(table.StyleLight)
		colors.AppendHeader(table.Row{"Color", "Spans"})
		for _, c := range colorOrder {
			colors.AppendRow(table.Row{c, colorCounts[c]})
		}
		colors.Render()
	}

	if len(result.AllImages) > 0 {
		fmt.Fprintln(w)
		title.Fprintln(w, "Images")
		images := table.NewWriter()
		images.SetOutputMirror(w)
		images.SetStyle(table.StyleLight)
		images.AppendHeader(table.Row{"Path", "Content Type", "Size", "Dimensions"})
		for _, img := range result.AllImages {
			images.AppendRow(table.Row{img.ID, img.ContentType, len(img.Data), formatDimensions(img)})
		}
		images.Render()
	}
}

// ProbeMissingDimensions fills in pixel sizes for media whose drawing
// markup carried no extent, by probing EMF/WMF headers. Raster assets
// without an extent keep zero dimensions.
func ProbeMissingDimensions(result *docx.ExtractResult) {
	probe := func(images []docx.Image) {
		for i := range images {
			if images[i].Width != 0 || images[i].Height != 0 {
				continue
			}
			if w, h, ok := docx.ProbeDimensions(images[i].Data); ok {
				images[i].Width = w
				images[i].Height = h
			}
		}
	}
	probe(result.AllImages)
	for i := range result.Paragraphs {
		probe(result.Paragraphs[i].Images)
	}
}
