// Package docx extracts paragraph text, highlighted spans and embedded
// images from DOCX files. The input is a raw byte buffer; nothing is
// written to disk and no state survives a call.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	documentXMLPath = "word/document.xml"
	relsPath        = "word/_rels/document.xml.rels"

	// emuPerPixel converts drawing extents to pixels at 96 DPI.
	emuPerPixel = 9525
)

// Extractor parses DOCX byte buffers into structured paragraph records.
// It is stateless and safe for concurrent use.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor. A nil logger disables logging.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract parses a DOCX file into ordered paragraph records plus the
// full list of media assets found in the archive. The only fatal error
// is a *MalformedDocumentError (not a ZIP, or no word/document.xml);
// per-asset and per-run failures are logged and skipped.
func (e *Extractor) Extract(data []byte) (*ExtractResult, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "not a valid ZIP archive", Err: err}
	}

	docEntry := findEntry(archive, documentXMLPath)
	if docEntry == nil {
		return nil, &MalformedDocumentError{Reason: "no word/document.xml entry", Err: ErrDocumentXMLNotFound}
	}

	rels := e.parseRelationships(archive)
	allImages, mediaByPath := collectMediaAssets(archive, e.logger)

	docData, err := readZipFile(docEntry)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "failed to read word/document.xml", Err: err}
	}

	var doc wordDocument
	if err := xml.Unmarshal(docData, &doc); err != nil {
		return nil, &MalformedDocumentError{Reason: "word/document.xml is not well-formed XML", Err: err}
	}

	result := &ExtractResult{
		Paragraphs: []Paragraph{},
		AllImages:  allImages,
	}
	if doc.Body == nil {
		return result, nil
	}

	for i := range doc.Body.Paragraphs {
		result.Paragraphs = append(result.Paragraphs, e.extractParagraph(&doc.Body.Paragraphs[i], rels, mediaByPath))
	}

	return result, nil
}

// ExtractParagraphs runs the same extraction but returns only the
// paragraph records. Image resolution still happens internally so the
// placeholders in paragraph text stay populated.
func (e *Extractor) ExtractParagraphs(data []byte) ([]Paragraph, error) {
	result, err := e.Extract(data)
	if err != nil {
		return nil, err
	}
	return result.Paragraphs, nil
}

// parseRelationships builds the rel-id to media-target table from the
// relationships part, keeping only image relationships. A missing or
// unreadable part yields an empty table: media files are still
// collected, but no paragraph can resolve a placeholder.
func (e *Extractor) parseRelationships(archive *zip.Reader) map[string]string {
	table := make(map[string]string)

	entry := findEntry(archive, relsPath)
	if entry == nil {
		return table
	}

	data, err := readZipFile(entry)
	if err != nil {
		e.logger.Warn("failed to read relationships part", zap.Error(err))
		return table
	}

	var part relationshipsPart
	if err := xml.Unmarshal(data, &part); err != nil {
		e.logger.Warn("failed to parse relationships part", zap.Error(err))
		return table
	}

	for _, rel := range part.Items {
		if strings.Contains(rel.Type, "image") {
			table[rel.ID] = rel.Target
		}
	}

	return table
}

// extractParagraph walks the paragraph's runs in order, accumulating
// text fragments, highlighted spans and placed images. Placeholder
// numbering restarts at 1 for every paragraph.
func (e *Extractor) extractParagraph(p *paragraphElem, rels map[string]string, media map[string]Image) Paragraph {
	var fragments []string
	highlighted := []HighlightedSpan{}
	images := []Image{}

	for i := range p.Runs {
		run := &p.Runs[i]
		content := e.resolveRunContent(run, rels, media)

		switch content.kind {
		case runImages:
			for _, img := range content.images {
				fragments = append(fragments, fmt.Sprintf("{{image:%d}}", len(images)+1))
				images = append(images, img)
			}
		case runLiteralText:
			fragments = append(fragments, content.text)
		}

		// Highlight detection applies to literal run text only, even
		// when the run's text lost out to an image placeholder above.
		if text := literalRunText(run); text != "" {
			if color := highlightColor(run); color != "" {
				highlighted = append(highlighted, HighlightedSpan{Text: text, Color: color})
			}
		}
	}

	return Paragraph{
		Text:        strings.Join(fragments, ""),
		Highlighted: highlighted,
		Images:      images,
	}
}

// resolveRunContent classifies a run as images, literal text or empty.
// Image payloads win over text when a run somehow carries both.
func (e *Extractor) resolveRunContent(run *runElem, rels map[string]string, media map[string]Image) runContent {
	var images []Image

	for i := range run.Drawings {
		if img, ok := e.imageFromDrawing(&run.Drawings[i], rels, media); ok {
			images = append(images, img)
		}
	}
	for i := range run.Picts {
		if img, ok := e.imageFromPict(&run.Picts[i], rels, media); ok {
			images = append(images, img)
		}
	}

	if len(images) > 0 {
		return runContent{kind: runImages, images: images}
	}
	if text := literalRunText(run); text != "" {
		return runContent{kind: runLiteralText, text: text}
	}
	return runContent{kind: runEmpty}
}

// imageFromDrawing resolves a DrawingML drawing to its media asset.
// Any missing step in the navigation chain yields no image; only a rel
// id that points at a media file the archive does not contain is worth
// a warning. The returned Image is a copy, the extent dimensions never
// touch the document-level asset.
func (e *Extractor) imageFromDrawing(d *drawingElem, rels map[string]string, media map[string]Image) (Image, bool) {
	placement := d.Inline
	if placement == nil {
		placement = d.Anchor
	}
	if placement == nil || placement.Graphic == nil || placement.Graphic.Data == nil {
		return Image{}, false
	}

	pic := placement.Graphic.Data.Pic
	if pic == nil || pic.BlipFill == nil || pic.BlipFill.Blip == nil {
		return Image{}, false
	}

	embedID := pic.BlipFill.Blip.Embed
	if embedID == "" {
		return Image{}, false
	}

	target, ok := rels[embedID]
	if !ok {
		return Image{}, false
	}

	img, ok := media["word/"+target]
	if !ok {
		e.logger.Warn("drawing references unknown media file",
			zap.String("relId", embedID),
			zap.String("target", target))
		return Image{}, false
	}

	if placement.Extent != nil {
		if w, ok := emuToPixels(placement.Extent.CX); ok {
			img.Width = w
		}
		if h, ok := emuToPixels(placement.Extent.CY); ok {
			img.Height = h
		}
	}

	return img, true
}

// imageFromPict resolves a legacy VML picture. The rel id is looked up
// on the shape's imagedata child first, then on the shape itself, then
// on a bare imagedata element. No dimensions on this path.
func (e *Extractor) imageFromPict(p *pictElem, rels map[string]string, media map[string]Image) (Image, bool) {
	var relID string
	switch {
	case p.Shape != nil && p.Shape.ImageData != nil:
		relID = firstNonEmpty(p.Shape.ImageData.RelID, p.Shape.ImageData.ORelID)
	case p.Shape != nil:
		relID = firstNonEmpty(p.Shape.RelID, p.Shape.ORelID)
	case p.ImageData != nil:
		relID = firstNonEmpty(p.ImageData.RelID, p.ImageData.ORelID)
	}
	if relID == "" {
		return Image{}, false
	}

	target, ok := rels[relID]
	if !ok {
		return Image{}, false
	}

	img, ok := media["word/"+target]
	if !ok {
		e.logger.Warn("pict references unknown media file",
			zap.String("relId", relID),
			zap.String("target", target))
		return Image{}, false
	}

	return img, true
}

// literalRunText returns the w:t character data of a run, or the empty
// string when the run carries none. Tab and break runs contribute no
// text.
func literalRunText(run *runElem) string {
	if run.Text == nil {
		return ""
	}
	return run.Text.Text
}

func highlightColor(run *runElem) string {
	if run.Properties == nil || run.Properties.Highlight == nil {
		return ""
	}
	return run.Properties.Highlight.Val
}

func emuToPixels(raw string) (int, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(float64(v) / emuPerPixel)), true
}

func findEntry(archive *zip.Reader, name string) *zip.File {
	for _, file := range archive.File {
		if file.Name == name {
			return file
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
