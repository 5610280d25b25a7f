package docx

// Image is one media asset found in the archive. ID is the
// archive-internal path (e.g. "word/media/image3.png"). Width and
// Height are pixels derived from the drawing extent; zero means the
// placement carried no size.
type Image struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// HighlightedSpan is one highlighted run of text. Color is the raw
// highlight value from the run formatting (a named token such as
// "yellow"), not normalized.
type HighlightedSpan struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Paragraph is one paragraph of the document, in document order.
// Text has each inline image replaced by a {{image:N}} placeholder;
// N is 1-based per paragraph and indexes into Images.
type Paragraph struct {
	Text        string            `json:"paragraph"`
	Highlighted []HighlightedSpan `json:"highlighted"`
	Images      []Image           `json:"images"`
}

// ExtractResult is the full output of one extraction. AllImages holds
// every media file found in the archive, referenced by a paragraph or
// not, in archive entry order.
type ExtractResult struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	AllImages  []Image     `json:"allImages"`
}

// runContentKind tags what a run resolved to.
type runContentKind int

const (
	runEmpty runContentKind = iota
	runLiteralText
	runImages
)

// runContent is the resolved payload of a single run: literal text,
// one or more placed images, or nothing. Resolving up front replaces
// the chained nil checks the OOXML drawing tree would otherwise force
// on the paragraph loop.
type runContent struct {
	kind   runContentKind
	text   string
	images []Image
}
