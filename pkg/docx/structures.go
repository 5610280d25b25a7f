package docx

import (
	"encoding/xml"
)

// OOXML namespaces used when matching namespaced attributes.
const (
	WordprocessingMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	RelationshipsNamespace    = "http://schemas.openxmlformats.org/package/2006/relationships"
	OfficeRelNamespace        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	VMLOfficeNamespace        = "urn:schemas-microsoft-com:office:office"
)

// wordDocument represents the word/document.xml structure.
type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    *docBody `xml:"body"`
}

type docBody struct {
	Paragraphs []paragraphElem `xml:"p"`
}

type paragraphElem struct {
	XMLName xml.Name  `xml:"p"`
	Runs    []runElem `xml:"r"`
}

// runElem is a single w:r element. A run carries at most one kind of
// payload we care about: literal w:t text, a DrawingML drawing or a
// legacy VML picture. Tabs, breaks and other run children are ignored.
type runElem struct {
	XMLName    xml.Name      `xml:"r"`
	Properties *runProps     `xml:"rPr"`
	Text       *runText      `xml:"t"`
	Drawings   []drawingElem `xml:"drawing"`
	Picts      []pictElem    `xml:"pict"`
}

type runProps struct {
	Highlight *highlightProp `xml:"highlight"`
}

type highlightProp struct {
	Val string `xml:"val,attr"`
}

type runText struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"http://www.w3.org/XML/1998/namespace space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

// drawingElem is the modern DrawingML image container. The embedded
// picture sits at the end of the chain
// inline-or-anchor > graphic > graphicData > pic > blipFill > blip.
type drawingElem struct {
	XMLName xml.Name          `xml:"drawing"`
	Inline  *drawingPlacement `xml:"inline"`
	Anchor  *drawingPlacement `xml:"anchor"`
}

type drawingPlacement struct {
	Extent  *drawingExtent `xml:"extent"`
	Graphic *graphicElem   `xml:"graphic"`
}

// drawingExtent carries the placement size in EMU. The attribute values
// are kept as strings; malformed numbers must not fail document parsing.
type drawingExtent struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

type graphicElem struct {
	Data *graphicData `xml:"graphicData"`
}

type graphicData struct {
	Pic *picElem `xml:"pic"`
}

type picElem struct {
	BlipFill *blipFill `xml:"blipFill"`
}

type blipFill struct {
	Blip *blipElem `xml:"blip"`
}

type blipElem struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

// pictElem is the legacy VML picture container. The relationship id
// lives on the imagedata element, or directly on the shape when no
// imagedata child exists. Namespaced attribute matching keeps the
// shape's own plain id attribute from being mistaken for a rel id.
type pictElem struct {
	XMLName   xml.Name      `xml:"pict"`
	Shape     *vmlShape     `xml:"shape"`
	ImageData *vmlImageData `xml:"imagedata"`
}

type vmlShape struct {
	RelID     string        `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	ORelID    string        `xml:"urn:schemas-microsoft-com:office:office relid,attr"`
	ImageData *vmlImageData `xml:"imagedata"`
}

type vmlImageData struct {
	RelID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	ORelID string `xml:"urn:schemas-microsoft-com:office:office relid,attr"`
}

// relationshipsPart represents word/_rels/document.xml.rels.
type relationshipsPart struct {
	XMLName xml.Name       `xml:"Relationships"`
	Items   []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
