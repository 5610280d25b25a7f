package docx

import (
	"errors"
	"fmt"
)

// ErrDocumentXMLNotFound reports an archive without a word/document.xml
// part. Check for it with errors.Is.
var ErrDocumentXMLNotFound = errors.New("document.xml not found")

// MalformedDocumentError is the only fatal error Extract returns: the
// input cannot be processed as a DOCX package at all. Per-asset and
// per-run problems never surface here; they degrade to warnings.
type MalformedDocumentError struct {
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed document: %s", e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}
