// --- START OF FINAL REVISED FILE pkg/converter/docx/docx.go ---

// Package docx reads and writes the minimal subset of the Word-processor package
// format (a zip container of WordML parts) that the converter needs: paragraph text
// in, paragraph text out.
package docx

import "errors"

// Fixed part names and namespaces of the package format.
const (
	// MainPartName is the internal path of the main document part.
	MainPartName = "word/document.xml"
	// ContentTypesPartName declares the content types of every part.
	ContentTypesPartName = "[Content_Types].xml"
	// RootRelsPartName points the package root at the main part.
	RootRelsPartName = "_rels/.rels"
	// WordMLNamespace is the namespace of w:p, w:r and w:t elements.
	WordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

var (
	// ErrUnreadable indicates the file could not be opened as a zip container, or the
	// container has no main document part.
	ErrUnreadable = errors.New("unable to open or read package")

	// ErrMalformed indicates the main document part is not well-formed XML.
	ErrMalformed = errors.New("unable to parse package XML")

	// ErrWriteFailed indicates the container could not be assembled or written to disk.
	ErrWriteFailed = errors.New("failed to write package")
)

// --- END OF FINAL REVISED FILE pkg/converter/docx/docx.go ---
