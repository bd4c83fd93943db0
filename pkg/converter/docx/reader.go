// --- START OF FINAL REVISED FILE pkg/converter/docx/reader.go ---
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader extracts paragraph text from package containers on disk.
// The zero value is ready to use and safe for concurrent use.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ExtractParagraphs opens the container at path and returns the trimmed, non-empty
// text of every paragraph in document order.
func (r *Reader) ExtractParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer zr.Close()

	var mainPart *zip.File
	for _, f := range zr.File {
		if f.Name == MainPartName {
			mainPart = f
			break
		}
	}
	if mainPart == nil {
		return nil, fmt.Errorf("%w: %s: %s not found in archive", ErrUnreadable, path, MainPartName)
	}

	rc, err := mainPart.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: open %s: %w", ErrUnreadable, path, MainPartName, err)
	}
	defer rc.Close()

	paragraphs, err := ParseDocumentXML(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return paragraphs, nil
}

// ExtractText returns the paragraphs of the container at path joined by blank lines,
// with a trailing newline. A document without text yields "".
func (r *Reader) ExtractText(path string) (string, error) {
	paragraphs, err := r.ExtractParagraphs(path)
	if err != nil {
		return "", err
	}
	return JoinParagraphs(paragraphs), nil
}

// JoinParagraphs joins paragraphs with a blank line and terminates the result with a
// newline. No paragraphs means an empty string.
func JoinParagraphs(paragraphs []string) string {
	if len(paragraphs) == 0 {
		return ""
	}
	return strings.Join(paragraphs, "\n\n") + "\n"
}

// ParseDocumentXML walks a WordML main part and collects the text of the w:t
// elements beneath each w:p element. Paragraphs keep the order of their start tags;
// a paragraph nested inside another also contributes its text to the outer one.
// Content outside a single root element and element prefixes without a namespace
// declaration are rejected as malformed.
func ParseDocumentXML(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		collected []*strings.Builder // one per w:p, indexed by start order
		open      []int              // indices of currently open w:p elements
		textDepth int                // > 0 while inside a w:t element
		depth     int
		sawRoot   bool
		scopes    namespaceScopes
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, fmt.Errorf("%w: element <%s> after the root element", ErrMalformed, t.Name.Local)
			}
			sawRoot = true
			depth++
			scopes.push(t.Attr)
			if !scopes.bound(t.Name.Space) {
				return nil, fmt.Errorf("%w: undeclared namespace prefix %q on <%s>", ErrMalformed, t.Name.Space, t.Name.Local)
			}
			if t.Name.Space != WordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				collected = append(collected, &strings.Builder{})
				open = append(open, len(collected)-1)
			case "t":
				textDepth++
			}
		case xml.EndElement:
			depth--
			scopes.pop()
			if t.Name.Space != WordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "p":
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
			case "t":
				if textDepth > 0 {
					textDepth--
				}
			}
		case xml.CharData:
			if depth == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
				}
				continue
			}
			if textDepth == 0 {
				continue
			}
			for _, idx := range open {
				collected[idx].Write(t)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}

	paragraphs := make([]string, 0, len(collected))
	for _, b := range collected {
		if text := strings.TrimSpace(b.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs, nil
}

// xmlNamespaceURI is bound to the xml prefix without a declaration.
const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// namespaceScopes tracks the namespace URIs declared by the currently open elements.
// encoding/xml resolves a bound prefix to its URI and leaves an unbound one as the
// raw prefix, so a name space that no open element declared was never bound.
type namespaceScopes struct {
	declared map[string]int
	frames   [][]string
}

func (s *namespaceScopes) push(attrs []xml.Attr) {
	if s.declared == nil {
		s.declared = make(map[string]int)
	}
	var uris []string
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			uris = append(uris, a.Value)
			s.declared[a.Value]++
		}
	}
	s.frames = append(s.frames, uris)
}

func (s *namespaceScopes) pop() {
	if len(s.frames) == 0 {
		return
	}
	for _, uri := range s.frames[len(s.frames)-1] {
		s.declared[uri]--
	}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *namespaceScopes) bound(space string) bool {
	return space == "" || space == xmlNamespaceURI || s.declared[space] > 0
}

// --- END OF FINAL REVISED FILE pkg/converter/docx/reader.go ---
