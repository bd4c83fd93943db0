// --- START OF FINAL REVISED FILE pkg/converter/docx/writer.go ---
package docx

import (
	"archive/zip"
	"bytes"
	_ "embed" // Required for //go:embed
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"

	"github.com/stackvity/sovereign-doc/pkg/converter/heuristics"
	"github.com/stackvity/sovereign-doc/pkg/util"
)

//go:embed parts/content_types.xml
var contentTypesXML []byte

//go:embed parts/rels.xml
var rootRelsXML []byte

// wordDocument mirrors the smallest WordML main part Word will open:
// w:document > w:body > (w:p > w:r > w:t)*.
type wordDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XMLNSW  string   `xml:"xmlns:w,attr"`
	Body    wordBody `xml:"w:body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"w:p"`
}

type wordParagraph struct {
	Run wordRun `xml:"w:r"`
}

type wordRun struct {
	Text string `xml:"w:t"`
}

// Writer assembles minimal package containers from paragraph text.
// The zero value is ready to use and safe for concurrent use.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// ParagraphsFromText splits text on blank lines, trims and drops empty blocks.
// At least one (possibly empty) paragraph is always returned so the main part is
// never structurally empty.
func ParagraphsFromText(text string) []string {
	paragraphs := heuristics.SplitParagraphs(text)
	if len(paragraphs) == 0 {
		return []string{""}
	}
	return paragraphs
}

// DocumentXML renders the main document part for the given paragraphs.
// Text is escaped by the XML encoder only.
func DocumentXML(paragraphs []string) ([]byte, error) {
	doc := wordDocument{XMLNSW: WordMLNamespace}
	doc.Body.Paragraphs = make([]wordParagraph, len(paragraphs))
	for i, p := range paragraphs {
		doc.Body.Paragraphs[i] = wordParagraph{Run: wordRun{Text: p}}
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", MainPartName, err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	return append(out, body...), nil
}

// Build assembles a container holding exactly three entries: the content-types
// declaration, the root relationships part and the main document part.
func (w *Writer) Build(paragraphs []string) ([]byte, error) {
	if len(paragraphs) == 0 {
		paragraphs = []string{""}
	}
	documentXML, err := DocumentXML(paragraphs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	entries := []struct {
		name string
		data []byte
	}{
		{ContentTypesPartName, contentTypesXML},
		{RootRelsPartName, rootRelsXML},
		{MainPartName, documentXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", ErrWriteFailed, e.name, err)
		}
		if _, err := fw.Write(e.data); err != nil {
			return nil, fmt.Errorf("%w: write %s: %w", ErrWriteFailed, e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize archive: %w", ErrWriteFailed, err)
	}
	return buf.Bytes(), nil
}

// BuildFromText is Build over ParagraphsFromText(text).
func (w *Writer) BuildFromText(text string) ([]byte, error) {
	return w.Build(ParagraphsFromText(text))
}

// WriteFile builds a container from text and writes it to path. The file is created
// exclusively: an existing file at path is never overwritten, and a partially written
// file is removed.
func (w *Writer) WriteFile(path, text string) error {
	data, err := w.BuildFromText(text)
	if err != nil {
		return err
	}
	if err := util.CreateExclusive(path, data); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s already exists: %w", ErrWriteFailed, path, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// --- END OF FINAL REVISED FILE pkg/converter/docx/writer.go ---
