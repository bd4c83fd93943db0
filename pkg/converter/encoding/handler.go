// --- START OF FINAL REVISED FILE pkg/converter/encoding/handler.go ---
package encoding

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// utf8BOM is stripped from decoded text; the heuristics treat it as an ordinary rune otherwise.
const utf8BOM = "\uFEFF"

// EncodingHandler defines the interface for detecting the character encoding of a
// plain-text or Markdown source and converting it to UTF-8.
type EncodingHandler interface {
	// DetectAndDecode attempts to detect the encoding of the input content and convert
	// it to UTF-8. It returns the UTF-8 text, the detected encoding name (IANA name), a
	// boolean indicating if detection was certain, and any error encountered during
	// conversion. The configured default encoding is used only for content that is
	// neither BOM-marked nor valid UTF-8.
	DetectAndDecode(content []byte) (text string, detectedEncoding string, certainty bool, err error)
}

// goCharsetEncodingHandler implements EncodingHandler using golang.org/x/net/html/charset.
type goCharsetEncodingHandler struct {
	defaultEncoding string
}

// NewGoCharsetEncodingHandler creates a new encoding handler. defaultEncoding may be
// empty, in which case charset's own guess (windows-1252) is used for non-UTF-8 input.
func NewGoCharsetEncodingHandler(defaultEncoding string) EncodingHandler {
	return &goCharsetEncodingHandler{
		defaultEncoding: defaultEncoding,
	}
}

// DetectAndDecode implements the EncodingHandler interface.
func (h *goCharsetEncodingHandler) DetectAndDecode(content []byte) (string, string, bool, error) {
	if len(content) == 0 {
		return "", "utf-8", true, nil
	}

	enc, name, certain := charset.DetermineEncoding(content, "text/plain")

	// Without a BOM charset only sniffs the first 1024 bytes and honours <meta>
	// declarations, so its guess is ignored whenever the whole input is valid UTF-8.
	if !certain && utf8.Valid(content) {
		return stripBOM(string(content)), "utf-8", true, nil
	}

	if !certain && h.defaultEncoding != "" {
		if fallback, fallbackName := charset.Lookup(h.defaultEncoding); fallback != nil {
			enc, name, certain = fallback, fallbackName, true
		}
	}

	if enc == nil {
		return stripBOM(string(content)), "utf-8", certain, nil
	}

	reader := transform.NewReader(bytes.NewReader(content), enc.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		if name == "" {
			name = "unknown"
		}
		return string(content), name, certain, fmt.Errorf("failed to convert from '%s': %w", name, err)
	}
	return stripBOM(string(decoded)), name, certain, nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, utf8BOM)
}

// --- END OF FINAL REVISED FILE pkg/converter/encoding/handler.go ---
