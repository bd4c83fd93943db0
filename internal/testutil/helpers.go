// --- START OF FINAL REVISED FILE internal/testutil/helpers.go ---
package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WordMLNamespace duplicates the docx package constant so fixtures stay independent
// of the code under test.
const WordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// CreateDummyFile creates a dummy file with specified content at the given path,
// ensuring parent directories exist. It uses require assertions for test setup.
func CreateDummyFile(t *testing.T, path string, content string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	dir := filepath.Dir(fullPath)
	err := os.MkdirAll(dir, 0755)
	require.NoError(t, err, "Failed to create directory %s for dummy file", dir)
	err = os.WriteFile(fullPath, []byte(content), 0644)
	require.NoError(t, err, "Failed to write dummy file %s", fullPath)
}

// ReadFile returns the content of path as a string, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read %s", path)
	return string(data)
}

// CreateDummyDir ensures a directory exists at the given path, creating parents if needed.
func CreateDummyDir(t *testing.T, path string) {
	t.Helper()
	fullPath := filepath.Clean(path)
	err := os.MkdirAll(fullPath, 0755)
	require.NoError(t, err, "Failed to create dummy directory %s", fullPath)
}

// CreateZipFixture writes a zip archive at path holding the given entries verbatim.
// Entry order follows the names slice so fixtures are deterministic.
func CreateZipFixture(t *testing.T, path string, names []string, contents map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err, "Failed to create zip entry %s", name)
		_, err = w.Write([]byte(contents[name]))
		require.NoError(t, err, "Failed to write zip entry %s", name)
	}
	require.NoError(t, zw.Close(), "Failed to finalize zip fixture")
	CreateDummyFile(t, path, buf.String())
}

// DocumentXMLFixture renders a WordML main part with one w:p per paragraph. Each
// paragraph's text is split across two runs to exercise run concatenation.
func DocumentXMLFixture(paragraphs []string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="` + WordMLNamespace + `"><w:body>`)
	for _, p := range paragraphs {
		half := len(p) / 2
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr>`)
		sb.WriteString(`<w:r><w:t xml:space="preserve">` + escapeXML(p[:half]) + `</w:t></w:r>`)
		sb.WriteString(`<w:r><w:t xml:space="preserve">` + escapeXML(p[half:]) + `</w:t></w:r>`)
		sb.WriteString(`</w:p>`)
	}
	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

// CreateDocxFixture writes a package container at path whose main part holds the
// given paragraphs. Paragraphs must be ASCII so the run split stays on rune boundaries.
func CreateDocxFixture(t *testing.T, path string, paragraphs []string) {
	t.Helper()
	CreateZipFixture(t, path, []string{"word/document.xml"}, map[string]string{
		"word/document.xml": DocumentXMLFixture(paragraphs),
	})
}

// ReadZipEntries returns the entry names of the zip archive at path (in archive order)
// and a map of their contents.
func ReadZipEntries(t *testing.T, path string) ([]string, map[string]string) {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err, "Failed to open zip %s", path)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	contents := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		names = append(names, f.Name)
		contents[f.Name] = buf.String()
	}
	return names, contents
}

func escapeXML(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

// --- END OF FINAL REVISED FILE internal/testutil/helpers.go ---
