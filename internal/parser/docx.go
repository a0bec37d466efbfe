package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

type docxParser struct{}

func (docxParser) CanParse(filename string) bool {
	return hasExt(filename, ".docx")
}

var (
	docxBreak = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|</w:tr>`)
	docxCell  = regexp.MustCompile(`</w:tc>`)
	docxTag   = regexp.MustCompile(`<[^>]+>`)
)

// Parse extracts word/document.xml. Paragraphs and table rows become lines,
// table cells are separated by a space.
func (docxParser) Parse(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	docXML, err := readZipEntry(zr, "word/document.xml")
	if err != nil {
		return "", err
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("document.xml not found in DOCX: %w", ErrUnsupported)
	}
	text := docxBreak.ReplaceAllString(string(docXML), "\n")
	text = docxCell.ReplaceAllString(text, " ")
	text = docxTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.TrimSpace(text)
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text, nil
}

// readZipEntry returns the named entry, or nil when the archive lacks it.
func readZipEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		b, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return b, nil
	}
	return nil, nil
}
