package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"strings"
)

type xlsxParser struct{}

func (xlsxParser) CanParse(filename string) bool {
	return hasExt(filename, ".xlsx")
}

type xlsxWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

type xlsxRels struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xlsxShared struct {
	Items []xlsxText `xml:"si"`
}

// xlsxText covers plain <t> and rich-text runs <r><t>.
type xlsxText struct {
	T    string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (t xlsxText) String() string {
	if len(t.Runs) == 0 {
		return t.T
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.T)
	}
	return b.String()
}

type xlsxSheet struct {
	Rows []struct {
		Cells []struct {
			Ref    string   `xml:"r,attr"`
			Type   string   `xml:"t,attr"`
			Value  string   `xml:"v"`
			Inline xlsxText `xml:"is"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
}

// Parse reads the first worksheet; each row becomes one line.
func (xlsxParser) Parse(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	sheetPath, err := firstSheetPath(zr)
	if err != nil {
		return "", err
	}
	var shared xlsxShared
	if err := unmarshalZipEntry(zr, "xl/sharedStrings.xml", &shared); err != nil {
		return "", err
	}
	var sheet xlsxSheet
	raw, err := readZipEntry(zr, sheetPath)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", fmt.Errorf("worksheet %s not found: %w", sheetPath, ErrUnsupported)
	}
	if err := xml.Unmarshal(raw, &sheet); err != nil {
		return "", fmt.Errorf("parse %s: %w", sheetPath, err)
	}

	lines := make([]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			switch c.Type {
			case "s":
				i, err := strconv.Atoi(strings.TrimSpace(c.Value))
				if err == nil && i >= 0 && i < len(shared.Items) {
					cells = append(cells, shared.Items[i].String())
				}
			case "inlineStr":
				cells = append(cells, c.Inline.String())
			default:
				cells = append(cells, c.Value)
			}
		}
		lines = append(lines, joinCells(cells))
	}
	return strings.Join(lines, "\n"), nil
}

// firstSheetPath resolves the first sheet of the workbook through its
// relationships, falling back to the conventional sheet1 location.
func firstSheetPath(zr *zip.Reader) (string, error) {
	const fallback = "xl/worksheets/sheet1.xml"
	var wb xlsxWorkbook
	if err := unmarshalZipEntry(zr, "xl/workbook.xml", &wb); err != nil {
		return "", err
	}
	if len(wb.Sheets) == 0 {
		return fallback, nil
	}
	var rels xlsxRels
	if err := unmarshalZipEntry(zr, "xl/_rels/workbook.xml.rels", &rels); err != nil {
		return "", err
	}
	for _, r := range rels.Rels {
		if r.ID != wb.Sheets[0].RID {
			continue
		}
		target := strings.TrimPrefix(r.Target, "/")
		if !strings.HasPrefix(target, "xl/") {
			target = path.Join("xl", target)
		}
		return target, nil
	}
	return fallback, nil
}

// unmarshalZipEntry decodes an optional XML entry; a missing entry leaves v untouched.
func unmarshalZipEntry(zr *zip.Reader, name string, v any) error {
	raw, err := readZipEntry(zr, name)
	if err != nil || raw == nil {
		return err
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
