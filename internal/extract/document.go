package extract

import (
	"strings"
	"unicode"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"golang.org/x/text/unicode/norm"
)

const resultMarker = "resultado"

// Document is normalized report text split into non-blank lines. Offsets and
// positions refer to Text.
type Document struct {
	Text  string
	Lines []Line
}

// Line is one non-blank line with its folded form and knowledge matches.
type Line struct {
	Text    string
	Folded  string
	Offset  int
	offsets []int
	matches []knowledge.Match
	marker  bool
}

// NewDocument normalizes OCR text (NFKC, unified line endings, control
// characters dropped, whitespace collapsed per line) and resolves knowledge
// matches for every line.
func NewDocument(text string, base *knowledge.Base) *Document {
	s := norm.NFKC.String(text)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	doc := &Document{}
	var b strings.Builder
	for _, raw := range strings.Split(s, "\n") {
		clean := cleanLine(raw)
		if clean == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		folded, offsets := knowledge.FoldLine(clean)
		ln := Line{
			Text:    clean,
			Folded:  folded,
			Offset:  b.Len(),
			offsets: offsets,
			marker:  strings.Contains(folded, resultMarker),
		}
		if base != nil {
			ln.matches = base.Lookup(folded)
		}
		doc.Lines = append(doc.Lines, ln)
		b.WriteString(clean)
	}
	doc.Text = b.String()
	return doc
}

func cleanLine(raw string) string {
	raw = strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)
	return strings.Join(strings.Fields(raw), " ")
}

func (l Line) match(name string) (knowledge.Match, bool) {
	for _, m := range l.matches {
		if m.Entry.Name == name {
			return m, true
		}
	}
	return knowledge.Match{}, false
}

// textOffset maps a folded byte offset back to Text.
func (l Line) textOffset(folded int) int {
	if folded < 0 {
		return 0
	}
	if folded >= len(l.offsets) {
		return len(l.Text)
	}
	return l.offsets[folded]
}

// FoldedText joins the folded lines; used for keyword scans over the whole report.
func (d *Document) FoldedText() string {
	parts := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		parts[i] = l.Folded
	}
	return strings.Join(parts, "\n")
}
