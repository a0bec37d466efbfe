package parser

import (
	"regexp"
	"strings"
)

type markdownParser struct{}

func (markdownParser) CanParse(filename string) bool {
	return hasExt(filename, ".md", ".markdown")
}

var (
	mdHeading   = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	mdEmphasis  = regexp.MustCompile(`\*\*|__|` + "`")
	mdTableRule = regexp.MustCompile(`(?m)^[ \t]*\|?[ \t]*:?-{3,}:?[ \t]*(\|[ \t]*:?-{3,}:?[ \t]*)*\|?[ \t]*$`)
)

// Parse strips markdown decoration so tables and headings read as plain
// report lines: "| Glicose | 95 | mg/dL |" becomes "Glicose 95 mg/dL".
func (markdownParser) Parse(content []byte) (string, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = mdTableRule.ReplaceAllString(text, "")
	text = mdHeading.ReplaceAllString(text, "")
	text = mdEmphasis.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.Contains(l, "|") {
			cells := strings.Split(l, "|")
			var kept []string
			for _, c := range cells {
				if c = strings.TrimSpace(c); c != "" {
					kept = append(kept, c)
				}
			}
			lines[i] = strings.Join(kept, " ")
		}
	}
	text = strings.Join(lines, "\n")
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text, nil
}
