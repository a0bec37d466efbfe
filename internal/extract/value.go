package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxReading is the largest value accepted from a report line.
const maxReading = 999999

const numberPattern = `\d+(?:[.,]\d+)?`

// Longest alternatives first so "pg/mL" wins over "pg".
var knownUnits = []string{
	"mcg/dL", "mEq/L", "mUI/L", "pg/mL", "ng/mL", "ng/dL", "mg/dL", "g/dL",
	"/mm³", "/mm3", "U/L", "fL", "pg", "%",
}

var (
	bareNumber    = regexp.MustCompile(numberPattern)
	markerNumber  = regexp.MustCompile(`(?i)resultado\s*:?\s*(` + numberPattern + `)`)
	unitNumber    = regexp.MustCompile(`(?i)(` + numberPattern + `)\s*(` + unitAlternation() + `)`)
	groupedDigits = regexp.MustCompile(`^\d{1,3}[.,]\d{3}$`)
)

func unitAlternation() string {
	parts := make([]string, len(knownUnits))
	for i, u := range knownUnits {
		parts[i] = regexp.QuoteMeta(u)
	}
	return strings.Join(parts, "|")
}

// reading is a located number. Start and End delimit the digits in the
// searched string. Grouped holds the thousands reading of "280.000" style
// tokens when HasGrouped is set.
type reading struct {
	Value      float64
	Grouped    float64
	HasGrouped bool
	Unit       string
	Start, End int
}

// ExtractValue returns the best numeric candidate on a line.
func ExtractValue(line string) (float64, bool) {
	r, ok := locate(line)
	if !ok {
		return 0, false
	}
	return r.Value, true
}

// locate applies the bare, "resultado" and number+unit patterns in that
// order. The first pattern that matches decides; an unusable number there
// means the line has no value.
func locate(s string) (reading, bool) {
	if loc := firstBare(s); loc != nil {
		return newReading(s, loc[0], loc[1])
	}
	if m := markerNumber.FindStringSubmatchIndex(s); m != nil {
		return newReading(s, m[2], m[3])
	}
	for _, m := range unitNumber.FindAllStringSubmatchIndex(s, -1) {
		if !unitEndsWord(s, m[5]) {
			continue
		}
		return newReading(s, m[2], m[3])
	}
	return reading{}, false
}

// firstBare returns the first number not glued to a preceding word. The
// match is greedy, so a unit written without a space ("14.2g/dL") keeps the
// decimals.
func firstBare(s string) []int {
	for _, loc := range bareNumber.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			r, _ := utf8.DecodeLastRuneInString(s[:loc[0]])
			if unicode.IsLetter(r) || r == '_' {
				continue
			}
		}
		return loc
	}
	return nil
}

func newReading(s string, start, end int) (reading, bool) {
	raw := s[start:end]
	v, ok := parseReading(raw)
	if !ok {
		return reading{}, false
	}
	r := reading{Value: v, Start: start, End: end, Unit: unitAfter(s, end)}
	if groupedDigits.MatchString(raw) {
		if g, ok := parseReading(strings.NewReplacer(".", "", ",", "").Replace(raw)); ok {
			r.Grouped, r.HasGrouped = g, true
		}
	}
	return r, true
}

func parseReading(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || v < 0 || v > maxReading {
		return 0, false
	}
	return v, true
}

// unitAfter returns the canonical spelling of a known unit following the
// number at end, or "".
func unitAfter(s string, end int) string {
	rest := strings.TrimLeft(s[end:], " \t")
	lower := strings.ToLower(rest)
	for _, u := range knownUnits {
		if !strings.HasPrefix(lower, strings.ToLower(u)) {
			continue
		}
		if !unitEndsWord(rest, len(u)) {
			continue
		}
		if u == "/mm3" {
			return "/mm³"
		}
		return u
	}
	return ""
}

func unitEndsWord(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r)
}
