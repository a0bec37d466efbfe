package knowledge

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeBetween = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:-|–|a|ate)\s*(\d+(?:[.,]\d+)?)`)
	rangeUpTo    = regexp.MustCompile(`(?:ate|inferior a|menor que|<)\s*(\d+(?:[.,]\d+)?)`)
	rangeAbove   = regexp.MustCompile(`(?:acima de|superior a|maior que|>)\s*(\d+(?:[.,]\d+)?)`)
)

// ParseRange reads reference text as printed on reports: "70 - 99", "70 a 99",
// "até 200" and "acima de 40".
func ParseRange(text string) (*Range, bool) {
	s := Fold(text)
	if m := rangeBetween.FindStringSubmatch(s); m != nil {
		lo, ok1 := parseDecimal(m[1])
		hi, ok2 := parseDecimal(m[2])
		if ok1 && ok2 && lo <= hi {
			return &Range{Min: lo, Max: hi}, true
		}
	}
	if m := rangeUpTo.FindStringSubmatch(s); m != nil {
		if hi, ok := parseDecimal(m[1]); ok {
			return &Range{Min: 0, Max: hi}, true
		}
	}
	if m := rangeAbove.FindStringSubmatch(s); m != nil {
		if lo, ok := parseDecimal(m[1]); ok {
			return &Range{Min: lo, Max: MaxValue}, true
		}
	}
	return nil, false
}

func parseDecimal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
