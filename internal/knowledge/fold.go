package knowledge

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the matching form of s: NFKC, diacritics stripped, lowercase,
// inner whitespace collapsed.
func Fold(s string) string {
	t := transform.Chain(norm.NFKC, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// FoldLine folds an already NFKC-normalized line rune by rune and returns a
// byte offset map: offsets[i] is the position in line of folded byte i, with
// one trailing entry for len(folded). Whitespace is not collapsed so distinct
// words stay distinct.
func FoldLine(line string) (string, []int) {
	var b strings.Builder
	b.Grow(len(line))
	offsets := make([]int, 0, len(line)+1)
	var buf [utf8.UTFMax]byte
	for i, r := range line {
		for _, d := range norm.NFD.String(string(r)) {
			if unicode.Is(unicode.Mn, d) {
				continue
			}
			n := utf8.EncodeRune(buf[:], unicode.ToLower(d))
			for k := 0; k < n; k++ {
				offsets = append(offsets, i)
			}
			b.Write(buf[:n])
		}
	}
	offsets = append(offsets, len(line))
	return b.String(), offsets
}

// joined reports whether a and b run together as one token: both letters or
// both digits. A letter next to a digit is a boundary so OCR text like
// "glicose95" still separates the key from its value.
func joined(a, b rune) bool {
	return (unicode.IsLetter(a) && unicode.IsLetter(b)) || (unicode.IsDigit(a) && unicode.IsDigit(b))
}

// ContainsWord reports whether key occurs in folded text at token boundaries.
func ContainsWord(folded, key string) bool {
	_, _, ok := indexWord(folded, key, 0)
	return ok
}

// indexWord finds the first occurrence of key in s at or after from whose
// edges do not run into the neighbouring text.
func indexWord(s, key string, from int) (int, int, bool) {
	if key == "" {
		return 0, 0, false
	}
	for from <= len(s)-len(key) {
		i := strings.Index(s[from:], key)
		if i < 0 {
			return 0, 0, false
		}
		start := from + i
		end := start + len(key)
		if boundaryBefore(s, key, start) && boundaryAfter(s, key, end) {
			return start, end, true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return 0, 0, false
}

func boundaryBefore(s, key string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	first, _ := utf8.DecodeRuneInString(key)
	return !joined(prev, first)
}

func boundaryAfter(s, key string, i int) bool {
	if i >= len(s) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(s[i:])
	last, _ := utf8.DecodeLastRuneInString(key)
	return !joined(last, next)
}
