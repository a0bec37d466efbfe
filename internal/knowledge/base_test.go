package knowledge

import (
	"errors"
	"strings"
	"testing"
)

func TestFold(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Sódio", "sodio"},
		{"  HEMATÓCRITO  ", "hematocrito"},
		{"Ácido   Fólico", "acido folico"},
		{"Plaquetas /mm³", "plaquetas /mm3"},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldLineOffsets(t *testing.T) {
	line := "Sódio: 140"
	folded, offsets := FoldLine(line)
	if folded != "sodio: 140" {
		t.Fatalf("folded = %q", folded)
	}
	if len(offsets) != len(folded)+1 {
		t.Fatalf("offsets len = %d, want %d", len(offsets), len(folded)+1)
	}
	i := strings.Index(folded, "140")
	if got := line[offsets[i]:]; got != "140" {
		t.Fatalf("mapped tail = %q", got)
	}
}

func TestLookupAliasesCollapseToOneEntry(t *testing.T) {
	b := Default()
	got := b.Lookup(Fold("Sódio (Na): 140 mEq/L"))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(got), got)
	}
	if got[0].Entry.Name != "Sódio" {
		t.Fatalf("unexpected entry %q", got[0].Entry.Name)
	}
}

func TestLookupAmbiguousKeyYieldsBothEntries(t *testing.T) {
	b := Default()
	got := b.Lookup(Fold("TG: 120"))
	names := map[string]bool{}
	for _, m := range got {
		names[m.Entry.Name] = true
	}
	if !names["Triglicerídeos"] || !names["Tireoglobulina"] {
		t.Fatalf("expected both tg owners, got %+v", names)
	}
}

func TestLookupRespectsWordBoundaries(t *testing.T) {
	b := Default()
	for _, line := range []string{"Creatinina 0,9", "hemoglobina 14"} {
		for _, m := range b.Lookup(Fold(line)) {
			if m.Entry.Name == "Sódio" {
				t.Fatalf("%q must not match Sódio via %q", line, m.Key)
			}
		}
	}
}

func TestLookupKeyGluedToValue(t *testing.T) {
	b := Default()
	cases := map[string]string{
		"Glicose95 mg/dL": "Glicose",
		"Hemoglobina14,2": "Hemoglobina",
		"HbA1c6,1%":       "Hemoglobina Glicada",
	}
	for line, want := range cases {
		got := b.Lookup(Fold(line))
		if len(got) != 1 || got[0].Entry.Name != want {
			t.Errorf("Lookup(%q) = %+v; want only %s", line, got, want)
		}
	}
	if got := b.Lookup(Fold("glicosemia")); len(got) != 0 {
		t.Errorf("letters glued to a key must not match: %+v", got)
	}
}

func TestLookupLongerKeyShadowsNestedKey(t *testing.T) {
	b := Default()
	got := b.Lookup(Fold("Hemoglobina glicada: 5,4 %"))
	if len(got) != 1 || got[0].Entry.Name != "Hemoglobina Glicada" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestAmbiguousReportsSharedKeys(t *testing.T) {
	amb := Default().Ambiguous()
	found := false
	for _, a := range amb {
		if a.Key == "tg" {
			found = len(a.Names) == 2
		}
	}
	if !found {
		t.Fatalf("expected tg to be reported as ambiguous, got %+v", amb)
	}
}

func TestNewRejectsMalformedEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
	}{
		{"empty name", []Entry{{Name: " "}}},
		{"min over max", []Entry{{Name: "X", Range: &Range{Min: 10, Max: 1}}}},
		{"bad category", []Entry{{Name: "X", Category: "nope"}}},
		{"duplicate", []Entry{{Name: "Glicose"}, {Name: "glicose"}}},
	}
	for _, c := range cases {
		_, err := New(c.entries)
		var ee *EntryError
		if !errors.As(err, &ee) {
			t.Errorf("%s: expected EntryError, got %v", c.name, err)
		}
	}
}

func TestWithReplacesAndAppends(t *testing.T) {
	base := Default()
	n := base.Len()
	b, err := base.With(
		Entry{Name: "Glicose", Keys: []string{"glu"}, Unit: "mg/dL", Category: Biochemistry, Range: &Range{Min: 60, Max: 100}},
		Entry{Name: "Lactato", Unit: "mmol/L", Category: Biochemistry, Range: &Range{Min: 0.5, Max: 2.2}},
	)
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	if b.Len() != n+1 {
		t.Fatalf("len = %d, want %d", b.Len(), n+1)
	}
	g, ok := b.Find("glu")
	if !ok || g.Range.Min != 60 {
		t.Fatalf("replacement not applied: %+v", g)
	}
	if orig, _ := base.Find("Glicose"); orig.Range.Min != 70 {
		t.Fatalf("receiver was modified: %+v", orig)
	}
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		in       string
		min, max float64
		ok       bool
	}{
		{"70 - 99", 70, 99, true},
		{"12,0 a 16,0", 12, 16, true},
		{"até 200", 0, 200, true},
		{"Acima de 40", 40, MaxValue, true},
		{"negativo", 0, 0, false},
	}
	for _, c := range cases {
		r, ok := ParseRange(c.in)
		if ok != c.ok {
			t.Errorf("%q: ok=%v want %v", c.in, ok, c.ok)
			continue
		}
		if ok && (r.Min != c.min || r.Max != c.max) {
			t.Errorf("%q: got %+v", c.in, r)
		}
	}
}

func TestDecodeAndExport(t *testing.T) {
	src := `entries:
  - name: Lactato
    keys: [lactato sérico]
    unit: mmol/L
    category: Bioquímica
    reference: "0,5 a 2,2"
`
	entries, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Category != Biochemistry || entries[0].Range.Max != 2.2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	b, err := New(entries)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var sb strings.Builder
	if err := Export(&sb, b); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(sb.String(), "name: Lactato") {
		t.Fatalf("export missing entry:\n%s", sb.String())
	}
}
