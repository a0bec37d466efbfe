package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/labloom-cli/internal/extract"
	"github.com/KaramelBytes/labloom-cli/internal/history"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const glucoseReport = "Paciente: Maria da Silva\nGlicose: 95 mg/dL\nHemoglobina\nResultado: 14.2\n"

// resetFlags clears values and Changed state that persist across Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execCmd runs the root command with args and returns stdout and the error.
func execCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	cfg = nil
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetIn(nil)
	return out.String(), err
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execCmd(t, "", args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeReport(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return p
}

func TestCLI_ParseJSON(t *testing.T) {
	home := isolateHome(t)
	p := writeReport(t, home, "laudo.txt", glucoseReport)

	out := runCmd(t, "parse", p)
	var res extract.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.TotalParameters != 2 {
		t.Fatalf("expected 2 parameters, got %d: %s", res.TotalParameters, out)
	}
	byName := map[string]extract.Parameter{}
	for _, p := range res.Parameters {
		byName[p.Name] = p
	}
	if g := byName["Glicose"]; g.Value != 95 || g.Status != extract.StatusNormal {
		t.Fatalf("unexpected glucose: %+v", g)
	}
	if h := byName["Hemoglobina"]; h.Confidence < 0.85 {
		t.Fatalf("unexpected hemoglobin: %+v", h)
	}
	if res.Patient == nil || res.Patient.Name != "Maria Da Silva" {
		t.Fatalf("patient not extracted: %+v", res.Patient)
	}
}

func TestCLI_ParseStdinThresholdAndFormat(t *testing.T) {
	isolateHome(t)
	out, err := execCmd(t, glucoseReport, "parse", "-", "--threshold", "0.86", "--format", "markdown")
	if err != nil {
		t.Fatalf("parse stdin: %v", err)
	}
	if !strings.Contains(out, "[REPORT SUMMARY]") || !strings.Contains(out, "Hemoglobina") {
		t.Fatalf("unexpected markdown:\n%s", out)
	}
	if strings.Contains(out, "Glicose") {
		t.Fatalf("glucose (0.85) should be filtered at 0.86:\n%s", out)
	}

	if _, err := execCmd(t, glucoseReport, "parse", "-", "--threshold", "1.5"); err == nil {
		t.Fatal("expected error for threshold outside [0,1]")
	}
}

func TestCLI_ParseOutputFile(t *testing.T) {
	home := isolateHome(t)
	p := writeReport(t, home, "laudo.txt", glucoseReport)
	dest := filepath.Join(home, "out.json")
	if out := runCmd(t, "parse", p, "-o", dest); out != "" {
		t.Fatalf("stdout should be empty with --output, got %q", out)
	}
	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), `"name": "Glicose"`) {
		t.Fatalf("unexpected file content: %s", b)
	}
}

func TestCLI_SaveAndHistory(t *testing.T) {
	home := isolateHome(t)
	p := writeReport(t, home, "laudo.txt", glucoseReport)
	runCmd(t, "parse", p, "--save")

	store := history.NewStore(filepath.Join(home, ".labloom", "reports"))
	runs, err := store.List()
	if err != nil || len(runs) != 1 {
		t.Fatalf("runs=%v err=%v", runs, err)
	}
	id := runs[0].ID

	list := runCmd(t, "history", "list")
	if !strings.Contains(list, id) {
		t.Fatalf("history list missing %s:\n%s", id, list)
	}
	show := runCmd(t, "history", "show", id)
	if !strings.Contains(show, `"source": "`+p+`"`) {
		t.Fatalf("history show missing source:\n%s", show)
	}
	md := runCmd(t, "history", "show", id, "-f", "markdown")
	if !strings.Contains(md, "[PARAMETERS]") {
		t.Fatalf("history markdown:\n%s", md)
	}
	if _, err := execCmd(t, "", "history", "show", "00000000-0000-0000-0000-000000000000"); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestCLI_ParseBatch(t *testing.T) {
	home := isolateHome(t)
	writeReport(t, home, "d1/a.txt", "Glicose: 95 mg/dL")
	writeReport(t, home, "d2/b.txt", "TSH: 2.1\nUreia 30 mg/dL")
	writeReport(t, home, "d2/empty.txt", "")

	out := runCmd(t, "parse-batch", filepath.Join(home, "d*", "*.txt"), "--quiet", "--save")
	var lines []batchLine
	if err := json.Unmarshal([]byte(out), &lines); err != nil {
		t.Fatalf("decode batch output: %v\n%s", err, out)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Parameters != 1 || lines[1].Parameters != 2 || lines[2].Parameters != 0 {
		t.Fatalf("unexpected counts: %+v", lines)
	}
	for _, l := range lines {
		if l.RunID == "" || l.Error != "" {
			t.Fatalf("unexpected line: %+v", l)
		}
	}

	if _, err := execCmd(t, "", "parse-batch", filepath.Join(home, "nothing*.txt")); err != errNoInputs {
		t.Fatalf("expected errNoInputs, got %v", err)
	}
}

func TestCLI_KnowledgeBase(t *testing.T) {
	home := isolateHome(t)
	list := runCmd(t, "kb", "list", "-c", "hormonal")
	if !strings.Contains(list, "TSH") || strings.Contains(list, "Glicose") {
		t.Fatalf("unexpected kb list:\n%s", list)
	}
	show := runCmd(t, "kb", "show", "glicemia")
	if !strings.Contains(show, "name: Glicose") || !strings.Contains(show, "range: 70 - 99") {
		t.Fatalf("unexpected kb show:\n%s", show)
	}
	if _, err := execCmd(t, "", "kb", "show", "unobtainium"); err == nil {
		t.Fatal("expected unknown analyte error")
	}

	override := "entries:\n  - name: Lactato\n    keys: [lactate]\n    unit: mmol/L\n    category: bioquimica\n    reference: \"0,5 a 2,2\"\n"
	kf := writeReport(t, home, "kb.yaml", override)
	runCmd(t, "config", "set", "knowledge_file", kf)

	show = runCmd(t, "kb", "show", "lactate")
	if !strings.Contains(show, "range: 0.5 - 2.2") {
		t.Fatalf("override not applied:\n%s", show)
	}
	exported := runCmd(t, "kb", "export")
	if !strings.Contains(exported, "name: Lactato") || !strings.Contains(exported, "name: Glicose") {
		t.Fatalf("export missing entries:\n%s", exported)
	}

	p := writeReport(t, home, "laudo.txt", "Lactato: 1,8 mmol/L")
	out := runCmd(t, "parse", p)
	if !strings.Contains(out, `"name": "Lactato"`) {
		t.Fatalf("custom entry not extracted:\n%s", out)
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	isolateHome(t)
	runCmd(t, "config", "set", "confidence_threshold", "0.5")
	runCmd(t, "config", "set", "output_format", "markdown")
	show := runCmd(t, "config", "show")
	if !strings.Contains(show, "confidence_threshold: 0.5") || !strings.Contains(show, "output_format: markdown") {
		t.Fatalf("unexpected config show:\n%s", show)
	}
	if _, err := execCmd(t, "", "config", "set", "output_format", "pdf"); err == nil {
		t.Fatal("expected invalid output_format error")
	}
	if _, err := execCmd(t, "", "config", "set", "nope", "1"); err == nil {
		t.Fatal("expected unknown key error")
	}
}
