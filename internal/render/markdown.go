package render

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/labloom-cli/internal/extract"
	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
)

// Markdown renders a parse result as a sectioned plain-text report.
func Markdown(res *extract.Result, name string) string {
	var b strings.Builder
	b.WriteString("[REPORT SUMMARY]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	if res.ExamType != "" {
		b.WriteString(fmt.Sprintf("Exam type: %s\n", res.ExamType))
	}
	b.WriteString(fmt.Sprintf("Parameters: %d (normal %.1f%%, altered %.1f%%)\n",
		res.TotalParameters, res.Statistics.NormalPercentage, res.Statistics.AlteredPercentage))
	b.WriteString(fmt.Sprintf("Average confidence: %.2f\n", res.ConfidenceAvg))

	if p := res.Patient; p != nil {
		b.WriteString("\n[PATIENT]\n")
		writeField(&b, "Name", p.Name)
		writeField(&b, "Age", p.Age)
		writeField(&b, "Gender", p.Gender)
		writeField(&b, "ID", p.ID)
	}
	if l := res.Laboratory; l != nil {
		b.WriteString("\n[LABORATORY]\n")
		writeField(&b, "Name", l.Name)
		writeField(&b, "Responsible", l.Responsible)
		writeField(&b, "Date", l.Date)
	}

	b.WriteString("\n[PARAMETERS]\n")
	if len(res.Parameters) == 0 {
		b.WriteString("No parameters found.\n")
	}
	for _, c := range knowledge.Categories() {
		items := res.Categories[c]
		if len(items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s:\n", c))
		for _, s := range items {
			b.WriteString(fmt.Sprintf("- %s: %s", s.Name, formatValue(s.Value)))
			if s.Unit != "" {
				b.WriteString(" " + s.Unit)
			}
			b.WriteString(fmt.Sprintf(" [%s] (confidence %.2f)\n", s.Status, s.Confidence))
		}
	}

	if len(res.Insights) > 0 {
		b.WriteString("\n[INSIGHTS]\n")
		for _, in := range res.Insights {
			b.WriteString("- " + in + "\n")
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, v string) {
	if v != "" {
		b.WriteString(fmt.Sprintf("%s: %s\n", label, v))
	}
}

func formatValue(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
