package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	patientNamePattern = regexp.MustCompile(`(?i)\b(?:paciente|nome)\s*:?\s*([\p{L} ]+)`)
	agePatterns        = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bidade\s*:?\s*(\d{1,3})\b`),
		regexp.MustCompile(`(?i)\b(\d{1,3})\s*anos?\b`),
	}
	genderPattern    = regexp.MustCompile(`(?i)\b(?:sexo|g[êe]nero)\s*:?\s*(masculino|feminino|m|f)\b`)
	patientIDPattern = regexp.MustCompile(`(?i)\b(?:rg|cpf|id|registro)\b\s*:?\s*([0-9][0-9./-]*)`)

	labNamePattern     = regexp.MustCompile(`(?i)\b(?:laborat[óo]rio|lab\.?)\s*:?\s*([\p{L} &]+)`)
	responsiblePattern = regexp.MustCompile(`(?i)(?:\bm[ée]dico|\bdra?\b\.?|\brespons[áa]vel)\s*:?\s*([\p{L} .]+)`)
	datePattern        = regexp.MustCompile(`(?i)\b(?:data|realizado em|coletado em)\s*:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
)

// firstCapture returns the first group of the earliest line matching re.
func firstCapture(doc *Document, re *regexp.Regexp, accept func(string) bool) string {
	for _, ln := range doc.Lines {
		for _, m := range re.FindAllStringSubmatch(ln.Text, -1) {
			v := strings.TrimSpace(m[1])
			if accept == nil || accept(v) {
				return v
			}
		}
	}
	return ""
}

func extractPatient(doc *Document) *Patient {
	title := cases.Title(language.BrazilianPortuguese)
	p := &Patient{}
	if v := firstCapture(doc, patientNamePattern, func(s string) bool {
		return len(s) > 5 && len(strings.Fields(s)) >= 2
	}); v != "" {
		p.Name = title.String(strings.Join(strings.Fields(v), " "))
	}
	for _, re := range agePatterns {
		if v := firstCapture(doc, re, validAge); v != "" {
			p.Age = v
			break
		}
	}
	if v := firstCapture(doc, genderPattern, nil); v != "" {
		switch strings.ToLower(v) {
		case "m", "masculino":
			p.Gender = "masculino"
		default:
			p.Gender = "feminino"
		}
	}
	p.ID = firstCapture(doc, patientIDPattern, nil)
	if *p == (Patient{}) {
		return nil
	}
	return p
}

func validAge(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0 && n < 120
}

func extractLaboratory(doc *Document) *Laboratory {
	title := cases.Title(language.BrazilianPortuguese)
	l := &Laboratory{}
	if v := firstCapture(doc, labNamePattern, func(s string) bool { return len(s) > 3 }); v != "" {
		l.Name = title.String(strings.Join(strings.Fields(v), " "))
	}
	if v := firstCapture(doc, responsiblePattern, func(s string) bool { return len(s) > 5 }); v != "" {
		l.Responsible = title.String(strings.Join(strings.Fields(v), " "))
	}
	l.Date = firstCapture(doc, datePattern, nil)
	if *l == (Laboratory{}) {
		return nil
	}
	return l
}
