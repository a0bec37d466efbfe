package extract

import "github.com/KaramelBytes/labloom-cli/internal/knowledge"

// GeneralExam is reported when no exam family keyword is present.
const GeneralExam = "geral"

type examFamily struct {
	name     string
	keywords []string
}

// Checked in order; the first family with a keyword in the report wins.
var examFamilies = []examFamily{
	{"hemograma", []string{"hemograma", "sangue completo", "hematologia"}},
	{"bioquimica", []string{"bioquimica", "bioquimico", "glicose", "colesterol"}},
	{"hormonal", []string{"hormonal", "tsh", "t3", "t4", "cortisol"}},
	{"urina", []string{"urina", "eas", "urinalise"}},
	{"lipidograma", []string{"lipidograma", "perfil lipidico", "colesterol"}},
	{"funcao_renal", []string{"funcao renal", "creatinina", "ureia"}},
	{"funcao_hepatica", []string{"funcao hepatica", "alt", "ast", "bilirrubina"}},
	{"eletrolitos", []string{"eletrolitos", "sodio", "potassio"}},
	{"vitaminas", []string{"vitamina", "vitaminas", "b12", "acido folico"}},
}

// examType names the exam family of a report. An empty document has none.
func examType(doc *Document) string {
	if len(doc.Lines) == 0 {
		return ""
	}
	folded := doc.FoldedText()
	for _, f := range examFamilies {
		for _, k := range f.keywords {
			if knowledge.ContainsWord(folded, k) {
				return f.name
			}
		}
	}
	return GeneralExam
}
