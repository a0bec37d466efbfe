package extract

import (
	"fmt"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
)

const allNormalInsight = "Todos os parâmetros analisados estão dentro da normalidade."

var categoryAdjective = map[knowledge.Category]string{
	knowledge.Hematology:    "hematológicas",
	knowledge.Biochemistry:  "bioquímicas",
	knowledge.Electrolytes:  "eletrolíticas",
	knowledge.Hormonal:      "hormonais",
	knowledge.Vitamins:      "vitamínicas",
	knowledge.Urinalysis:    "urinárias",
	knowledge.Microbiology:  "microbiológicas",
	knowledge.Inflammatory:  "inflamatórias",
	knowledge.OtherCategory: "diversas",
}

// Insights summarises altered parameters per category in category order.
func Insights(params []Parameter) []string {
	if len(params) == 0 {
		return nil
	}
	altered := make(map[knowledge.Category]int)
	for _, p := range params {
		if p.Status == StatusLow || p.Status == StatusHigh {
			altered[p.Category]++
		}
	}
	if len(altered) == 0 {
		return []string{allNormalInsight}
	}
	var out []string
	for _, c := range knowledge.Categories() {
		n := altered[c]
		if n == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("Alterações %s detectadas em %d parâmetro(s).", categoryAdjective[c], n))
	}
	return out
}
