package extract

import "github.com/KaramelBytes/labloom-cli/internal/knowledge"

// Aggregate groups parameters by category and computes statistics. Empty
// input yields zero counts and zero percentages.
func Aggregate(params []Parameter) (map[knowledge.Category][]Summary, Statistics) {
	cats := make(map[knowledge.Category][]Summary)
	stats := Statistics{
		TotalParameters: len(params),
		ByStatus:        make(map[Status]int),
		ByCategory:      make(map[knowledge.Category]int),
	}
	for _, p := range params {
		cats[p.Category] = append(cats[p.Category], Summary{
			Name:       p.Name,
			Value:      p.Value,
			Unit:       p.Unit,
			Status:     p.Status,
			Confidence: p.Confidence,
		})
		stats.ByStatus[p.Status]++
		stats.ByCategory[p.Category]++
	}
	if n := len(params); n > 0 {
		normal := stats.ByStatus[StatusNormal]
		altered := stats.ByStatus[StatusLow] + stats.ByStatus[StatusHigh]
		stats.NormalPercentage = roundTo(float64(normal)*100/float64(n), 1)
		stats.AlteredPercentage = roundTo(float64(altered)*100/float64(n), 1)
	}
	return cats, stats
}

func averageConfidence(params []Parameter) float64 {
	if len(params) == 0 {
		return 0
	}
	var sum float64
	for _, p := range params {
		sum += p.Confidence
	}
	return roundTo(sum/float64(len(params)), 2)
}
