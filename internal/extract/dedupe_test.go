package extract

import (
	"testing"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(name string, v, conf float64, text string) Parameter {
	return Parameter{Name: name, Value: v, Confidence: conf, OriginalText: text, Status: StatusNormal, Category: knowledge.Biochemistry}
}

func TestDedupeKeepsHighestConfidence(t *testing.T) {
	in := []Parameter{
		param("Glicose", 95, 0.7, "a"),
		param("glicose", 95.04, 0.9, "b"),
		param("Glicose", 94.96, 0.9, "c"),
		param("Ureia", 30, 0.8, "d"),
		param("Glicose", 110, 0.8, "e"),
	}
	got := Dedupe(in)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].OriginalText, "first of the tied highest wins")
	assert.Equal(t, "d", got[1].OriginalText)
	assert.Equal(t, "e", got[2].OriginalText)
	assert.Equal(t, 0.7, in[0].Confidence, "input is not modified")
}

func TestDedupeEmpty(t *testing.T) {
	got := Dedupe(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByConfidenceIsInclusive(t *testing.T) {
	in := []Parameter{param("A", 1, 0.3, ""), param("B", 1, 0.29, ""), param("C", 1, 0.9, "")}
	got := FilterByConfidence(in, 0.3)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}

func TestAggregate(t *testing.T) {
	params := []Parameter{
		{Name: "Glicose", Value: 95, Unit: "mg/dL", Status: StatusNormal, Category: knowledge.Biochemistry, Confidence: 0.85},
		{Name: "Ureia", Value: 60, Unit: "mg/dL", Status: StatusHigh, Category: knowledge.Biochemistry, Confidence: 0.8},
		{Name: "Nitrito", Value: 1, Status: StatusIndeterminate, Category: knowledge.Urinalysis, Confidence: 0.8},
	}
	cats, stats := Aggregate(params)
	require.Len(t, cats[knowledge.Biochemistry], 2)
	assert.Equal(t, Summary{Name: "Glicose", Value: 95, Unit: "mg/dL", Status: StatusNormal, Confidence: 0.85}, cats[knowledge.Biochemistry][0])
	assert.Equal(t, 3, stats.TotalParameters)
	assert.Equal(t, map[Status]int{StatusNormal: 1, StatusHigh: 1, StatusIndeterminate: 1}, stats.ByStatus)
	assert.Equal(t, 2, stats.ByCategory[knowledge.Biochemistry])
	assert.Equal(t, 33.3, stats.NormalPercentage)
	assert.Equal(t, 33.3, stats.AlteredPercentage)
	assert.Equal(t, 0.82, averageConfidence(params))
}

func TestAggregateEmpty(t *testing.T) {
	cats, stats := Aggregate(nil)
	assert.NotNil(t, cats)
	assert.Equal(t, 0, stats.TotalParameters)
	assert.Zero(t, stats.NormalPercentage)
	assert.Zero(t, stats.AlteredPercentage)
	assert.NotNil(t, stats.ByStatus)
}

func TestInsights(t *testing.T) {
	assert.Nil(t, Insights(nil))
	assert.Equal(t, []string{allNormalInsight}, Insights([]Parameter{param("Glicose", 95, 0.8, "")}))

	got := Insights([]Parameter{
		{Name: "TSH", Status: StatusHigh, Category: knowledge.Hormonal},
		{Name: "Hemoglobina", Status: StatusLow, Category: knowledge.Hematology},
		{Name: "Plaquetas", Status: StatusHigh, Category: knowledge.Hematology},
	})
	assert.Equal(t, []string{
		"Alterações hematológicas detectadas em 2 parâmetro(s).",
		"Alterações hormonais detectadas em 1 parâmetro(s).",
	}, got)
}
