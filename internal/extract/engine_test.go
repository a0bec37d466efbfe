package extract

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleReport = `LABORATÓRIO: Central Diagnósticos
Paciente: Maria da Silva
Idade: 45 anos
Sexo: F
Data: 12/03/2024

HEMOGRAMA COMPLETO
Hemoglobina: 11.2 g/dL
Hematócrito: 41 %
Leucócitos: 7.500 /mm³
Plaquetas: 280.000 /mm³

BIOQUÍMICA
Glicose: 95 mg/dL
Colesterol Total: 220 mg/dL
TG: 120 mg/dL
TSH
Método: quimioluminescência
Resultado: 2.1
`

func byName(params []Parameter) map[string]Parameter {
	out := make(map[string]Parameter, len(params))
	for _, p := range params {
		out[p.Name] = p
	}
	return out
}

func TestParseGlucoseSameLine(t *testing.T) {
	res, err := New(nil).Parse("Glicose: 95 mg/dL", DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, res.Parameters, 1)
	p := res.Parameters[0]
	assert.Equal(t, "Glicose", p.Name)
	assert.Equal(t, 95.0, p.Value)
	assert.Equal(t, "mg/dL", p.Unit)
	assert.Equal(t, StatusNormal, p.Status)
	assert.Equal(t, knowledge.Biochemistry, p.Category)
	assert.Equal(t, 1, res.TotalParameters)
	assert.Equal(t, 100.0, res.Statistics.NormalPercentage)
	assert.Equal(t, []string{allNormalInsight}, res.Insights)
}

func TestParseHemoglobinViaMarker(t *testing.T) {
	res, err := New(nil).Parse("Hemoglobina\nResultado: 14.2", DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, res.Parameters, 1)
	p := res.Parameters[0]
	assert.Equal(t, "Hemoglobina", p.Name)
	assert.Equal(t, 14.2, p.Value)
	assert.GreaterOrEqual(t, p.Confidence, 0.85)
}

func TestParseRejectsImplausibleForwardValue(t *testing.T) {
	res, err := New(nil).Parse("TSH\nMétodo: quimioluminescência\nObservação\n2024", DefaultThreshold)
	require.NoError(t, err)
	for _, p := range res.Parameters {
		assert.NotEqual(t, "TSH", p.Name)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\r\n\t"} {
		res, err := New(nil).Parse(in, DefaultThreshold)
		require.NoError(t, err)
		assert.NotNil(t, res.Parameters)
		assert.Empty(t, res.Parameters)
		assert.Equal(t, 0, res.TotalParameters)
		assert.Equal(t, 0.0, res.Statistics.NormalPercentage)
		assert.Equal(t, 0.0, res.Statistics.AlteredPercentage)
		assert.Equal(t, 0.0, res.ConfidenceAvg)
		assert.Empty(t, res.ExamType)
		assert.Nil(t, res.Insights)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"parameters":[]`)
		assert.Contains(t, string(raw), `"total_parameters":0`)
	}
}

func TestParseSampleReport(t *testing.T) {
	res, err := New(nil).Parse(sampleReport, DefaultThreshold)
	require.NoError(t, err)
	got := byName(res.Parameters)

	assert.Equal(t, StatusLow, got["Hemoglobina"].Status)
	assert.Equal(t, 7500.0, got["Leucócitos"].Value)
	assert.Equal(t, 280000.0, got["Plaquetas"].Value)
	assert.Equal(t, StatusHigh, got["Colesterol Total"].Status)
	assert.Equal(t, 2.1, got["TSH"].Value)
	assert.Equal(t, 0.9, got["TSH"].Confidence)

	// "tg" belongs to two entries; both candidates survive.
	assert.Equal(t, 120.0, got["Triglicerídeos"].Value)
	assert.Equal(t, 120.0, got["Tireoglobulina"].Value)
	assert.Greater(t, got["Triglicerídeos"].Confidence, got["Tireoglobulina"].Confidence)

	assert.Equal(t, "hemograma", res.ExamType)
	require.NotNil(t, res.Patient)
	assert.Equal(t, "Maria Da Silva", res.Patient.Name)
	assert.Equal(t, "45", res.Patient.Age)
	assert.Equal(t, "feminino", res.Patient.Gender)
	require.NotNil(t, res.Laboratory)
	assert.Equal(t, "Central Diagnósticos", res.Laboratory.Name)
	assert.Equal(t, "12/03/2024", res.Laboratory.Date)

	assert.Len(t, res.Categories[knowledge.Hematology], 4)
	assert.Equal(t, len(res.Parameters), res.Statistics.TotalParameters)
	assert.Contains(t, res.Insights, "Alterações hematológicas detectadas em 1 parâmetro(s).")
}

func TestParseIsIdempotent(t *testing.T) {
	e := New(nil)
	a, err := e.Parse(sampleReport, DefaultThreshold)
	require.NoError(t, err)
	b, err := e.Parse(sampleReport, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestThresholdMonotonicity(t *testing.T) {
	e := New(nil)
	thresholds := []float64{0, 0.3, 0.5, 0.75, 0.85, 0.9, 1}
	var prev map[string]Parameter
	for _, th := range thresholds {
		res, err := e.Parse(sampleReport, th)
		require.NoError(t, err)
		cur := byName(res.Parameters)
		for _, p := range res.Parameters {
			assert.GreaterOrEqual(t, p.Confidence, th)
			if prev != nil {
				assert.Contains(t, prev, p.Name, "threshold %v added %s", th, p.Name)
			}
		}
		prev = cur
	}
}

func TestParseDedupInvariant(t *testing.T) {
	text := strings.Repeat("Glicose: 95 mg/dL\nGlicemia 95,04\n", 3)
	res, err := New(nil).Parse(text, 0)
	require.NoError(t, err)
	seen := make(map[dedupeKey]bool)
	for _, p := range res.Parameters {
		k := dedupeKey{strings.ToLower(p.Name), math.Round(p.Value*10) / 10}
		assert.False(t, seen[k], "duplicate %v", k)
		seen[k] = true
	}
	require.Len(t, res.Parameters, 1)
	assert.Equal(t, 0.85, res.Parameters[0].Confidence)
}

func TestParseNaNThreshold(t *testing.T) {
	res, err := New(nil).Parse("TSH 25 mUI/L\nGlicose: 95 mg/dL", math.NaN())
	require.NoError(t, err)
	assert.Len(t, res.Parameters, 2)
}

func TestParseRecoversInternalFailure(t *testing.T) {
	broken := &Engine{opt: DefaultOptions(), log: zap.NewNop()}
	res, err := broken.Parse("Glicose: 95", DefaultThreshold)
	assert.Nil(t, res)
	var ie *InternalError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "parse", ie.Op)

	raw, err := json.Marshal(broken.Respond("Glicose: 95", DefaultThreshold))
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body["error"], "parse medical text")
}

func TestRespondSerializesResult(t *testing.T) {
	raw, err := json.Marshal(New(nil).Respond("Glicose: 95 mg/dL", DefaultThreshold))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.NotContains(t, body, "error")
	assert.EqualValues(t, 1, body["total_parameters"])
	stats := body["statistics"].(map[string]any)
	assert.Equal(t, map[string]any{"normal": 1.0}, stats["by_status"])
}

func TestEngineCustomBase(t *testing.T) {
	base, err := knowledge.Default().With(knowledge.Entry{
		Name: "Glicose", Keys: []string{"glu"}, Unit: "mg/dL",
		Category: knowledge.Biochemistry, Range: &knowledge.Range{Min: 60, Max: 110},
	})
	require.NoError(t, err)
	res, err := New(base).Parse("GLU 105", DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, res.Parameters, 1)
	assert.Equal(t, StatusNormal, res.Parameters[0].Status)
	assert.Same(t, base, New(base).Base())
}

func TestParseConcurrentUse(t *testing.T) {
	e := New(nil)
	want, err := e.Parse(sampleReport, DefaultThreshold)
	require.NoError(t, err)

	const workers = 8
	results := make([]*Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.Parse(sampleReport, DefaultThreshold)
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}
