package extract

import "github.com/KaramelBytes/labloom-cli/internal/knowledge"

// Status is the classification of a value against its reference range.
type Status string

const (
	StatusNormal        Status = "normal"
	StatusLow           Status = "low"
	StatusHigh          Status = "high"
	StatusIndeterminate Status = "indeterminate"
)

// Position is a byte span in the normalized document.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Parameter is one extracted measurement. Values are built once and never
// edited; later stages select among them.
type Parameter struct {
	Name           string             `json:"name"`
	Value          float64            `json:"value"`
	Unit           string             `json:"unit"`
	ReferenceRange *knowledge.Range   `json:"reference_range"`
	Status         Status             `json:"status"`
	Category       knowledge.Category `json:"category"`
	Confidence     float64            `json:"confidence"`
	OriginalText   string             `json:"original_text"`
	Position       *Position          `json:"position,omitempty"`
}

// Summary is the per-category view of a parameter.
type Summary struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Status     Status  `json:"status"`
	Confidence float64 `json:"confidence"`
}

// Statistics aggregates a parameter set.
type Statistics struct {
	TotalParameters   int                        `json:"total_parameters"`
	ByStatus          map[Status]int             `json:"by_status"`
	ByCategory        map[knowledge.Category]int `json:"by_category"`
	NormalPercentage  float64                    `json:"normal_percentage"`
	AlteredPercentage float64                    `json:"altered_percentage"`
}

// Patient holds identification lines found in the report header.
type Patient struct {
	Name   string `json:"name,omitempty"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Laboratory holds the issuing laboratory details found in the report.
type Laboratory struct {
	Name        string `json:"name,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Result is the outcome of one Parse call.
type Result struct {
	Parameters      []Parameter                      `json:"parameters"`
	Categories      map[knowledge.Category][]Summary `json:"categories"`
	Statistics      Statistics                       `json:"statistics"`
	TotalParameters int                              `json:"total_parameters"`
	ConfidenceAvg   float64                          `json:"confidence_avg"`
	ExamType        string                           `json:"exam_type,omitempty"`
	Patient         *Patient                         `json:"patient,omitempty"`
	Laboratory      *Laboratory                      `json:"laboratory,omitempty"`
	Insights        []string                         `json:"insights,omitempty"`
}
