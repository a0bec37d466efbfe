package history

import (
	"time"

	"github.com/KaramelBytes/labloom-cli/internal/extract"
)

// Run is one saved parse: its input source, threshold and result.
type Run struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Threshold float64         `json:"threshold"`
	CreatedAt time.Time       `json:"created_at"`
	Result    *extract.Result `json:"result"`
}
