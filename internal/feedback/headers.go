package feedback

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/finwell/finhealth-cli/internal/model"
)

// Header pools per metric kind and tone. Ratio metrics distinguish the
// direction of the miss; adequacy metrics use one pool per tone.
var (
	ratioGoodHeaders = []string{
		"Good %s",
		"Optimal %s",
		"Strong %s",
		"Healthy %s",
	}
	ratioLowHeaders = []string{
		"Low %s",
		"%s Very Low",
		"Below Average %s",
		"Lower Than Ideal %s",
	}
	ratioHighHeaders = []string{
		"High %s",
		"Excessive %s",
		"Above Normal %s",
		"Higher Than Ideal %s",
	}
	adequacyGoodHeaders = []string{
		"Good %s",
		"Strong %s",
		"Stable %s",
	}
	adequacyBadHeaders = []string{
		"Inadequate %s",
		"Insufficient %s",
	}
)

// HeaderPicker selects a feedback header for a metric. The random source is
// injectable so output is reproducible under test; a nil source uses the
// shared generator.
type HeaderPicker struct {
	rng *rand.Rand
}

// NewHeaderPicker returns a picker drawing from rng, or from the shared
// generator when rng is nil.
func NewHeaderPicker(rng *rand.Rand) *HeaderPicker {
	return &HeaderPicker{rng: rng}
}

func (h *HeaderPicker) intN(n int) int {
	if h.rng != nil {
		return h.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Pick returns a header sentence for the metric based on its verdict.
func (h *HeaderPicker) Pick(m *model.Metric) string {
	pool := h.pool(m)
	return fmt.Sprintf(pool[h.intN(len(pool))], m.DisplayName())
}

func (h *HeaderPicker) pool(m *model.Metric) []string {
	adequacy := strings.HasSuffix(m.Name, "adequacy")

	if m.Verdict.Commendable() {
		if adequacy {
			return adequacyGoodHeaders
		}
		return ratioGoodHeaders
	}
	if adequacy {
		return adequacyBadHeaders
	}
	switch m.Verdict {
	case model.VerdictExtremelyLow, model.VerdictLow:
		return ratioLowHeaders
	default:
		return ratioHighHeaders
	}
}
