// Package segment classifies users into benchmark segments: a city tier
// reflecting cost of living and a monthly-income bracket.
package segment

import "strings"

// Bracket is one of seven ordered monthly-income bands.
type Bracket string

const (
	IG1 Bracket = "IG1" // < 80k
	IG2 Bracket = "IG2" // 80k - 150k
	IG3 Bracket = "IG3" // 150k - 250k
	IG4 Bracket = "IG4" // 250k - 350k
	IG5 Bracket = "IG5" // 350k - 500k
	IG6 Bracket = "IG6" // 500k - 800k
	IG7 Bracket = "IG7" // >= 800k
)

// Brackets lists the income brackets in ascending order.
var Brackets = []Bracket{IG1, IG2, IG3, IG4, IG5, IG6, IG7}

// ClassifyIncomeBracket maps total monthly income (INR) to its bracket.
// Bands are half-open: [0, 80k), [80k, 150k), ... [800k, inf).
func ClassifyIncomeBracket(monthlyIncome float64) Bracket {
	switch {
	case monthlyIncome < 80_000:
		return IG1
	case monthlyIncome < 150_000:
		return IG2
	case monthlyIncome < 250_000:
		return IG3
	case monthlyIncome < 350_000:
		return IG4
	case monthlyIncome < 500_000:
		return IG5
	case monthlyIncome < 800_000:
		return IG6
	default:
		return IG7
	}
}

// tier1Cities and tier2Cities hold lowercased city names. Anything not
// listed classifies as Tier 3; an unknown city is a fallback, not an error.
var tier1Cities = map[string]struct{}{
	"mumbai":    {},
	"delhi":     {},
	"new delhi": {},
	"bengaluru": {},
	"bangalore": {},
	"chennai":   {},
	"kolkata":   {},
	"hyderabad": {},
	"pune":      {},
	"ahmedabad": {},
}

var tier2Cities = map[string]struct{}{
	"jaipur":        {},
	"lucknow":       {},
	"kanpur":        {},
	"nagpur":        {},
	"indore":        {},
	"bhopal":        {},
	"surat":         {},
	"vadodara":      {},
	"visakhapatnam": {},
	"patna":         {},
	"ludhiana":      {},
	"agra":          {},
	"nashik":        {},
	"rajkot":        {},
	"varanasi":      {},
	"amritsar":      {},
	"coimbatore":    {},
	"kochi":         {},
	"thiruvananthapuram": {},
	"chandigarh":    {},
	"mysuru":        {},
	"mysore":        {},
	"guwahati":      {},
	"bhubaneswar":   {},
	"dehradun":      {},
	"raipur":        {},
	"ranchi":        {},
	"jodhpur":       {},
	"madurai":       {},
	"gwalior":       {},
	"vijayawada":    {},
	"jabalpur":      {},
}

// ClassifyCityTier maps a city name to tier 1, 2 or 3. Matching is
// case-insensitive and whitespace-trimmed.
func ClassifyCityTier(cityName string) int {
	name := strings.ToLower(strings.TrimSpace(cityName))
	if _, ok := tier1Cities[name]; ok {
		return 1
	}
	if _, ok := tier2Cities[name]; ok {
		return 2
	}
	return 3
}
