package benchmark

import (
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/segment"
)

// yamlRange is a (min, max) pair in an override file.
type yamlRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// yamlEntry is either a flat range or a tiered mapping
// ("tier 1" -> bracket -> range) for one metric.
type yamlEntry struct {
	Flat  *yamlRange                      `yaml:"range,omitempty"`
	Tiers map[string]map[string]yamlRange `yaml:"tiers,omitempty"`
}

// LoadFile reads a benchmark override table from a YAML file. Metrics absent
// from the file keep their built-in entries; metrics present replace them
// wholesale.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "benchmark: read override file %s", path)
	}

	var wrapper struct {
		Benchmarks map[string]yamlEntry `yaml:"benchmarks"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "benchmark: parse override file")
	}

	out := make(Table, len(Default))
	for name, entry := range Default {
		out[name] = entry
	}

	for name, ye := range wrapper.Benchmarks {
		name = model.CanonicalMetricName(name)
		entry, err := ye.toEntry()
		if err != nil {
			return nil, eris.Wrapf(err, "benchmark: metric %s", name)
		}
		out[name] = entry
	}

	return out, nil
}

func (ye yamlEntry) toEntry() (Entry, error) {
	if ye.Flat != nil && len(ye.Tiers) > 0 {
		return Entry{}, eris.New("both flat range and tiers given")
	}
	if ye.Flat != nil {
		if ye.Flat.Min > ye.Flat.Max {
			return Entry{}, eris.New("range min exceeds max")
		}
		return Entry{Flat: &model.Range{Min: ye.Flat.Min, Max: ye.Flat.Max}}, nil
	}
	if len(ye.Tiers) == 0 {
		return Entry{}, eris.New("no range or tiers given")
	}

	tiered := make(TieredRanges, len(ye.Tiers))
	for tierKey, brackets := range ye.Tiers {
		tier, err := parseTierKey(tierKey)
		if err != nil {
			return Entry{}, err
		}
		byBracket := make(map[segment.Bracket]model.Range, len(brackets))
		for bk, r := range brackets {
			if r.Min > r.Max {
				return Entry{}, eris.Errorf("tier %d bracket %s: range min exceeds max", tier, bk)
			}
			byBracket[segment.Bracket(strings.ToUpper(strings.TrimSpace(bk)))] = model.Range{Min: r.Min, Max: r.Max}
		}
		tiered[tier] = byBracket
	}
	return Entry{Tiered: tiered}, nil
}

// parseTierKey accepts "1", "tier 1" or "Tier 1".
func parseTierKey(key string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(key))
	s = strings.TrimSpace(strings.TrimPrefix(s, "tier"))
	tier, err := strconv.Atoi(s)
	if err != nil || tier < 1 || tier > 3 {
		return 0, eris.Errorf("invalid tier key %q", key)
	}
	return tier, nil
}
