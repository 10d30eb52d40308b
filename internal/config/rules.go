package config

import (
	"fmt"
	"os"
	"strings"

	"nechto/internal/topic"

	"gopkg.in/yaml.v3"
)

// RulesFile is the on-disk shape of a classification table override.
// Table order in the file is evaluation priority, same as the built-in table.
type RulesFile struct {
	Rules []topic.Rule `yaml:"rules"`
}

// LoadRules reads and validates a YAML rule table. Validation failures are
// configuration defects: unknown response types or languages, empty keyword
// sets, or an empty table all reject the file as a whole.
func LoadRules(path string) ([]topic.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}

	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("rules: parse %s: %w", path, err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("rules: %s defines no rules", path)
	}

	valid := map[topic.ResponseType]bool{}
	for _, rt := range topic.Types() {
		valid[rt] = true
	}

	for i, r := range rf.Rules {
		if !valid[r.Type] {
			return nil, fmt.Errorf("rules: entry %d: unknown response type %q", i, r.Type)
		}
		switch r.Language {
		case topic.LangRU, topic.LangEN, topic.LangAny:
		default:
			return nil, fmt.Errorf("rules: entry %d (%s): unknown language %q", i, r.Type, r.Language)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rules: entry %d (%s): empty keyword set", i, r.Type)
		}
		for j, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("rules: entry %d (%s): blank keyword", i, r.Type)
			}
			// Matching is case-insensitive against lowercased input.
			rf.Rules[i].Keywords[j] = strings.ToLower(kw)
		}
	}

	return rf.Rules, nil
}
