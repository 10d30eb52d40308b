// Package topic classifies one line of user text into a response type.
//
// Classification is an ordered rule table scanned top to bottom: the first
// rule whose language matches and whose keyword set intersects the lowercased
// input wins. Keyword sets overlap on purpose (e.g. "чувству" belongs to both
// the consciousness and emotion groups); ambiguity is resolved by table order,
// never by scoring. This is why the table is an explicit slice and not a map.
package topic

import (
	"strings"

	"nechto/internal/language"
)

// ResponseType tags one dialogue turn with its classified topic.
type ResponseType string

const (
	Consciousness ResponseType = "consciousness"
	Identity      ResponseType = "identity"
	Purpose       ResponseType = "purpose"
	Emotion       ResponseType = "emotion"
	Humor         ResponseType = "humor"
	Help          ResponseType = "help"
	Gratitude     ResponseType = "gratitude"
	Fallback      ResponseType = "fallback"
)

// Types lists every non-fallback response type in table order. The template
// store's completeness check iterates this.
func Types() []ResponseType {
	return []ResponseType{Consciousness, Identity, Purpose, Emotion, Humor, Help, Gratitude}
}

// RuleLang scopes a rule to one language. LangAny rules match both.
type RuleLang string

const (
	LangRU  RuleLang = "ru"
	LangEN  RuleLang = "en"
	LangAny RuleLang = "any"
)

// Rule is one entry of the classification table. Table position is priority;
// there is no numeric score.
type Rule struct {
	Type     ResponseType `yaml:"type"`
	Language RuleLang     `yaml:"language"`
	Keywords []string     `yaml:"keywords"`
}

// Matches reports whether the rule applies to lowered input in lang.
func (r Rule) Matches(lowered string, lang language.Lang) bool {
	if r.Language != LangAny && string(r.Language) != string(lang) {
		return false
	}
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Classifier holds an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New returns a classifier over the built-in rule table.
func New() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// NewWithRules returns a classifier over a caller-supplied table, preserving
// its order. An empty table classifies everything as Fallback.
func NewWithRules(rules []Rule) *Classifier {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		out[i].Keywords = append([]string(nil), r.Keywords...)
	}
	return &Classifier{rules: out}
}

// Rules returns a copy of the table in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Classify returns the response type for text in lang. The input is lowercased
// once and matched by substring containment against each rule in table order;
// the first hit wins. No rule matching means Fallback. Classify never fails,
// including on empty input.
func (c *Classifier) Classify(text string, lang language.Lang) ResponseType {
	lowered := strings.ToLower(text)
	for _, r := range c.rules {
		if r.Matches(lowered, lang) {
			return r.Type
		}
	}
	return Fallback
}
