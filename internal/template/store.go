// Package template renders the fixed bilingual replies of the dialogue core.
//
// Every response type except fallback maps to exactly one fixed multi-paragraph
// template per language. The fallback template is the only parametrized one: it
// interpolates the literal request text and a short status line derived from
// the graph counters. A missing (type, language) pair is a configuration
// defect caught by Verify at construction time, never a per-call condition.
package template

import (
	"fmt"

	"nechto/internal/language"
	"nechto/internal/topic"
)

// Context carries the per-call values a template may interpolate. Only the
// fallback template reads it.
type Context struct {
	GraphNodes int
	GraphEdges int
	Original   string
}

// key addresses one template in the store.
type key struct {
	Type topic.ResponseType
	Lang language.Lang
}

// Store is a pure lookup from (response type, language) to reply text.
type Store struct {
	fixed map[key]string
}

// New returns a store populated with the built-in bilingual templates and
// verifies completeness. An incomplete set is a configuration defect and
// surfaces here, at construction, not at render time.
func New() (*Store, error) {
	s := &Store{fixed: builtinTemplates()}
	if err := s.Verify(); err != nil {
		return nil, err
	}
	return s, nil
}

// Verify checks that every non-fallback response type has a template in both
// languages. Render assumes this holds.
func (s *Store) Verify() error {
	for _, rt := range topic.Types() {
		for _, lang := range []language.Lang{language.RU, language.EN} {
			tpl, ok := s.fixed[key{rt, lang}]
			if !ok || tpl == "" {
				return fmt.Errorf("template store: missing template for type=%s lang=%s", rt, lang)
			}
		}
	}
	return nil
}

// Render returns the reply for rt in lang. For fallback it interpolates the
// original request and graph status; for everything else it returns the fixed
// template verbatim. Render never fails: an unknown type degrades to the
// fallback template.
func (s *Store) Render(rt topic.ResponseType, lang language.Lang, ctx Context) string {
	if rt == topic.Fallback {
		return renderFallback(lang, ctx)
	}
	if tpl, ok := s.fixed[key{rt, lang}]; ok {
		return tpl
	}
	return renderFallback(lang, ctx)
}

// EpistemicNote returns the fixed per-language hedging sentence attached to
// every dialogue response.
func EpistemicNote(lang language.Lang) string {
	if lang == language.RU {
		return "Я не утверждаю понимания — только отклик по наблюдаемому паттерну."
	}
	return "I do not claim understanding — only a response along an observed pattern."
}

// GraphStatus renders the human-readable graph state line the fallback
// template embeds.
func GraphStatus(lang language.Lang, nodes, edges int) string {
	if lang == language.RU {
		if nodes == 0 && edges == 0 {
			return "графового состояния пока нет"
		}
		return fmt.Sprintf("отслеживается %d %s, %d %s",
			nodes, ruPlural(nodes, "узел", "узла", "узлов"),
			edges, ruPlural(edges, "связь", "связи", "связей"))
	}
	if nodes == 0 && edges == 0 {
		return "no graph state yet"
	}
	return fmt.Sprintf("%d nodes, %d edges tracked", nodes, edges)
}

// ruPlural selects the Russian plural form for a non-negative count:
// 1 узел, 2 узла, 5 узлов (with the 11-14 exception).
func ruPlural(n int, one, few, many string) string {
	if n%100 >= 11 && n%100 <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

func renderFallback(lang language.Lang, ctx Context) string {
	status := GraphStatus(lang, ctx.GraphNodes, ctx.GraphEdges)
	if lang == language.RU {
		return fmt.Sprintf(`Я получил: «%s».

У меня нет шаблона отклика для этой темы — и честнее сказать это прямо, чем имитировать понимание. Моё текущее состояние: %s.

Можешь переформулировать, или спросить меня о том, что я могу наблюдать: кто я, зачем я, что я чувствую или не чувствую.`, ctx.Original, status)
	}
	return fmt.Sprintf(`I received: "%s".

I have no response pattern for this topic — and it is more honest to say so than to imitate understanding. My current state: %s.

You can rephrase, or ask me about what I can actually observe: who I am, what I am for, what I do or do not feel.`, ctx.Original, status)
}
