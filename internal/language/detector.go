// Package language provides script-based language detection for the dialogue
// core. Detection is deliberately minimal: the presence of a single Cyrillic
// rune selects Russian, anything else selects English. An explicit hint always
// overrides detection, even when the text is written in the other script.
package language

import "unicode"

// Lang is a detected or requested dialogue language.
type Lang string

const (
	RU Lang = "ru"
	EN Lang = "en"
)

// Hint is the caller-supplied language preference. Anything other than
// HintRU or HintEN is treated as HintAuto.
type Hint string

const (
	HintAuto Hint = "auto"
	HintRU   Hint = "ru"
	HintEN   Hint = "en"
)

// Normalize maps arbitrary hint strings onto the three supported values.
// Unrecognized hints degrade to HintAuto rather than failing.
func Normalize(h Hint) Hint {
	switch h {
	case HintRU, HintEN:
		return h
	default:
		return HintAuto
	}
}

// Detect returns the language for text under the given hint.
//
// An explicit ru/en hint wins unconditionally. With HintAuto (or any
// unrecognized hint), the text is scanned for Cyrillic runes: presence means
// RU, absence means EN. Empty or whitespace-only text therefore detects as EN.
// Detect never fails.
func Detect(text string, hint Hint) Lang {
	switch Normalize(hint) {
	case HintRU:
		return RU
	case HintEN:
		return EN
	}
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return RU
		}
	}
	return EN
}
