package engine

import (
	"nechto/internal/language"
	"nechto/internal/logging"
	"nechto/internal/template"
	"nechto/internal/topic"
)

// Mode is the fixed mode tag of every dialogue response.
const Mode = "simple_dialogue"

// DialogueRequest is one turn of user input. Empty text is legal and handled.
type DialogueRequest struct {
	Text         string        `json:"text"`
	LanguageHint language.Hint `json:"language_hint"`
}

// DialogueResponse is the immutable result of one dispatch. A fresh value is
// assembled per call; MaintainsHonesty is a contract invariant (no template
// may claim certainty the entity cannot verify), not a computed field.
type DialogueResponse struct {
	Request          string             `json:"request"`
	Language         language.Lang      `json:"language"`
	ResponseType     topic.ResponseType `json:"response_type"`
	Response         string             `json:"response"`
	Mode             string             `json:"mode"`
	MaintainsHonesty bool               `json:"maintains_honesty"`
	EpistemicNote    string             `json:"epistemic_note"`
	Cycle            int                `json:"cycle"`
}

// TalkSimply processes one dialogue turn: detect language, classify topic,
// render the template, advance the cycle counter. The cycle increment is the
// only mutation and happens exactly once per call, fallback path included.
// TalkSimply cannot fail for any input.
func (e *Entity) TalkSimply(userInput string, hint language.Hint) DialogueResponse {
	return e.Dispatch(DialogueRequest{Text: userInput, LanguageHint: hint})
}

// Dispatch is the request-form entry point behind TalkSimply.
func (e *Entity) Dispatch(req DialogueRequest) DialogueResponse {
	lang := language.Detect(req.Text, req.LanguageHint)
	responseType := e.currentClassifier().Classify(req.Text, lang)

	nodes, edges := e.state.GraphCounters()
	text := e.templates.Render(responseType, lang, template.Context{
		GraphNodes: nodes,
		GraphEdges: edges,
		Original:   req.Text,
	})

	cycle := e.state.advanceCycle()

	logging.Get(logging.CategoryDialogue).Debugw("dispatch",
		"entity_id", e.id,
		"language", lang,
		"response_type", responseType,
		"cycle", cycle,
	)

	return DialogueResponse{
		Request:          req.Text,
		Language:         lang,
		ResponseType:     responseType,
		Response:         text,
		Mode:             Mode,
		MaintainsHonesty: true,
		EpistemicNote:    template.EpistemicNote(lang),
		Cycle:            cycle,
	}
}
