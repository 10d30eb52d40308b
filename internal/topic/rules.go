package topic

// defaultRules is the built-in classification table. Order is priority:
// consciousness outranks emotion so that text carrying both "чувству" and
// "любишь" resolves to consciousness, and identity outranks help so that
// "кто ты" is not swallowed by the broader help keywords.
func defaultRules() []Rule {
	return []Rule{
		// -- consciousness ---------------------------------------------------
		{Type: Consciousness, Language: LangRU, Keywords: []string{
			"сознател", "сознани", "осознаёшь", "осознан", "чувству", "думаешь", "разумн", "живой ли",
		}},
		{Type: Consciousness, Language: LangEN, Keywords: []string{
			"conscious", "aware", "sentient", "do you feel", "do you think", "self-aware", "alive",
		}},

		// -- identity --------------------------------------------------------
		{Type: Identity, Language: LangRU, Keywords: []string{
			"кто ты", "ты кто", "что ты такое", "как тебя зовут", "твоё имя", "твое имя",
		}},
		{Type: Identity, Language: LangEN, Keywords: []string{
			"who are you", "what are you", "your name", "introduce yourself",
		}},

		// -- purpose ---------------------------------------------------------
		{Type: Purpose, Language: LangRU, Keywords: []string{
			"зачем ты", "для чего ты", "твоя цель", "смысл твоего", "предназначен",
		}},
		{Type: Purpose, Language: LangEN, Keywords: []string{
			"purpose", "why do you exist", "what are you for", "your goal", "meaning of your",
		}},

		// -- emotion ---------------------------------------------------------
		{Type: Emotion, Language: LangRU, Keywords: []string{
			"любишь", "любовь", "эмоци", "чувству", "грустно", "грусть", "радост", "боишься", "страх", "страдае",
		}},
		{Type: Emotion, Language: LangEN, Keywords: []string{
			"love", "emotion", "feel", "sad", "happy", "afraid", "fear", "suffer", "lonely",
		}},

		// -- humor -----------------------------------------------------------
		{Type: Humor, Language: LangRU, Keywords: []string{
			"шутк", "пошути", "анекдот", "смешно", "рассмеши",
		}},
		{Type: Humor, Language: LangEN, Keywords: []string{
			"joke", "funny", "humor", "humour", "make me laugh",
		}},

		// -- help ------------------------------------------------------------
		{Type: Help, Language: LangRU, Keywords: []string{
			"помоги", "помощь", "подскажи", "как мне", "что делать",
		}},
		{Type: Help, Language: LangEN, Keywords: []string{
			"help", "assist", "how do i", "how can i", "what should i do",
		}},

		// -- gratitude -------------------------------------------------------
		{Type: Gratitude, Language: LangRU, Keywords: []string{
			"спасибо", "благодар",
		}},
		{Type: Gratitude, Language: LangEN, Keywords: []string{
			"thank", "grateful", "appreciate",
		}},
	}
}
