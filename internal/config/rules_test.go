package config

import (
	"os"
	"path/filepath"
	"testing"

	"nechto/internal/topic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRules_Valid(t *testing.T) {
	path := writeRules(t, `
rules:
  - type: gratitude
    language: ru
    keywords: [спасибо, благодар]
  - type: gratitude
    language: en
    keywords: [Thank, GRATEFUL]
`)
	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, topic.Gratitude, rules[0].Type)
	// keywords are lowercased on load
	assert.Equal(t, []string{"thank", "grateful"}, rules[1].Keywords)
}

func TestLoadRules_PreservesOrder(t *testing.T) {
	path := writeRules(t, `
rules:
  - {type: consciousness, language: any, keywords: [shared]}
  - {type: emotion, language: any, keywords: [shared]}
`)
	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Equal(t, topic.Consciousness, rules[0].Type)
	require.Equal(t, topic.Emotion, rules[1].Type)
}

func TestLoadRules_Defects(t *testing.T) {
	cases := map[string]string{
		"unknown type":     "rules:\n  - {type: astrology, language: en, keywords: [star]}\n",
		"unknown language": "rules:\n  - {type: humor, language: de, keywords: [witz]}\n",
		"empty keywords":   "rules:\n  - {type: humor, language: en, keywords: []}\n",
		"blank keyword":    "rules:\n  - {type: humor, language: en, keywords: ['  ']}\n",
		"empty table":      "rules: []\n",
		"fallback rule":    "rules:\n  - {type: fallback, language: any, keywords: [x]}\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRules(writeRules(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
