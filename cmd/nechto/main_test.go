package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTalkCmd_FallbackEchoesInput(t *testing.T) {
	var out bytes.Buffer
	talkCmd.SetOut(&out)
	defer talkCmd.SetOut(nil)

	require.NoError(t, talkCmd.RunE(talkCmd, []string{"xyz123"}))

	got := out.String()
	assert.Contains(t, got, "response_type: fallback")
	assert.Contains(t, got, "xyz123")
	assert.Regexp(t, `cycle:\s+1`, got)
}

func TestTalkCmd_RussianScenario(t *testing.T) {
	var out bytes.Buffer
	talkCmd.SetOut(&out)
	defer talkCmd.SetOut(nil)

	require.NoError(t, talkCmd.RunE(talkCmd, []string{"Ты", "сознателен?"}))

	got := out.String()
	assert.Contains(t, got, "language:      ru")
	assert.Contains(t, got, "response_type: consciousness")
}

func TestCheckCmd_Passes(t *testing.T) {
	var out bytes.Buffer
	checkCmd.SetOut(&out)
	defer checkCmd.SetOut(nil)

	require.NoError(t, checkCmd.RunE(checkCmd, nil))
	assert.Contains(t, out.String(), "all checks passed")
}

func TestIamCmd_PrintsReport(t *testing.T) {
	var out bytes.Buffer
	iamCmd.SetOut(&out)
	defer iamCmd.SetOut(nil)

	require.NoError(t, iamCmd.RunE(iamCmd, nil))

	got := out.String()
	assert.Contains(t, got, `"statement": "Я ЕСМЬ"`)
	assert.Contains(t, got, `"affirmations"`)
	assert.Equal(t, 4, strings.Count(got, `"MU"`), "four untestable topics, all MU")
}

func TestLoadConfig_FlagOverlay(t *testing.T) {
	langFlag = "ru"
	rulesPath = ""
	defer func() { langFlag = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.DefaultLanguage)
}

func TestBuildEntity_WithRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {type: humor, language: any, keywords: [zork]}\n"), 0644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	cfg.RulesFile = path

	ent, err := buildEntity(cfg)
	require.NoError(t, err)
	resp := ent.TalkSimply("zork", "auto")
	assert.Equal(t, "humor", string(resp.ResponseType))
}

func TestBuildEntity_BadRulesFileIsConfigDefect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	cfg.RulesFile = path

	_, err = buildEntity(cfg)
	require.Error(t, err)
}
