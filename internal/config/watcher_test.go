package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nechto/internal/topic"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRulesWatcher_ReloadOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {type: humor, language: any, keywords: [one]}\n"), 0644))

	reloaded := make(chan []topic.Rule, 4)
	w, err := NewRulesWatcher(path, func(rules []topic.Rule) {
		reloaded <- rules
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {type: humor, language: any, keywords: [two]}\n"), 0644))

	select {
	case rules := <-reloaded:
		require.Len(t, rules, 1)
		require.Equal(t, []string{"two"}, rules[0].Keywords)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
	require.GreaterOrEqual(t, w.Stats().Reloads, 1)
}

func TestRulesWatcher_InvalidSaveIsRejectedNotFatal(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0644))

	w, err := NewRulesWatcher(path, func([]topic.Rule) {
		t.Error("callback fired for invalid table")
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0644))

	deadline := time.After(5 * time.Second)
	for w.Stats().RejectedLoads == 0 {
		select {
		case <-deadline:
			t.Fatal("rejection never recorded")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestRulesWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {type: help, language: any, keywords: [x]}\n"), 0644))

	w, err := NewRulesWatcher(path, func([]topic.Rule) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}

func TestRulesWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - {type: help, language: any, keywords: [x]}\n"), 0644))

	w, err := NewRulesWatcher(path, func([]topic.Rule) {
		t.Error("callback fired for sibling file")
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	time.Sleep(300 * time.Millisecond)
}
