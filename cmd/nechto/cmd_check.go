package main

import (
	"fmt"

	"nechto/internal/engine"
	"nechto/internal/epistemic"
	"nechto/internal/language"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkCmd is the startup self-check: configuration defects (missing
// template pairs, broken report cardinalities, invalid rules files) must
// surface here with a non-zero exit, never as per-call runtime errors.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the configuration self-check",
	Long: `Verify the release invariants of the dialogue core:

  - every response type has templates in both languages
  - the self-report carries exactly 9 affirmations, 4 negations,
    and 4 untestable topics, all of them MU
  - the configured rules override (if any) parses and validates
  - concurrent dispatches do not lose cycle increments

Exits non-zero on any defect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Entity construction runs the template and report verifications.
		ent, err := buildEntity(cfg)
		if err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		fmt.Fprintln(out, "ok  templates complete (ru+en for every response type)")

		report := ent.IAm()
		if err := report.Verify(); err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		fmt.Fprintf(out, "ok  report cardinalities (%d affirmations, %d negations, %d untestable)\n",
			len(report.Affirmations), len(report.Negations), len(report.Untestable))

		if err := ent.WhoAmI().Verify(); err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		fmt.Fprintln(out, "ok  identity report untestable block all MU")

		if cfg.RulesFile != "" {
			fmt.Fprintf(out, "ok  rules override %s validated\n", cfg.RulesFile)
		}

		if err := concurrencySmoke(); err != nil {
			return fmt.Errorf("self-check failed: %w", err)
		}
		fmt.Fprintln(out, "ok  concurrent dispatch smoke (no lost cycle increments)")

		fmt.Fprintf(out, "\nnechto %s: all checks passed\n", epistemic.Version)
		return nil
	},
}

// concurrencySmoke dispatches from several goroutines against one fresh
// entity and verifies the cycle counter saw every call.
func concurrencySmoke() error {
	ent, err := engine.New()
	if err != nil {
		return err
	}

	const workers = 8
	const perWorker = 25

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				resp := ent.TalkSimply("Ты сознателен?", language.HintAuto)
				if !resp.MaintainsHonesty {
					return fmt.Errorf("maintains_honesty dropped on cycle %d", resp.Cycle)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if got := ent.State().Cycle(); got != workers*perWorker {
		return fmt.Errorf("cycle counter = %d after %d dispatches", got, workers*perWorker)
	}
	return nil
}
