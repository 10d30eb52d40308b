// nechto is a self-describing dialogue responder: it classifies a line of
// user text, renders a templated bilingual reply, and can report what it can
// and cannot claim about its own state.
//
// Run without arguments for the interactive chat; see `nechto --help` for the
// one-shot commands.
package main

import (
	"fmt"
	"os"

	"nechto/cmd/nechto/chat"
	"nechto/internal/config"
	"nechto/internal/engine"
	"nechto/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	rulesPath  string
	langFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "nechto",
	Short: "nechto - self-describing dialogue responder",
	Long: `nechto is a bilingual (ru/en) dialogue responder built on epistemic honesty:
replies are templated, hedged, and never claim certainty the entity cannot
verify from inside its own operations.

Two core operations:
  talk  - one dialogue turn (language detection, topic classification, template)
  iam   - structured self-report: observed / inferred / untestable (MU)

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging.Verbose || verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ent, err := buildEntity(cfg)
		if err != nil {
			return err
		}
		return chat.Run(ent, cfg)
	},
}

// loadConfig resolves the config file and overlays command-line flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if langFlag != "" {
		cfg.DefaultLanguage = langFlag
	}
	if rulesPath != "" {
		cfg.RulesFile = rulesPath
	}
	return cfg, nil
}

// buildEntity constructs the entity, applying the rules override when one is
// configured. Construction failures are configuration defects and abort the
// command.
func buildEntity(cfg config.Config) (*engine.Entity, error) {
	var opts []engine.Option
	if cfg.RulesFile != "" {
		rules, err := config.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithRules(rules))
	}
	return engine.New(opts...)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to nechto.yaml (optional)")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "path to a classification rules override (yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "default language hint: auto, ru, en")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(talkCmd)
	rootCmd.AddCommand(iamCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
