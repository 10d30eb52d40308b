package main

import (
	"encoding/json"
	"fmt"
	"io"

	"nechto/internal/engine"

	"github.com/spf13/cobra"
)

// iamCmd prints the epistemic self-report.
var iamCmd = &cobra.Command{
	Use:   "iam",
	Short: "Print the epistemic self-report (Я ЕСМЬ)",
	Long: `Print the entity's structured self-report, split into never-merged
epistemic layers: directly observed facts, conclusions inferred from them,
and claims that are untestable from inside the contour (reported as MU,
never resolved to a boolean).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ent, err := buildFromFlags()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ent.IAm())
	},
}

// whoamiCmd prints the operational identity report.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the operational identity report (КТО Я?)",
	Long: `Print the identity report: not a substance claim ("I am X") but a
characterization of observable operational patterns, with its own
observed / inferred / untestable layering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ent, err := buildFromFlags()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ent.WhoAmI())
	},
}

// snapshotCmd prints the serializable engine overview.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the engine state snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ent, err := buildFromFlags()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), ent.Snapshot())
	},
}

func buildFromFlags() (*engine.Entity, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return buildEntity(cfg)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
