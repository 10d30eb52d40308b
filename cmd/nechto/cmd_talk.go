package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"nechto/internal/language"

	"github.com/spf13/cobra"
)

var talkJSON bool

// talkCmd runs one dialogue turn and prints the response fields.
var talkCmd = &cobra.Command{
	Use:   "talk [text]",
	Short: "Process one dialogue turn",
	Long: `Process one line of user text through the dialogue pipeline:
language detection, ordered topic classification, template rendering.

The entity is constructed fresh per invocation, so the printed cycle is
always 1; use the interactive chat for a running counter.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ent, err := buildEntity(cfg)
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		resp := ent.TalkSimply(input, language.Hint(cfg.DefaultLanguage))

		if talkJSON {
			data, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "language:      %s\n", resp.Language)
		fmt.Fprintf(out, "response_type: %s\n", resp.ResponseType)
		fmt.Fprintf(out, "cycle:         %d\n", resp.Cycle)
		fmt.Fprintln(out)
		fmt.Fprintln(out, resp.Response)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "— %s\n", resp.EpistemicNote)
		return nil
	},
}

func init() {
	talkCmd.Flags().BoolVar(&talkJSON, "json", false, "print the full response record as JSON")
}
