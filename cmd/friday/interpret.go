package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"friday-assistant/internal/interpreter"
)

func newInterpretCmd(get func() *app) *cobra.Command {
	var (
		nowFlag string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "interpret <text>",
		Short: "Interpret an utterance into an intent record",
		Example: `  friday interpret "remind me to call mom tomorrow at 6pm"
  friday interpret --json --now 2026-10-14T10:00:00Z "spent 450 on groceries"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			in := interpreter.InterpretInput{
				Utterance: strings.Join(args, " "),
				Settings:  a.settings,
			}
			if nowFlag != "" {
				now, err := time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				in.Now = now
			}

			out := a.uc.Interpret(cmd.Context(), in)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Record)
			}
			return writeRecord(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time (RFC3339), defaults to the current time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record in its wire format")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRecord prints the record fields that are set, one per line, then the reply.
func writeRecord(w io.Writer, out interpreter.InterpretOutput) error {
	raw, err := json.Marshal(out.Record)
	if err != nil {
		return err
	}
	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "intent:   %s\n", out.Record.Kind)
	for _, key := range []string{"title", "amount", "category", "date", "time", "priority", "memoryType"} {
		if v, ok := flat[key]; ok && v != nil {
			fmt.Fprintf(&b, "%-9s %v\n", key+":", v)
		}
	}
	fmt.Fprintf(&b, "source:   %s", out.Source)
	if out.FallbackReason != "" {
		fmt.Fprintf(&b, " (%s)", out.FallbackReason)
	}
	fmt.Fprintf(&b, "\n\n%s\n", out.Record.Reply)

	_, err = io.WriteString(w, b.String())
	return err
}
