package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"friday-assistant/internal/interpreter"
)

func newChatCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <text>",
		Short: "Get a conversational reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			out := a.uc.Chat(cmd.Context(), interpreter.ChatInput{
				Utterance: strings.Join(args, " "),
				Settings:  a.settings,
			})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
			return err
		},
	}
}
