package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"friday-assistant/internal/interpreter"
)

func newSummaryCmd(get func() *app) *cobra.Command {
	var stats interpreter.SummaryStats

	cmd := &cobra.Command{
		Use:       "summary daily|weekly",
		Short:     "Render a daily or weekly summary from stats",
		Example:   `  friday summary daily --completed 3 --pending 2 --total 5 --spent 42.5 --top food`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(interpreter.SummaryDaily), string(interpreter.SummaryWeekly)},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			out, err := a.uc.Summarize(cmd.Context(), interpreter.SummarizeInput{
				Kind:     interpreter.SummaryKind(args[0]),
				Stats:    stats,
				Settings: a.settings,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&stats.TasksCompleted, "completed", 0, "tasks completed")
	f.IntVar(&stats.TasksPending, "pending", 0, "tasks still pending")
	f.IntVar(&stats.TotalTasks, "total", 0, "total tasks")
	f.Float64Var(&stats.TotalSpent, "spent", 0, "total spent")
	f.IntVar(&stats.UpcomingEvents, "events", 0, "upcoming events")
	f.IntVar(&stats.MissedReminders, "missed", 0, "missed reminders")
	f.StringVar(&stats.TopCategory, "top", "", "top spending category")
	return cmd
}
