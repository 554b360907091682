package main

import (
	"os"
	"os/signal"

	"github.com/amonks/lists/internal/ui"
	"github.com/amonks/lists/list"
	"github.com/amonks/lists/shell"
	"github.com/spf13/cobra"
)

const shellPrompt = "lists> "

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage a session of todo lists interactively",
	Long: `Reads commands from standard input, one per line. The lists live for as long
as the shell does. Type help for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	opts := shell.Options{
		Color: ui.ColorEnabled(out),
		Width: ui.Width(out),
	}
	if ui.IsTerminal(in) {
		opts.Prompt = shellPrompt
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return shell.New(list.NewStore(), out, opts).Run(ctx, in)
}
