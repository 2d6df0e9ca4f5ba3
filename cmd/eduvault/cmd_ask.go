package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/bootstrap"
)

// askCmd answers help questions with canned responses
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			answer := app.Services.Assistant.Ask(strings.Join(args, " "))
			if answer != "" {
				fmt.Fprintln(cmd.OutOrStdout(), answer)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
