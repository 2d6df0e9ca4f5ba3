package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/bootstrap"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
)

// notificationsCmd lists the notification feed
var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "List notifications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderNotifications(app.Services.Notification.List()))
			return nil
		})
	},
}

// reportCmd reports a resource
var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Report a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			r, ok := app.Services.Catalog.Get(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("No such resource."))
				return nil
			}
			if _, err := app.Services.Notification.Report(r.Title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reported %q\n", r.Title)
			return nil
		})
	},
}

// feedbackCmd records feedback
var feedbackCmd = &cobra.Command{
	Use:   "feedback <text>",
	Short: "Send feedback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			_, err := app.Services.Notification.Feedback(args[0])
			if errors.Is(err, apperrors.ErrEmptyFeedback) {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("Write feedback"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Feedback received")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd, reportCmd, feedbackCmd)
}
