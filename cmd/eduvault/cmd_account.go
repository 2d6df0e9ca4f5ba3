package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/bootstrap"
)

var registerRole string

// loginCmd signs in as an existing user
var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Sign in (replaces the current identity)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return withApp(func(app *bootstrap.App) error {
			user, err := app.Services.Account.Login(name, models.RoleStudent)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Name)
			return nil
		})
	},
}

// registerCmd registers a new identity
var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Register a new identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			user, err := app.Services.Account.Register(args[0], models.RoleType(registerRole))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered as %s (%s)\n", user.Name, user.Role)
			return nil
		})
	},
}

// logoutCmd resets the identity to Guest
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and return to the Guest identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			if _, err := app.Services.Account.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

// whoamiCmd shows the current identity
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			user := app.Services.Account.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Name, user.Role)
			return nil
		})
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", "", "role (Student, Teacher, ...; defaults to Student)")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
