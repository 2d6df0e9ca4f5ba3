package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/bootstrap"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
	"github.com/eduvault/eduvault/internal/pkg/helpers"
)

var (
	browseGrade  string
	browseSearch string

	uploadsType   string
	uploadsGrade  string
	uploadsSearch string
)

// browseCmd lists the catalog newest-first
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse recent resources, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			list := app.Services.Catalog.ListRecent(browseGrade, browseSearch)
			fmt.Fprintln(cmd.OutOrStdout(), renderResourceList(list, "No resources found."))
			return nil
		})
	},
}

// uploadsCmd lists the catalog in upload order with type/grade filters
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "List all uploads in native order, with type and grade filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			list, err := app.Services.Catalog.ListUploads(uploadsType, uploadsGrade, uploadsSearch)
			if errors.Is(err, apperrors.ErrNoUploadsFound) {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("No uploads found."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResourceList(list, "No uploads found."))
			return nil
		})
	},
}

// mineCmd lists the current user's uploads
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List resources uploaded by the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			user := app.Services.Account.Current()
			list := app.Services.Catalog.ListMyUploads(user.Name)
			fmt.Fprintln(cmd.OutOrStdout(), renderResourceList(list, "No uploads yet."))
			return nil
		})
	},
}

// savedCmd lists saved resources
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			list := app.Services.Catalog.ListSaved()
			fmt.Fprintln(cmd.OutOrStdout(), renderResourceList(list, "Nothing saved yet."))
			return nil
		})
	},
}

// downloadsCmd replays the download history against the current catalog
var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "List downloaded resources, in download order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			list := app.Services.Catalog.ListDownloaded()
			fmt.Fprintln(cmd.OutOrStdout(), renderResourceList(list, "Nothing downloaded yet."))
			return nil
		})
	},
}

// teachersCmd aggregates the catalog by uploader
var teachersCmd = &cobra.Command{
	Use:   "teachers",
	Short: "Show uploader profiles aggregated from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderTeachers(app.Services.Catalog.AggregateByUploader()))
			return nil
		})
	},
}

// summaryCmd shows the dashboard counters
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show catalog counters for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			today := helpers.ISODate(time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(app.Services.Catalog.SummaryCounts(today)))
			return nil
		})
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseGrade, "grade", "all", "filter by grade level")
	browseCmd.Flags().StringVar(&browseSearch, "search", "", "substring search over title, uploader and type")

	uploadsCmd.Flags().StringVar(&uploadsType, "type", "all", "filter by file type")
	uploadsCmd.Flags().StringVar(&uploadsGrade, "grade", "all", "filter by grade level")
	uploadsCmd.Flags().StringVar(&uploadsSearch, "search", "", "substring search over title and uploader")

	rootCmd.AddCommand(browseCmd, uploadsCmd, mineCmd, savedCmd, downloadsCmd, teachersCmd, summaryCmd)
}
