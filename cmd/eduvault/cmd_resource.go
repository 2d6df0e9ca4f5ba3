package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eduvault/eduvault/internal/app/services"
	"github.com/eduvault/eduvault/internal/bootstrap"
	"github.com/eduvault/eduvault/internal/pkg/apperrors"
)

var uploadReq services.UploadRequest

// uploadCmd adds a new resource record to the catalog
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a new resource record",
	Long: `Adds a new resource record to the catalog. Every field is optional;
missing fields fall back to defaults (title "Untitled", type pdf, grade 8,
uploader = current user, size 1 MB, rating 3). The upload is announced on
the notification feed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			r, err := app.Services.Catalog.Upload(uploadReq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %q as %s\n", r.Title, r.ID)
			return nil
		})
	},
}

// viewCmd shows one resource with its comments
var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a resource's details and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			r, ok := app.Services.Catalog.Get(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("No such resource."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDetail(r))
			return nil
		})
	},
}

// saveCmd toggles the saved flag
var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Toggle a resource's saved flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			r, err := app.Services.Catalog.ToggleSave(args[0])
			if err != nil {
				return err
			}
			if r == nil {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("No such resource."))
				return nil
			}
			state := "removed from saved"
			if r.Saved {
				state = "saved"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q %s\n", r.Title, state)
			return nil
		})
	},
}

// rateCmd sets a 1-5 rating
var rateCmd = &cobra.Command{
	Use:   "rate <id> <rating>",
	Short: "Rate a resource from 1 to 5",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return apperrors.ErrInvalidRating
		}
		return withApp(func(app *bootstrap.App) error {
			if err := app.Services.Catalog.Rate(args[0], value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Rating recorded")
			return nil
		})
	},
}

// commentCmd appends a comment
var commentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Comment on a resource",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			err := app.Services.Catalog.AddComment(args[0], args[1])
			if errors.Is(err, apperrors.ErrEmptyComment) {
				fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("Write comment"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Comment added")
			return nil
		})
	},
}

// downloadCmd records a simulated download
var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Record a simulated download",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *bootstrap.App) error {
			if err := app.Services.Catalog.RecordDownload(args[0]); err != nil {
				return err
			}
			if r, ok := app.Services.Catalog.Get(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Simulated download: %s\n", r.Title)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Simulated download recorded")
			}
			return nil
		})
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadReq.Title, "title", "", "resource title")
	uploadCmd.Flags().StringVar(&uploadReq.Type, "type", "", "file type (pdf, pptx, docx, ...)")
	uploadCmd.Flags().StringVar(&uploadReq.Grade, "grade", "", "grade level")
	uploadCmd.Flags().StringVar(&uploadReq.Uploader, "uploader", "", "uploader name (defaults to the current user)")
	uploadCmd.Flags().StringVar(&uploadReq.Size, "size", "", "size in MB")
	uploadCmd.Flags().StringVar(&uploadReq.Rating, "rating", "", "initial rating")

	rootCmd.AddCommand(uploadCmd, viewCmd, saveCmd, rateCmd, commentCmd, downloadCmd)
}
