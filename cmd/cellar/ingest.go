package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <image>",
		Short: "Identify a wine from a label photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			note, err := svc.IngestImage(cmd.Context(), core.NewImageFile(args[0], data))
			if err != nil {
				return explain(err)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		},
	}
}

func newResearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "research <query...>",
		Short: "Look a wine up by name and add it to the journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return core.ErrEmptyQuery
			}

			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			note, err := svc.IngestQuery(cmd.Context(), query)
			if err != nil {
				return explain(err)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a blank note to fill in with edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			note, err := svc.AddBlank(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note added: %s\n", note.ID)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Scan every label photo in a directory",
		Long: `Import runs label recognition on each file under dir matching --glob,
one at a time. A missing API key stops the batch; other failures are
reported and the batch continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid glob %q", pattern)
			}
			matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", dir, err)
			}
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No files matching %s in %s\n", pattern, dir)
				return nil
			}

			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			var added, failed int
			for _, rel := range matches {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, filepath.FromSlash(rel))
				data, err := os.ReadFile(path)
				if err != nil {
					a.logger.Error("failed to read image", "path", path, "error", err)
					failed++
					continue
				}

				note, err := svc.IngestImage(cmd.Context(), core.NewImageFile(path, data))
				if errors.Is(err, core.ErrConfiguration) {
					return explain(err)
				}
				if err != nil {
					a.logger.Error("import failed", "path", path, "error", err)
					failed++
					continue
				}
				added++
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", rel, note.ID, note.Name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d files (%d failed)\n", added, len(matches), failed)
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "glob", "**/*.{jpg,jpeg,png,webp,heic}", "Doublestar pattern selecting image files")
	return cmd
}
