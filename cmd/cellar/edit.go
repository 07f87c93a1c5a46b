package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cellar/pkg/core"
)

func newEditCmd(a *app) *cobra.Command {
	text := map[core.Field]*string{}
	axes := map[core.Axis]*string{}
	var (
		rating int
		style  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note",
		Long: `Edit applies the given changes to a working copy of the note and saves it.
Characteristic flags take an absolute value (3) or a step (+1, -2); steps
are clamped to 1..5.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			draft, err := svc.Edit(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			for field, v := range text {
				if flags.Changed(flagName(string(field))) {
					if err := draft.SetText(field, *v); err != nil {
						return err
					}
				}
			}
			if flags.Changed("rating") {
				if err := draft.SetRating(rating); err != nil {
					return fmt.Errorf("rating: %w", err)
				}
			}
			if flags.Changed("style") {
				s, err := core.ParseStyle(style)
				if err != nil {
					return err
				}
				if err := draft.SetStyle(s); err != nil {
					return err
				}
			}
			for axis, v := range axes {
				if flags.Changed(string(axis)) {
					if err := applyAxis(draft, axis, *v); err != nil {
						return err
					}
				}
			}

			if !draft.Dirty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to change.")
				return nil
			}
			if err := svc.Commit(cmd.Context(), draft); err != nil {
				return err
			}
			printNote(cmd.OutOrStdout(), draft.Note())
			return nil
		},
	}

	for _, f := range []core.Field{core.FieldName, core.FieldWinery, core.FieldVarietal, core.FieldRegion, core.FieldVintage, core.FieldUserNotes} {
		text[f] = cmd.Flags().String(flagName(string(f)), "", "New "+flagName(string(f)))
	}
	for _, axis := range core.Axes() {
		axes[axis] = cmd.Flags().String(string(axis), "", "Set (N) or step (+N/-N) the "+string(axis))
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&style, "style", "", "Style: Red, White, Rosé, Sparkling, Sweet or Fortified")
	return cmd
}

// flagName maps a field to its kebab-case flag ("userNotes" -> "notes").
func flagName(field string) string {
	if field == string(core.FieldUserNotes) {
		return "notes"
	}
	return field
}

// applyAxis handles "3", "+1" and "-2".
func applyAxis(d *core.Draft, axis core.Axis, raw string) error {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid value %q", axis, raw)
	}
	if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "-") {
		_, err = d.AdjustCharacteristic(axis, n)
		return err
	}
	if err := d.SetCharacteristic(axis, n); err != nil {
		return fmt.Errorf("%s: %w", axis, err)
	}
	return nil
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			var confirm core.Confirmer = core.ConfirmFunc(func(core.WineNote) bool { return true })
			if !yes {
				confirm = prompt(a.stdin, cmd.OutOrStdout())
			}

			deleted, err := svc.Delete(cmd.Context(), args[0], confirm)
			if err != nil {
				return err
			}
			if deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// prompt asks on out and reads a yes/no answer from in.
func prompt(in io.Reader, out io.Writer) core.Confirmer {
	return core.ConfirmFunc(func(n core.WineNote) bool {
		fmt.Fprintf(out, "Delete %q (%s)? [y/N] ", n.Name, n.Vintage)
		line, _ := bufio.NewReader(in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
