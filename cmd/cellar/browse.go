package main

import (
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	lifecycleadapter "github.com/aretw0/cellar/pkg/adapters/lifecycle"
	"github.com/aretw0/cellar/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	var (
		sortKey string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := core.ParseSortKey(sortKey)
			if err != nil {
				return fmt.Errorf("%w (valid: %v)", err, core.SortKeys())
			}

			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			notes := svc.List(key)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The cellar is empty.")
				return nil
			}
			printTable(cmd.OutOrStdout(), notes)
			return nil
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", string(core.SortDateAdded), "Sort key: date_added, vintage, region, rating or style")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			note, err := svc.Get(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the whole journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			notes := svc.Store().List()
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), notes)
			case "yaml", "yml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent(2)
				if err := encoder.Encode(notes); err != nil {
					return fmt.Errorf("failed to encode YAML: %w", err)
				}
				return encoder.Close()
			default:
				return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print note changes as the journal is rewritten on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var types []core.EventType
			for _, name := range only {
				t, err := core.ParseEventType(name)
				if err != nil {
					return err
				}
				types = append(types, t)
			}

			ctx := cmd.Context()
			svc, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			events, err := svc.Watch(ctx)
			if err != nil {
				return err
			}

			src := lifecycleadapter.NewSource(events, types...)
			if err := src.Start(ctx); err != nil {
				return err
			}
			a.logger.Info("watching journal", "path", a.cfg.Journal.Path, "key", svc.Store().Key(), "only", only)
			for e := range src.Events() {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "Event types to print: create, modify, delete")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the internal state of the journal components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer svc.Close()

			state := map[string]any{svc.ComponentType(): svc.State()}
			for _, part := range []any{svc.Store().Storage(), svc.Gateway()} {
				intro, ok := part.(introspection.Introspectable)
				if !ok {
					continue
				}
				name := fmt.Sprintf("%T", part)
				if c, ok := part.(introspection.Component); ok {
					name = c.ComponentType()
				}
				state[name] = intro.State()
			}
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}
}
