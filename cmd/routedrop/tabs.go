package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pkt.systems/routedrop/internal/format"
	"pkt.systems/routedrop/schema"
)

func newTabsCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Manage destination tabs",
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")

	cmd.AddCommand(newTabsListCmd(&cfgPath))
	cmd.AddCommand(newTabsAddCmd(&cfgPath))
	cmd.AddCommand(newTabsSetCmd(&cfgPath))
	cmd.AddCommand(newTabsRemoveCmd(&cfgPath))
	cmd.AddCommand(newTabsMoveCmd(&cfgPath))
	cmd.AddCommand(newTabsClearCmd(&cfgPath))

	return cmd
}

func newTabsListCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tabs in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			resp, err := engine.ListTabs(cmd.Context(), schema.ListTabsRequest{})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range format.TabLines(resp.Tabs) {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newTabsAddCmd(cfgPath *string) *cobra.Command {
	var path string
	var mode string
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a tab",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			var name schema.TabName
			if len(args) == 1 {
				name = schema.TabName(args[0])
			}
			resp, err := engine.CreateTab(cmd.Context(), schema.CreateTabRequest{
				Name: name,
				Path: path,
				Mode: schema.OperationMode(mode),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), format.TabLine(resp.Tab))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "destination directory")
	cmd.Flags().StringVar(&mode, "mode", "", "routing mode (copy_replace, copy_new, move_replace, move_new)")
	return cmd
}

func newTabsSetCmd(cfgPath *string) *cobra.Command {
	var name string
	var path string
	var mode string
	cmd := &cobra.Command{
		Use:   "set <tab>",
		Short: "Update a tab's name, destination, or mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			req := schema.UpdateTabRequest{TabID: tab.ID}
			if cmd.Flags().Changed("name") {
				value := schema.TabName(name)
				req.Name = &value
			}
			if cmd.Flags().Changed("path") {
				req.Path = &path
			}
			if cmd.Flags().Changed("mode") {
				value := schema.OperationMode(mode)
				req.Mode = &value
			}
			resp, err := engine.UpdateTab(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), format.TabLine(resp.Tab))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new tab name")
	cmd.Flags().StringVar(&path, "path", "", "new destination directory")
	cmd.Flags().StringVar(&mode, "mode", "", "new routing mode")
	return cmd
}

func newTabsRemoveCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tab>",
		Short: "Delete a tab and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			resp, err := engine.DeleteTab(cmd.Context(), schema.DeleteTabRequest{TabID: tab.ID})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", resp.Tab.Name)
			return nil
		},
	}
}

func newTabsMoveCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <tab> <position>",
		Short: "Move a tab to a new position (1-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position %q is not a number", args[1])
			}
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			resp, err := engine.ReorderTab(cmd.Context(), schema.ReorderTabRequest{
				TabID: tab.ID,
				Index: position - 1,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range format.TabLines(resp.Tabs) {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newTabsClearCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <tab>",
		Short: "Clear a tab's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, *cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			resp, err := engine.ClearHistory(cmd.Context(), schema.ClearHistoryRequest{TabID: tab.ID})
			if err != nil {
				return err
			}
			word := "entries"
			if resp.Cleared == 1 {
				word = "entry"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %d %s from %s\n", resp.Cleared, word, resp.Tab.Name)
			return nil
		},
	}
}
