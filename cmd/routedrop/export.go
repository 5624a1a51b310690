package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/routedrop/schema"
)

func newExportCmd() *cobra.Command {
	var cfgPath string
	var tabRefs []string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export tab configuration to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, cfgPath)
			if err != nil {
				return err
			}
			var tabIDs []schema.TabID
			for _, ref := range tabRefs {
				tab, err := resolveTab(cmd.Context(), engine, ref)
				if err != nil {
					return err
				}
				tabIDs = append(tabIDs, tab.ID)
			}
			if err := engine.ExportConfig(cmd.Context(), args[0], tabIDs); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringArrayVar(&tabRefs, "tab", nil, "export only this tab (repeatable)")
	return cmd
}
