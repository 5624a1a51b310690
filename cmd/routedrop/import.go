package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/routedrop/schema"
)

func newImportCmd() *cobra.Command {
	var cfgPath string
	var mode string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tab configuration from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode, err := schema.ParseImportMode(mode)
			if err != nil {
				return err
			}
			engine, _, err := newEngine(cmd, cfgPath)
			if err != nil {
				return err
			}
			resp, err := engine.ImportConfig(cmd.Context(), args[0], importMode)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d tabs, %d total\n", resp.Added, len(resp.Tabs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&mode, "mode", string(schema.ImportMerge), "import mode (merge or replace)")
	return cmd
}
