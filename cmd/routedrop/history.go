package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/routedrop/internal/format"
	"pkt.systems/routedrop/schema"
)

func newHistoryCmd() *cobra.Command {
	var cfgPath string
	var limit int
	cmd := &cobra.Command{
		Use:   "history <tab>",
		Short: "Show a tab's routing history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			resp, err := engine.TabHistory(cmd.Context(), schema.TabHistoryRequest{TabID: tab.ID})
			if err != nil {
				return err
			}
			entries := resp.Entries
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			out := cmd.OutOrStdout()
			for _, line := range format.HistoryLines(entries) {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many entries (0 for all)")
	return cmd
}
