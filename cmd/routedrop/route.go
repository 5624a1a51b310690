package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/internal/format"
	"pkt.systems/routedrop/internal/logx"
	"pkt.systems/routedrop/schema"
)

func newRouteCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "route <tab> <source>...",
		Short: "Route files or folders into a tab's destination",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(cmd, cfgPath)
			if err != nil {
				return err
			}
			tab, err := resolveTab(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			log := pslog.Ctx(cmd.Context()).With("tab", tab.ID)
			ctx := logx.ContextWithTabLogger(cmd.Context(), log, tab.ID)
			resp, err := engine.SubmitDrop(ctx, schema.SubmitDropRequest{
				TabID:   tab.ID,
				Sources: args[1:],
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range format.DropSummary(resp) {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	return cmd
}
