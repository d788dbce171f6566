package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termfx/javarefactor/store"
)

func newHistoryCommand(databaseURL *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "history <path>",
		Short: "List recorded transactions for a source file, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(*databaseURL, *debug)
			if err != nil {
				return err
			}

			recs, err := store.ByPath(db, args[0])
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded transactions")
				return nil
			}

			for _, rec := range recs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  changed=%v  fixes=%d\n",
					rec.ID, rec.CreatedAt.Format("2006-01-02T15:04:05"), rec.Changed, len(rec.Fixes))
				for _, fix := range rec.Fixes {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s node=%d\n", fix.Kind, fix.TargetNodeID)
				}
			}
			return nil
		},
	}
}
