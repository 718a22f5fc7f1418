package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <requestID>",
	Short: "Show the audit trail for a request, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		entries, err := c.ledger.History(ctx, args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Printf("no history for %s\n", args[0])
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s\t%s\t%s\n", e.Timestamp.Format("2006-01-02T15:04:05Z"), e.EventType, e.ActorID)
		}
		return nil
	},
}
