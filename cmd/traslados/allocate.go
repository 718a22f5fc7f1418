package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	radicarRequestID string
	radicarPriority  string
	lastYear         int
)

var radicarCmd = &cobra.Command{
	Use:   "radicar",
	Short: "Issue the next radicado and record it in the audit ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		radicado, err := c.allocator.Allocate(ctx)
		if err != nil {
			return err
		}

		// The radicado doubles as the request key when the request was not
		// created through another channel first.
		requestID := radicarRequestID
		if requestID == "" {
			requestID = radicado
		}

		if _, err := c.ledger.LogRadicacion(ctx, requestID, radicado, radicarPriority, map[string]any{
			"channel": "cli",
		}); err != nil {
			return err
		}

		fmt.Println(radicado)
		return nil
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last radicado issued for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		year := lastYear
		if year == 0 {
			year = time.Now().UTC().Year()
		}

		radicado, ok, err := c.allocator.LastIssued(ctx, year)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("no radicados issued for %d\n", year)
			return nil
		}

		fmt.Println(radicado)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-year allocation counts, most recent year first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := c.allocator.Stats(ctx)
		if err != nil {
			return err
		}

		for _, yc := range stats {
			fmt.Printf("%d\t%d\n", yc.Year, yc.Count)
		}
		return nil
	},
}

func init() {
	radicarCmd.Flags().StringVar(&radicarRequestID, "request", "", "Request id to audit the numbering under (defaults to the radicado)")
	radicarCmd.Flags().StringVar(&radicarPriority, "priority", "normal", "Computed priority recorded with the numbering event")
	lastCmd.Flags().IntVar(&lastYear, "year", 0, "Calendar year (defaults to the current year)")
}
