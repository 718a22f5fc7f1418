package main

import (
	"fmt"

	"github.com/spf13/cobra"

	adapterotel "github.com/campusops/traslados/internal/adapter/otel"
	adapterriver "github.com/campusops/traslados/internal/adapter/river"
	"github.com/campusops/traslados/internal/domain"
)

var resolveRequestID string

var resolveCmd = &cobra.Command{
	Use:   "resolve <programRef>",
	Short: "Route a request to a target program, with fallback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		candidate := args[0]
		result := c.resolver.Resolve(ctx, candidate, resolveRequestID)

		if result.FallbackUsed {
			if _, err := c.ledger.LogFallback(ctx, resolveRequestID, candidate, result.AssignedProgramID, result.Reason); err != nil {
				return err
			}
		}
		if _, err := c.ledger.LogRouteAssigned(ctx, resolveRequestID, result.AssignedProgramID, "cli resolve", result, map[string]any{
			"candidate": candidate,
		}); err != nil {
			return err
		}

		if domain.ShouldNotifyAdmins(result) {
			client, err := adapterriver.Setup(ctx, c.store.DB())
			if err != nil {
				return fmt.Errorf("alert queue: %w", err)
			}
			publisher := adapterotel.NewTracingAlertPublisher(adapterriver.NewPublisher(client))
			if err := publisher.PublishFallback(ctx, resolveRequestID, result); err != nil {
				return err
			}
		}

		fmt.Printf("assigned: %s\n", result.AssignedProgramID)
		fmt.Printf("valid: %t fallback: %t\n", result.IsValid, result.FallbackUsed)
		if result.Reason != "" {
			fmt.Printf("reason: %s\n", result.Reason)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRequestID, "request", "", "Request id the routing decision belongs to")
	_ = resolveCmd.MarkFlagRequired("request")
}
