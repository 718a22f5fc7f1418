package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusops/traslados/internal/domain"
)

var (
	validateReason string
	validatePerms  []string
)

var validateCmd = &cobra.Command{
	Use:   "validate <from> <to>",
	Short: "Check a state transition against the rule table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, cleanup, err := openCore(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		description, err := c.governor.Validate(ctx,
			domain.State(args[0]), domain.State(args[1]),
			parsePermissions(validatePerms), validateReason,
		)
		if err != nil {
			return err
		}

		fmt.Printf("allowed: %s\n", description)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateReason, "reason", "", "Justification for the transition")
	validateCmd.Flags().StringSliceVar(&validatePerms, "perms", nil, "Actor permissions (comma-separated)")
}
