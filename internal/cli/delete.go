package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
)

func newDeleteCommand(s *session) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every record with an id",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = s.wrap("delete", func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error {
		if _, err := prospects.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted record with ID: %s\n", id)
		return nil
	})

	cmd.Flags().StringVar(&id, "id", "", "record id")
	markRequired(cmd, "id")

	return cmd
}
