package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
)

func newReadCommand(s *session) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Show the record with an id",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = s.wrap("read", func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error {
		item, found, err := prospects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(cmd.OutOrStdout(), "No record found with ID: %s\n", id)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Record found: %+v\n", item)
		return nil
	})

	cmd.Flags().StringVar(&id, "id", "", "record id")
	markRequired(cmd, "id")

	return cmd
}
