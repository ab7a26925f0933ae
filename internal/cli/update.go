package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
)

func newUpdateCommand(s *session) *cobra.Command {
	var in usecase.UpdateProspectInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update player, position, draft year and projected SPM of a record",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = s.wrap("update", func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error {
		// Zero matched rows is not an error.
		if _, err := prospects.Update(ctx, in); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated record with ID: %s\n", in.ID)
		return nil
	})

	flags := cmd.Flags()
	flags.StringVar(&in.ID, "id", "", "record id")
	flags.StringVar(&in.NewPlayer, "new-player", "", "new player name")
	flags.StringVar(&in.NewPosition, "new-position", "", "new position")
	flags.Int32Var(&in.NewDraftYear, "new-draft-year", 0, "new draft year")
	flags.Float64Var(&in.NewProjectedSPM, "new-projected-spm", 0, "new projected SPM")
	markRequired(cmd, "id", "new-player", "new-position", "new-draft-year", "new-projected-spm")

	return cmd
}
