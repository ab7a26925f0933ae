package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
)

func newInsertCommand(s *session) *cobra.Command {
	var in usecase.InsertProspectInput

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a prospect record",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = s.wrap("insert", func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error {
		if err := prospects.Insert(ctx, in); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted record with ID: %s\n", in.ID)
		return nil
	})

	flags := cmd.Flags()
	flags.StringVar(&in.Player, "player", "", "player name")
	flags.StringVar(&in.Position, "position", "", "position")
	flags.StringVar(&in.ID, "id", "", "record id")
	flags.Int32Var(&in.DraftYear, "draft-year", 0, "draft year")
	flags.Float64Var(&in.ProjectedSPM, "projected-spm", 0, "projected SPM")
	flags.Float64Var(&in.Superstar, "superstar", 0, "superstar probability")
	flags.Float64Var(&in.Starter, "starter", 0, "starter probability")
	flags.Float64Var(&in.RolePlayer, "role-player", 0, "role player probability")
	flags.Float64Var(&in.Bust, "bust", 0, "bust probability")
	markRequired(cmd, "player", "position", "id", "draft-year", "projected-spm", "superstar", "starter", "role-player", "bust")

	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		// Only fails for an undefined flag name.
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
