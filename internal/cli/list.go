package cli

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/draft-prospects/internal/domain/prospect"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type prospectView struct {
	Player       string  `json:"player"`
	Position     string  `json:"position"`
	ID           string  `json:"id"`
	DraftYear    int32   `json:"draft_year"`
	ProjectedSPM float64 `json:"projected_spm"`
	Superstar    float64 `json:"superstar"`
	Starter      float64 `json:"starter"`
	RolePlayer   float64 `json:"role_player"`
	Bust         float64 `json:"bust"`
}

func newListCommand(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every record in storage order",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("%w: invalid --format %q: valid values are %s, %s", ErrUsage, format, formatText, formatJSON)
			}
			return nil
		},
	}
	cmd.RunE = s.wrap("list", func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error {
		items, err := prospects.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == formatJSON {
			views := make([]prospectView, 0, len(items))
			for _, item := range items {
				views = append(views, toProspectView(item))
			}
			raw, err := sonic.Marshal(views)
			if err != nil {
				return fmt.Errorf("encode prospects: %w", err)
			}
			fmt.Fprintln(out, string(raw))
			return nil
		}

		for _, item := range items {
			fmt.Fprintf(out, "Record: %+v\n", item)
		}
		return nil
	})

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or json")

	return cmd
}

func toProspectView(p prospect.Prospect) prospectView {
	return prospectView{
		Player:       p.Player,
		Position:     p.Position,
		ID:           p.ID,
		DraftYear:    p.DraftYear,
		ProjectedSPM: p.ProjectedSPM,
		Superstar:    p.Superstar,
		Starter:      p.Starter,
		RolePlayer:   p.RolePlayer,
		Bust:         p.Bust,
	}
}
