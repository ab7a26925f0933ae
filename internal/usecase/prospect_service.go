package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/draft-prospects/internal/domain/prospect"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
)

// InsertProspectInput carries a full prospect row. Nothing is checked: any ID
// the loader can store, blank ones included, is accepted here too.
type InsertProspectInput struct {
	Player       string
	Position     string
	ID           string
	DraftYear    int32
	ProjectedSPM float64
	Superstar    float64
	Starter      float64
	RolePlayer   float64
	Bust         float64
}

// UpdateProspectInput targets every row with ID. Only the four listed
// attributes can change.
type UpdateProspectInput struct {
	ID              string
	NewPlayer       string
	NewPosition     string
	NewDraftYear    int32
	NewProjectedSPM float64
}

type ProspectService struct {
	repo   prospect.Repository
	logger *logging.Logger
}

func NewProspectService(repo prospect.Repository, logger *logging.Logger) *ProspectService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ProspectService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProspectService) Insert(ctx context.Context, in InsertProspectInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.Insert")
	defer span.End()

	item := prospect.Prospect{
		Player:       in.Player,
		Position:     in.Position,
		ID:           in.ID,
		DraftYear:    in.DraftYear,
		ProjectedSPM: in.ProjectedSPM,
		Superstar:    in.Superstar,
		Starter:      in.Starter,
		RolePlayer:   in.RolePlayer,
		Bust:         in.Bust,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return fmt.Errorf("insert prospect: %w", err)
	}

	s.logger.DebugContext(ctx, "prospect inserted", "id", in.ID)
	return nil
}

func (s *ProspectService) List(ctx context.Context) ([]prospect.Prospect, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	return items, nil
}

// GetByID returns the first row with id. A missing id is reported through the
// bool, not as an error.
func (s *ProspectService) GetByID(ctx context.Context, id string) (prospect.Prospect, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.GetByID")
	defer span.End()

	item, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return prospect.Prospect{}, false, fmt.Errorf("get prospect by id: %w", err)
	}
	return item, found, nil
}

func (s *ProspectService) Update(ctx context.Context, in UpdateProspectInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.Update")
	defer span.End()

	affected, err := s.repo.Update(ctx, prospect.Update{
		ID:           in.ID,
		Player:       in.NewPlayer,
		Position:     in.NewPosition,
		DraftYear:    in.NewDraftYear,
		ProjectedSPM: in.NewProjectedSPM,
	})
	if err != nil {
		return 0, fmt.Errorf("update prospect: %w", err)
	}

	s.logger.DebugContext(ctx, "prospect updated", "id", in.ID, "rows", affected)
	return affected, nil
}

func (s *ProspectService) Delete(ctx context.Context, id string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProspectService.Delete")
	defer span.End()

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete prospect: %w", err)
	}

	s.logger.InfoContext(ctx, "prospect deleted", "id", id, "rows", affected)
	return affected, nil
}
