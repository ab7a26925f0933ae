package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riskibarqy/draft-prospects/external/dataset"
	"github.com/riskibarqy/draft-prospects/internal/config"
	"github.com/riskibarqy/draft-prospects/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"go.opentelemetry.io/otel"
)

const demoProspectID = "new-player"

var pipelineTracer = otel.Tracer("draft-prospects/internal/app")

// RunPipeline fetches the dataset, loads it into the store, and then walks a
// single record through insert, update, read and delete. It stops at the
// first failing step.
func RunPipeline(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	ctx, span := pipelineTracer.Start(ctx, "app.RunPipeline")
	defer span.End()

	client := dataset.NewClient(dataset.ClientConfig{Logger: logger})
	if _, err := client.Download(ctx, cfg.SourceURL, cfg.CSVFileName, cfg.DataDir); err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := OpenStore(ctx, cfg.DB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqldb.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrStoreUnavailable, err)
	}

	repo := sqldb.NewProspectRepository(db)
	if _, err := usecase.NewLoadService(repo, logger).LoadFile(ctx, cfg.CSVPath()); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	prospects := usecase.NewProspectService(repo, logger)
	items, err := prospects.List(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		logger.DebugContext(ctx, "prospect", "id", item.ID, "player", item.Player, "position", item.Position, "draft_year", item.DraftYear)
	}
	logger.InfoContext(ctx, "prospects listed", "count", len(items))

	return runDemo(ctx, prospects, logger)
}

func runDemo(ctx context.Context, prospects *usecase.ProspectService, logger *logging.Logger) error {
	err := prospects.Insert(ctx, usecase.InsertProspectInput{
		Player:       "New Player",
		Position:     "SG",
		ID:           demoProspectID,
		DraftYear:    2023,
		ProjectedSPM: 0.5,
		Superstar:    0.1,
		Starter:      0.3,
		RolePlayer:   0.4,
		Bust:         0.2,
	})
	if err != nil {
		return err
	}

	if _, err := prospects.Update(ctx, usecase.UpdateProspectInput{
		ID:              demoProspectID,
		NewPlayer:       "Updated Player",
		NewPosition:     "PF",
		NewDraftYear:    2023,
		NewProjectedSPM: 0.6,
	}); err != nil {
		return err
	}

	if err := logLookup(ctx, prospects, logger); err != nil {
		return err
	}

	if _, err := prospects.Delete(ctx, demoProspectID); err != nil {
		return err
	}

	return logLookup(ctx, prospects, logger)
}

func logLookup(ctx context.Context, prospects *usecase.ProspectService, logger *logging.Logger) error {
	item, found, err := prospects.GetByID(ctx, demoProspectID)
	if err != nil {
		return err
	}
	if !found {
		logger.InfoContext(ctx, "prospect not found", "id", demoProspectID)
		return nil
	}
	logger.InfoContext(ctx, "prospect found",
		"id", item.ID,
		"player", item.Player,
		"position", item.Position,
		"draft_year", item.DraftYear,
		"projected_spm", item.ProjectedSPM,
	)
	return nil
}
