package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/draft-prospects/internal/config"
	"github.com/riskibarqy/draft-prospects/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
)

const pipelineCSV = "player,position,id,draft_year,projected_spm,superstar,starter,role_player,bust\n" +
	"Karl-Anthony Towns,C,karl-anthony-towns,2015,1.2,0.3,0.4,0.2,0.1\n" +
	"Broken Row,PG\n" +
	"D'Angelo Russell,PG,dangelo-russell,2015,0.5,0.1,0.3,0.4,0.2\n"

func testPipelineConfig(t *testing.T, sourceURL string) config.Config {
	t.Helper()

	dir := t.TempDir()
	return config.Config{
		AppEnv:      config.EnvDev,
		ServiceName: "draft-prospects",
		DB: config.DBConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(dir, "db", "nba_db.sqlite"),
		},
		SourceURL:   sourceURL,
		DataDir:     filepath.Join(dir, "data"),
		CSVFileName: "nba_draft.csv",
	}
}

func TestRunPipeline_LoadsDatasetAndCleansUpDemoRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(pipelineCSV))
	}))
	defer server.Close()

	cfg := testPipelineConfig(t, server.URL)
	var logs bytes.Buffer
	logger := logging.NewWithWriter(&logs, logging.LevelInfo, logging.FormatJSON)

	if err := RunPipeline(context.Background(), cfg, logger); err != nil {
		t.Fatalf("run pipeline: %v", err)
	}

	db, err := sqldb.Open(context.Background(), cfg.DB.Driver, cfg.DB.DSN())
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer db.Close()

	items, err := sqldb.NewProspectRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected the two well-formed rows, got %+v", items)
	}
	for _, item := range items {
		if item.ID == demoProspectID {
			t.Fatalf("expected demo record to be deleted, got %+v", item)
		}
	}

	out := logs.String()
	for _, want := range []string{"skipping malformed row", "prospects listed", "prospect found", "Updated Player", "prospect not found"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in logs, got: %s", want, out)
		}
	}
}

func TestRunPipeline_StopsOnFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	sourceURL := server.URL
	server.Close()

	cfg := testPipelineConfig(t, sourceURL)
	if err := RunPipeline(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected fetch failure to stop the pipeline")
	}
}

func TestOpenStore_WrapsConnectionFailure(t *testing.T) {
	db := config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "missing", "nba_db.sqlite"),
	}

	_, err := OpenStore(context.Background(), db, logging.NewNop())
	if !errors.Is(err, usecase.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
