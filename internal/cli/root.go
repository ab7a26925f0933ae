package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/draft-prospects/internal/app"
	"github.com/riskibarqy/draft-prospects/internal/config"
	"github.com/riskibarqy/draft-prospects/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/draft-prospects/internal/observability"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitStoreError   = 3
)

// ErrUsage marks failures reported before a command body runs: unknown
// flags, unparsable values, missing required flags.
var ErrUsage = errors.New("usage error")

var cliTracer = otel.Tracer("draft-prospects/internal/cli")

// ExitCodeForError maps a command error to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, usecase.ErrInvalidInput):
		return ExitUsageError
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return ExitStoreError
	default:
		return ExitGeneralError
	}
}

// session carries what a single invocation needs once its flags are valid.
type session struct {
	started bool
}

type runFunc func(ctx context.Context, cmd *cobra.Command, prospects *usecase.ProspectService) error

// NewRootCommand builds the draftdb command tree. Command results are written
// to the command's out stream; logs go to stderr.
func NewRootCommand() (*cobra.Command, *session) {
	s := &session{}
	root := &cobra.Command{
		Use:   "draftdb",
		Short: "Manage NBA draft prospect records",
		Long: `draftdb reads and edits rows of the nba_draft table loaded by the seed pipeline.

Exit Codes:
  0  - Success
  1  - Operation failed
  2  - CLI usage error (invalid arguments or flags)
  3  - Store connection failed`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		newInsertCommand(s),
		newReadCommand(s),
		newUpdateCommand(s),
		newDeleteCommand(s),
		newListCommand(s),
		newVersionCommand(),
	)
	return root, s
}

// Execute runs draftdb with the process arguments and returns the exit code.
// Diagnostics are written to stderr.
func Execute(ctx context.Context) int {
	root, s := NewRootCommand()
	return run(ctx, root, s, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, s *session, stderr io.Writer) int {
	err := root.ExecuteContext(ctx)
	if err != nil && !s.started && !errors.Is(err, ErrUsage) {
		err = fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCodeForError(err)
}

// wrap turns fn into a cobra RunE that loads configuration, sets up logging
// and tracing, and opens the store before calling fn.
func (s *session) wrap(name string, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		s.started = true

		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := logging.New(cfg.LogLevel, cfg.LogFormat)
		logging.SetDefault(logger)
		defer func() { _ = logger.Sync() }()

		shutdown, err := observability.InitUptrace(cfg, logger)
		if err != nil {
			return fmt.Errorf("init uptrace: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("shutdown uptrace", "error", err)
			}
		}()

		ctx, span := cliTracer.Start(cmd.Context(), "cli."+name)
		defer span.End()

		db, err := app.OpenStore(ctx, cfg.DB, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		prospects := usecase.NewProspectService(sqldb.NewProspectRepository(db), logger)
		return fn(ctx, cmd, prospects)
	}
}
