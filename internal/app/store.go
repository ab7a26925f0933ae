package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-prospects/internal/config"
	"github.com/riskibarqy/draft-prospects/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
	"github.com/riskibarqy/draft-prospects/internal/usecase"
)

// OpenStore connects to the configured store. Connection failures wrap
// usecase.ErrStoreUnavailable.
func OpenStore(ctx context.Context, db config.DBConfig, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	conn, err := sqldb.Open(ctx, db.Driver, db.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrStoreUnavailable, err)
	}

	logger.DebugContext(ctx, "store opened", "driver", db.Driver, "store", storeLabel(db))
	return conn, nil
}
