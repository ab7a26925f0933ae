package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-prospects/internal/domain/prospect"
	qb "github.com/riskibarqy/draft-prospects/internal/platform/querybuilder"
)

type ProspectRepository struct {
	db     *sqlx.DB
	format qb.PlaceholderFormat
}

// Aliased so result column names are identical on SQLite (declared casing)
// and Postgres (folded casing).
var prospectSelectColumns = []string{
	"Player AS player",
	"Position AS position",
	"ID AS id",
	"Draft_Year AS draft_year",
	"Projected_SPM AS projected_spm",
	"Superstar AS superstar",
	"Starter AS starter",
	"Role_Player AS role_player",
	"Bust AS bust",
}

func NewProspectRepository(db *sqlx.DB) *ProspectRepository {
	return &ProspectRepository{
		db:     db,
		format: placeholderFormat(db.DriverName()),
	}
}

func (r *ProspectRepository) Insert(ctx context.Context, item prospect.Prospect) error {
	if err := insertProspect(ctx, r.db, r.format, item); err != nil {
		return fmt.Errorf("insert prospect: %w", err)
	}
	return nil
}

func (r *ProspectRepository) List(ctx context.Context) ([]prospect.Prospect, error) {
	query, args, err := qb.Select(prospectSelectColumns...).
		PlaceholderFormat(r.format).
		From(tableName).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select prospects query: %w", err)
	}

	var rows []prospectTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select prospects: %w", err)
	}

	out := make([]prospect.Prospect, 0, len(rows))
	for _, row := range rows {
		out = append(out, prospectFromModel(row))
	}

	return out, nil
}

func (r *ProspectRepository) GetByID(ctx context.Context, id string) (prospect.Prospect, bool, error) {
	query, args, err := qb.Select(prospectSelectColumns...).
		PlaceholderFormat(r.format).
		From(tableName).
		Where(qb.Eq("ID", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return prospect.Prospect{}, false, fmt.Errorf("build select prospect by id query: %w", err)
	}

	var row prospectTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prospect.Prospect{}, false, nil
		}
		return prospect.Prospect{}, false, fmt.Errorf("select prospect by id: %w", err)
	}

	return prospectFromModel(row), true, nil
}

func (r *ProspectRepository) Update(ctx context.Context, u prospect.Update) (int64, error) {
	query, args, err := qb.Update(tableName).
		PlaceholderFormat(r.format).
		Set("Player", u.Player).
		Set("Position", u.Position).
		Set("Draft_Year", u.DraftYear).
		Set("Projected_SPM", u.ProjectedSPM).
		Where(qb.Eq("ID", u.ID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build update prospect query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update prospect: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read updated prospect count: %w", err)
	}

	return affected, nil
}

func (r *ProspectRepository) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := qb.DeleteFrom(tableName).
		PlaceholderFormat(r.format).
		Where(qb.Eq("ID", id)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete prospect query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete prospect: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read deleted prospect count: %w", err)
	}

	return affected, nil
}

// ReplaceAll clears the table and inserts items in one transaction, so a
// failure part-way leaves the previous contents in place.
func (r *ProspectRepository) ReplaceAll(ctx context.Context, items []prospect.Prospect) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for prospect load: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearSQL, clearArgs, err := qb.DeleteFrom(tableName).PlaceholderFormat(r.format).ToSQL()
	if err != nil {
		return fmt.Errorf("build clear prospects query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearSQL, clearArgs...); err != nil {
		return fmt.Errorf("clear prospects: %w", err)
	}

	for idx, item := range items {
		if err := insertProspect(ctx, tx, r.format, item); err != nil {
			return fmt.Errorf("insert prospect %d (id=%s): %w", idx, item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit prospect load: %w", err)
	}
	return nil
}

func insertProspect(ctx context.Context, exec sqlx.ExecerContext, format qb.PlaceholderFormat, item prospect.Prospect) error {
	query, args, err := qb.InsertModel(format, tableName, prospectToModel(item))
	if err != nil {
		return fmt.Errorf("build insert prospect query: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

func prospectToModel(p prospect.Prospect) prospectTableModel {
	return prospectTableModel{
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

func prospectFromModel(row prospectTableModel) prospect.Prospect {
	return prospect.Prospect{
		Player:       row.Player,
		Position:     row.Position,
		ID:           row.ID,
		DraftYear:    row.DraftYear,
		ProjectedSPM: row.ProjectedSPM,
		Superstar:    row.Superstar,
		Starter:      row.Starter,
		RolePlayer:   row.RolePlayer,
		Bust:         row.Bust,
	}
}
