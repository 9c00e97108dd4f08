package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Reader struct {
	exec executor
}

var _ IGoalTable = (*Reader)(nil)

func NewReader(exec executor) *Reader {
	return &Reader{exec: exec}
}

const goalColumns = "id, name, target_amount, saved_amount, monthly_contribution, target_date, created_at"

// FindByID returns the goal, or nil when it does not exist.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	row := r.exec.QueryRowContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE id = $1", id)

	g, err := scanGoal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// List returns all goals, largest target first.
func (r *Reader) List(ctx context.Context) ([]*Goal, error) {
	rows, err := r.exec.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM goals ORDER BY target_amount DESC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

func scanGoal(scan func(dest ...any) error) (*Goal, error) {
	var g Goal
	var targetDate sql.NullTime
	err := scan(&g.ID, &g.Name, &g.TargetAmount, &g.SavedAmount, &g.MonthlyContribution, &targetDate, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	if targetDate.Valid {
		g.TargetDate = &targetDate.Time
	}
	return &g, nil
}
