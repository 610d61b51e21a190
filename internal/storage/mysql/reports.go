package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"foodi/internal/domain"
)

// ReportRepo persists wait reports. created_at is stored as the ISO-8601
// text the store hands over and parsed only when the store loads.
type ReportRepo struct{ db *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) LoadAll(ctx context.Context) (out []domain.ReportRecord, err error) {
	defer func(t time.Time) { observe("load_reports", t, err) }(time.Now())

	rows, err := r.db.QueryContext(ctx, loadReportsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.ReportRecord
		if err := rows.Scan(&rec.ID, &rec.RestaurantID, &rec.WaitMinutes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReportRepo) Append(ctx context.Context, rec domain.ReportRecord) (err error) {
	defer func(t time.Time) { observe("append_report", t, err) }(time.Now())
	_, err = r.db.ExecContext(ctx, insertReportSQL, rec.ID, rec.RestaurantID, rec.WaitMinutes, rec.CreatedAt)
	return err
}

// SaveAll writes records in one batch. Ids already present are kept as they
// are, so the call is safe to repeat.
func (r *ReportRepo) SaveAll(ctx context.Context, rs []domain.ReportRecord) (err error) {
	if len(rs) == 0 {
		return nil
	}
	defer func(t time.Time) { observe("save_reports", t, err) }(time.Now())

	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*4)
	for _, rec := range rs {
		values = append(values, "(?,?,?,?)")
		args = append(args, rec.ID, rec.RestaurantID, rec.WaitMinutes, rec.CreatedAt)
	}
	q := insertReportsPrefix + strings.Join(values, ",") + insertReportsOnDup
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
