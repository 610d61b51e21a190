package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"

	"foodi/internal/adapters/observability"
	"foodi/internal/domain"
)

const errDupEntry = 1062

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// observe records one storage call in the store metrics.
func observe(op string, start time.Time, err error) {
	observability.ObserveStore("mysql", op, err, time.Since(start))
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListAvailable(ctx context.Context) (out []domain.Restaurant, err error) {
	defer func(t time.Time) { observe("list_available", t, err) }(time.Now())
	return r.list(ctx, listAvailableSQL)
}

func (r *Repo) ListAll(ctx context.Context) (out []domain.Restaurant, err error) {
	defer func(t time.Time) { observe("list_all", t, err) }(time.Now())
	return r.list(ctx, listAllSQL)
}

func (r *Repo) list(ctx context.Context, q string) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (out domain.Restaurant, err error) {
	defer func(t time.Time) { observe("get_by_id", t, err) }(time.Now())
	return r.one(ctx, getRestaurantSQL, id)
}

func (r *Repo) FindByName(ctx context.Context, name string) (out domain.Restaurant, err error) {
	defer func(t time.Time) { observe("find_by_name", t, err) }(time.Now())
	return r.one(ctx, findByNameSQL, name)
}

func (r *Repo) one(ctx context.Context, q string, arg any) (domain.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Restaurant{}, domain.ErrNotFound
	}
	return rest, err
}

func (r *Repo) Create(ctx context.Context, in domain.Restaurant) (out domain.Restaurant, err error) {
	defer func(t time.Time) { observe("create", t, err) }(time.Now())
	res, err := r.db.ExecContext(ctx, insertRestaurantSQL, restaurantArgs(in)...)
	if err != nil {
		var me *mysqldrv.MySQLError
		if errors.As(err, &me) && me.Number == errDupEntry {
			return domain.Restaurant{}, fmt.Errorf("%w: %q", domain.ErrDuplicateName, in.Name)
		}
		return domain.Restaurant{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Restaurant{}, err
	}
	in.ID = id
	return in, nil
}

func (r *Repo) InsertIfAbsent(ctx context.Context, in domain.Restaurant) (ok bool, err error) {
	defer func(t time.Time) { observe("insert_if_absent", t, err) }(time.Now())
	res, err := r.db.ExecContext(ctx, insertIgnoreRestaurantSQL, restaurantArgs(in)...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repo) UpdateWaitTime(ctx context.Context, id int64, minutes int) (err error) {
	defer func(t time.Time) { observe("update_wait_time", t, err) }(time.Now())
	return r.update(ctx, updateWaitTimeSQL, minutes, id)
}

func (r *Repo) UpdateType(ctx context.Context, id int64, typ string) (err error) {
	defer func(t time.Time) { observe("update_type", t, err) }(time.Now())
	return r.update(ctx, updateTypeSQL, typ, id)
}

func (r *Repo) update(ctx context.Context, q string, val any, id int64) error {
	if _, err := r.db.ExecContext(ctx, q, val, id); err != nil {
		return err
	}
	// MySQL reports 0 affected rows for an unchanged value, so existence is checked separately
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM restaurants WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func restaurantArgs(in domain.Restaurant) []any {
	var typ any
	if in.Type != "" {
		typ = in.Type
	}
	return []any{
		in.Name,
		typ,
		valF64(in.Lat),
		valF64(in.Lon),
		valStr(in.Contact),
		in.Available,
		in.WaitTime,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(s rowScanner) (domain.Restaurant, error) {
	var (
		rest     domain.Restaurant
		typ      sql.NullString
		lat, lon sql.NullFloat64
		contact  sql.NullString
	)
	if err := s.Scan(&rest.ID, &rest.Name, &typ, &lat, &lon, &contact, &rest.Available, &rest.WaitTime); err != nil {
		return domain.Restaurant{}, err
	}
	rest.Type = typ.String
	if lat.Valid {
		f := lat.Float64
		rest.Lat = &f
	}
	if lon.Valid {
		f := lon.Float64
		rest.Lon = &f
	}
	if contact.Valid {
		c := contact.String
		rest.Contact = &c
	}
	return rest, nil
}
