package postgres

import (
	"context"
	"errors"

	"github.com/ezycar/booking-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingsRepo struct{ pool *pgxpool.Pool }

const bookingCols = `b.id, b.booking_date, b.user_id, b.created_at, b.updated_at`

// Providers are LEFT JOINed because a booking may outlive its provider.
const providerJoin = `LEFT JOIN providers p ON p.id = b.provider_id`

func (r *bookingsRepo) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bookings(id, booking_date, user_id, provider_id)
		 VALUES($1,$2,$3,$4)
		 RETURNING created_at, updated_at`,
		b.ID, b.BookingDate, b.UserID, b.ProviderID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *bookingsRepo) GetByID(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := r.pool.QueryRow(ctx,
		`SELECT id, booking_date, user_id, provider_id, created_at, updated_at
		   FROM bookings WHERE id=$1`, id,
	).Scan(&b.ID, &b.BookingDate, &b.UserID, &b.ProviderID, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, models.ErrNotFound
	}
	return b, err
}

func (r *bookingsRepo) GetDetail(ctx context.Context, id string) (models.BookingDetail, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookingCols+`, p.id, p.name, p.address, p.tel
		   FROM bookings b `+providerJoin+`
		  WHERE b.id=$1`, id)
	d, err := scanDetail(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BookingDetail{}, models.ErrNotFound
	}
	return d, err
}

func (r *bookingsRepo) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingCols+`, p.id, p.name, p.address, p.tel, u.name, u.email
		   FROM bookings b `+providerJoin+`
		   JOIN users u ON u.id = b.user_id
		  ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		var (
			d             models.BookingDetail
			pid, pname    *string
			paddr, ptel   *string
			uname, uemail string
		)
		if err := rows.Scan(&d.ID, &d.BookingDate, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
			&pid, &pname, &paddr, &ptel, &uname, &uemail); err != nil {
			return nil, err
		}
		d.Provider = providerSummary(pid, pname, paddr, ptel)
		d.UserInfo = &models.UserSummary{ID: d.UserID, Name: uname, Email: uemail}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *bookingsRepo) ListByUser(ctx context.Context, userID string, byDateDesc bool) ([]models.BookingDetail, error) {
	order := `b.created_at DESC`
	if byDateDesc {
		order = `b.booking_date DESC`
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingCols+`, p.id, p.name, p.address, p.tel
		   FROM bookings b `+providerJoin+`
		  WHERE b.user_id=$1
		  ORDER BY `+order, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		var (
			d           models.BookingDetail
			pid, pname  *string
			paddr, ptel *string
		)
		if err := rows.Scan(&d.ID, &d.BookingDate, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
			&pid, &pname, &paddr, &ptel); err != nil {
			return nil, err
		}
		d.Provider = providerSummary(pid, pname, paddr, ptel)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *bookingsRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE user_id=$1`, userID).Scan(&n)
	return n, err
}

func (r *bookingsRepo) Update(ctx context.Context, b models.Booking) (models.Booking, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE bookings
		    SET booking_date=$2, provider_id=$3, updated_at=now()
		  WHERE id=$1
		  RETURNING created_at, updated_at`,
		b.ID, b.BookingDate, b.ProviderID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, models.ErrNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *bookingsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanDetail(row pgx.Row) (models.BookingDetail, error) {
	var (
		d           models.BookingDetail
		pid, pname  *string
		paddr, ptel *string
	)
	err := row.Scan(&d.ID, &d.BookingDate, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
		&pid, &pname, &paddr, &ptel)
	if err != nil {
		return models.BookingDetail{}, err
	}
	d.Provider = providerSummary(pid, pname, paddr, ptel)
	return d, nil
}

func providerSummary(id, name, addr, tel *string) *models.ProviderSummary {
	if id == nil {
		return nil
	}
	return &models.ProviderSummary{ID: *id, Name: *name, Address: *addr, Tel: *tel}
}
