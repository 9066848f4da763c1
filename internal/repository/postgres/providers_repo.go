package postgres

import (
	"context"
	"errors"

	"github.com/ezycar/booking-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type providersRepo struct{ pool *pgxpool.Pool }

func (r *providersRepo) Create(ctx context.Context, p models.Provider) (models.Provider, error) {
	p.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO providers(id, name, address, tel) VALUES($1,$2,$3,$4)`,
		p.ID, p.Name, p.Address, p.Tel,
	)
	if err != nil {
		return models.Provider{}, err
	}
	return p, nil
}

func (r *providersRepo) GetByID(ctx context.Context, id string) (models.Provider, error) {
	var p models.Provider
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, address, tel FROM providers WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.Tel)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Provider{}, models.ErrNotFound
	}
	return p, err
}

func (r *providersRepo) List(ctx context.Context) ([]models.Provider, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address, tel FROM providers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Provider{}
	for rows.Next() {
		var p models.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Tel); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *providersRepo) Update(ctx context.Context, p models.Provider) (models.Provider, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE providers SET name=$2, address=$3, tel=$4 WHERE id=$1`,
		p.ID, p.Name, p.Address, p.Tel,
	)
	if err != nil {
		return models.Provider{}, err
	}
	if tag.RowsAffected() == 0 {
		return models.Provider{}, models.ErrNotFound
	}
	return p, nil
}

func (r *providersRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM providers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
