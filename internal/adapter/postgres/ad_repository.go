package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adreward/internal/core/domain"
	"adreward/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const adColumns = `id, title, description, image_url, redirect_url, price_per_view, price_per_click, created_by, created_at`

func (r *AdRepository) Create(ctx context.Context, ad domain.Ad) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ads
    (id, title, description, image_url, redirect_url, price_per_view, price_per_click, created_by, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		ad.ID, ad.Title, ad.Description, ad.ImageURL, ad.RedirectURL,
		ad.PricePerView, ad.PricePerClick, ad.CreatedBy, ad.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ad: %w", err)
	}
	return nil
}

func (r *AdRepository) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	var ad domain.Ad
	err := r.pool.QueryRow(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id).
		Scan(&ad.ID, &ad.Title, &ad.Description, &ad.ImageURL, &ad.RedirectURL,
			&ad.PricePerView, &ad.PricePerClick, &ad.CreatedBy, &ad.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ad: %w", err)
	}
	return &ad, nil
}

func (r *AdRepository) List(ctx context.Context) ([]domain.Ad, error) {
	return r.listWhere(ctx, ``)
}

func (r *AdRepository) ListByCreator(ctx context.Context, userID string) ([]domain.Ad, error) {
	return r.listWhere(ctx, `WHERE created_by = $1`, userID)
}

func (r *AdRepository) listWhere(ctx context.Context, where string, args ...any) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+adColumns+` FROM ads `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var ad domain.Ad
		err := row.Scan(&ad.ID, &ad.Title, &ad.Description, &ad.ImageURL, &ad.RedirectURL,
			&ad.PricePerView, &ad.PricePerClick, &ad.CreatedBy, &ad.CreatedAt)
		return ad, err
	})
}
