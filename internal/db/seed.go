package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"adreward/internal/core/domain"
)

// Seed inserts demo accounts and ads. An admin (admin@adreward.local /
// admin123) owns the ads; a regular user (user@adreward.local / user123)
// can earn rewards against them. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	adminID := uuid.NewString()
	if err := seedUser(ctx, pool, adminID, "Demo Admin", "admin@adreward.local", "admin123", domain.RoleAdmin); err != nil {
		return err
	}
	if err := seedUser(ctx, pool, uuid.NewString(), "Demo User", "user@adreward.local", "user123", domain.RoleUser); err != nil {
		return err
	}

	// the admin id differs across runs, so resolve the owner by email
	var ownerID string
	if err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "admin@adreward.local").Scan(&ownerID); err != nil {
		return fmt.Errorf("resolve seed admin: %w", err)
	}

	for i := 1; i <= 5; i++ {
		_, err := pool.Exec(ctx, `INSERT INTO ads
    (id, title, description, image_url, redirect_url, price_per_view, price_per_click, created_by, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(),
			fmt.Sprintf("Demo ad %d", i),
			fmt.Sprintf("Description for demo ad %d", i),
			fmt.Sprintf("https://example.com/banner/%d.png", i),
			fmt.Sprintf("https://example.com/landing/%d", i),
			int64(5*i), int64(10*i), ownerID)
		if err != nil {
			return fmt.Errorf("seed ad %d: %w", i, err)
		}
	}
	return nil
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, id, name, email, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO users
    (id, name, email, password_hash, role, active, wallet_balance, refresh_token, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,true,0,'',now(),now()) ON CONFLICT (email) DO NOTHING`,
		id, name, email, string(hash), role)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", email, err)
	}
	return nil
}
