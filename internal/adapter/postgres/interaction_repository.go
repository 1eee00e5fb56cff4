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

// InteractionRepository implements port.InteractionRepository. It owns the
// append-only ad_interactions log and the wallet credit transaction.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository returns a new repository instance.
func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

// ListByTriple returns all interactions recorded for the exact
// (user, ad, ip) combination, oldest first.
func (r *InteractionRepository) ListByTriple(ctx context.Context, userID, adID, ipAddress string) ([]domain.Interaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, ad_id, interaction_type, ip_address, created_at
FROM ad_interactions WHERE user_id = $1 AND ad_id = $2 AND ip_address = $3 ORDER BY created_at`,
		userID, adID, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return pgx.CollectRows(rows, scanInteraction)
}

// CreditAndRecord credits reward to the user's wallet and persists the
// interaction plus a ledger row in one database transaction.
//
// The user row is locked FOR UPDATE first. Every eligibility triple
// contains the user, so the lock serializes requests racing the same
// triple as well as concurrent credits for the same user across different
// ads; the balance update is therefore never a lost update. Eligibility
// is re-evaluated against the history read under the lock, which catches
// a racing request that turned the triple terminal after the caller's
// unlocked pre-check.
func (r *InteractionRepository) CreditAndRecord(ctx context.Context, rec domain.Interaction, reward int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin credit tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE id = $1 FOR UPDATE`, rec.UserID).
		Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock user: %w", err)
	}

	rows, err := tx.Query(ctx, `SELECT id, user_id, ad_id, interaction_type, ip_address, created_at
FROM ad_interactions WHERE user_id = $1 AND ad_id = $2 AND ip_address = $3`,
		rec.UserID, rec.AdID, rec.IPAddress)
	if err != nil {
		return fmt.Errorf("recheck interactions: %w", err)
	}
	prior, err := pgx.CollectRows(rows, scanInteraction)
	if err != nil {
		return fmt.Errorf("recheck interactions: %w", err)
	}
	if !domain.Eligible(prior) {
		return port.ErrAlreadyInteracted
	}

	_, err = tx.Exec(ctx, `UPDATE users
SET wallet_balance = wallet_balance + $2, updated_at = now() WHERE id = $1`, rec.UserID, reward)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO ad_interactions
    (id, user_id, ad_id, interaction_type, ip_address, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		rec.ID, rec.UserID, rec.AdID, rec.Type, rec.IPAddress, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO wallet_transactions (user_id, amount, tx_type, description)
VALUES ($1,$2,$3,$4)`,
		rec.UserID, reward, domain.TransactionCredit,
		fmt.Sprintf("reward for ad %s (%s)", rec.AdID, rec.Type))
	if err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit credit tx: %w", err)
	}
	return nil
}

func scanInteraction(row pgx.CollectableRow) (domain.Interaction, error) {
	var it domain.Interaction
	err := row.Scan(&it.ID, &it.UserID, &it.AdID, &it.Type, &it.IPAddress, &it.CreatedAt)
	return it, err
}
