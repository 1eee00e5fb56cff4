package domain

import "time"

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// WalletTransaction is one row of the per-user wallet ledger. The reward
// engine appends a credit row in the same database transaction that
// updates the balance, so the ledger always sums to the balance.
type WalletTransaction struct {
	ID          int64
	UserID      string
	Amount      int64
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}
