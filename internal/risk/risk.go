// Package risk derives a bounded fraud risk score for an account from its
// recent transaction history. Scoring is a pure read: it never mutates
// ledger state, so callers can act on a score (freeze, flag) through the
// ledger service without the two engines coupling.
package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
)

// Level buckets a risk score for review routing.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

const (
	// windowSize bounds how much history feeds a score.
	windowSize = 50

	// largeAmountMinor is the large-transaction threshold, $10,000 in
	// minor units.
	largeAmountMinor = 10_000 * 100

	flaggedPoints    = 15
	flaggedCap       = 40
	largePoints      = 10
	largeCap         = 30
	frequencyPoints  = 20
	frequencyMinimum = 30
	frozenPoints     = 50
)

// Assessment is the result of scoring one account.
type Assessment struct {
	AccountID         string    `json:"account_id"`
	Score             int       `json:"risk_score"`
	Level             Level     `json:"risk_level"`
	Factors           []string  `json:"factors"`
	FlaggedCount      int       `json:"flagged_count"`
	TotalTransactions int       `json:"total_transactions"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// DashboardStats summarizes fraud signals across the whole ledger.
type DashboardStats struct {
	TotalFlagged          int `json:"total_flagged"`
	RecentFlagged         int `json:"recent_flagged"`
	FrozenAccounts        int `json:"frozen_accounts"`
	HighValueTransactions int `json:"high_value_transactions"`
}

// Service computes risk scores and fraud statistics from the stores.
type Service struct {
	store ledger.Store
}

// NewService creates a risk scoring service around the given store.
func NewService(store ledger.Store) *Service {
	return &Service{store: store}
}

// ScoreAccount scores an account's most recent transactions plus its current
// status. The same account state always produces the same assessment.
//
// Points: +15 per flagged transaction capped at +40, +10 per transaction
// over $10,000 capped at +30, +20 flat above 30 recent transactions, +50
// flat while the account is frozen. The final score is clamped to [0,100]
// and bucketed: >=75 critical, >=50 high, >=25 medium, else low.
func (s *Service) ScoreAccount(ctx context.Context, accountID string) (*Assessment, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	window, err := s.store.ListTransactionsByAccount(ctx, accountID, windowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction window: %w", err)
	}

	score := 0
	var factors []string

	flagged := 0
	for _, txn := range window {
		if txn.FraudFlag {
			flagged++
		}
	}
	if flagged > 0 {
		score += capped(flagged*flaggedPoints, flaggedCap)
		factors = append(factors, fmt.Sprintf("%d flagged transactions", flagged))
	}

	large := 0
	for _, txn := range window {
		if txn.Amount > largeAmountMinor {
			large++
		}
	}
	if large > 0 {
		score += capped(large*largePoints, largeCap)
		factors = append(factors, fmt.Sprintf("%d large transactions (>$10,000)", large))
	}

	if len(window) > frequencyMinimum {
		score += frequencyPoints
		factors = append(factors, fmt.Sprintf("High transaction frequency (%d recent transactions)", len(window)))
	}

	if account.Status == ledger.StatusFrozen {
		score += frozenPoints
		factors = append(factors, "Account is frozen")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &Assessment{
		AccountID:         accountID,
		Score:             score,
		Level:             levelFor(score),
		Factors:           factors,
		FlaggedCount:      flagged,
		TotalTransactions: len(window),
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// SuspiciousTransactions returns transactions under fraud suspicion, newest
// first: fraud flag set or status flagged. A limit <= 0 means no limit.
func (s *Service) SuspiciousTransactions(ctx context.Context, limit int) ([]*ledger.Transaction, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var suspicious []*ledger.Transaction
	for _, txn := range txns {
		if txn.FraudFlag || txn.Status == ledger.StatusFlagged {
			suspicious = append(suspicious, txn)
		}
	}
	if limit > 0 && len(suspicious) > limit {
		suspicious = suspicious[:limit]
	}
	return suspicious, nil
}

// DashboardStats aggregates the fraud analyst dashboard figures: flagged
// totals, flags raised in the last 24 hours, frozen accounts, and
// transactions over $10,000.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.store.ListAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	stats := &DashboardStats{}
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	for _, txn := range txns {
		if txn.FraudFlag {
			stats.TotalFlagged++
			if txn.CreatedAt.After(cutoff) {
				stats.RecentFlagged++
			}
		}
		if txn.Amount > largeAmountMinor {
			stats.HighValueTransactions++
		}
	}
	for _, account := range accounts {
		if account.Status == ledger.StatusFrozen {
			stats.FrozenAccounts++
		}
	}

	return stats, nil
}

func capped(points, limit int) int {
	if points > limit {
		return limit
	}
	return points
}

func levelFor(score int) Level {
	switch {
	case score >= 75:
		return LevelCritical
	case score >= 50:
		return LevelHigh
	case score >= 25:
		return LevelMedium
	default:
		return LevelLow
	}
}
