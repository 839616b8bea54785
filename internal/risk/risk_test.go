package risk

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/memory"
)

func seedAccount(t *testing.T, store *memory.Store, id string, status ledger.AccountStatus) {
	t.Helper()
	err := store.CreateAccount(context.Background(), &ledger.Account{
		ID:        id,
		OwnerID:   "owner-" + id,
		Balance:   100_000,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func seedTxn(t *testing.T, store *memory.Store, accountID string, seq int64, amount int64, flagged bool, createdAt time.Time) *ledger.Transaction {
	t.Helper()

	status := ledger.StatusCompleted
	if flagged {
		status = ledger.StatusFlagged
	}
	txn := &ledger.Transaction{
		ID:        fmt.Sprintf("txn-%s-%d", accountID, seq),
		AccountID: accountID,
		Type:      ledger.TypeDeposit,
		Amount:    amount,
		Status:    status,
		FraudFlag: flagged,
		Sequence:  seq,
		CreatedAt: createdAt,
	}
	require.NoError(t, store.CreateTransaction(context.Background(), txn))
	return txn
}

// TestScoreAccountClean tests that an unremarkable account scores zero.
func TestScoreAccountClean(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	seedTxn(t, store, "acc-1", 1, 5_000, false, now)
	seedTxn(t, store, "acc-1", 2, 7_500, false, now)

	assessment, err := NewService(store).ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)

	assert.Equal(t, 0, assessment.Score)
	assert.Equal(t, LevelLow, assessment.Level)
	assert.Empty(t, assessment.Factors)
	assert.Equal(t, 0, assessment.FlaggedCount)
	assert.Equal(t, 2, assessment.TotalTransactions)
}

// TestScoreAccountFlagged tests flagged-transaction points and their cap.
func TestScoreAccountFlagged(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	seedTxn(t, store, "acc-1", 1, 1_000, true, now)
	seedTxn(t, store, "acc-1", 2, 1_000, true, now)

	svc := NewService(store)

	assessment, err := svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 30, assessment.Score)
	assert.Equal(t, LevelMedium, assessment.Level)
	assert.Contains(t, assessment.Factors, "2 flagged transactions")
	assert.Equal(t, 2, assessment.FlaggedCount)

	// A third flag would be worth 45 points, but the factor caps at 40.
	seedTxn(t, store, "acc-1", 3, 1_000, true, now)

	assessment, err = svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 40, assessment.Score)
	assert.Contains(t, assessment.Factors, "3 flagged transactions")
}

// TestScoreAccountLargeAmounts tests the $10,000 threshold and its cap.
func TestScoreAccountLargeAmounts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	// Exactly $10,000 is not "over $10,000".
	seedTxn(t, store, "acc-1", 1, 1_000_000, false, now)

	svc := NewService(store)

	assessment, err := svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 0, assessment.Score)

	seedTxn(t, store, "acc-1", 2, 1_000_001, false, now)
	seedTxn(t, store, "acc-1", 3, 2_500_000, false, now)

	assessment, err = svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 20, assessment.Score)
	assert.Contains(t, assessment.Factors, "2 large transactions (>$10,000)")

	// Five large transactions would be worth 50 points, capped at 30.
	seedTxn(t, store, "acc-1", 4, 2_500_000, false, now)
	seedTxn(t, store, "acc-1", 5, 2_500_000, false, now)
	seedTxn(t, store, "acc-1", 6, 2_500_000, false, now)

	assessment, err = svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 30, assessment.Score)
}

// TestScoreAccountFrequency tests the recent-activity factor and the scoring
// window bound.
func TestScoreAccountFrequency(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	for seq := int64(1); seq <= 30; seq++ {
		seedTxn(t, store, "acc-1", seq, 1_000, false, now)
	}

	svc := NewService(store)

	// 30 transactions sit exactly at the threshold: no factor yet.
	assessment, err := svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 0, assessment.Score)
	assert.Equal(t, 30, assessment.TotalTransactions)

	seedTxn(t, store, "acc-1", 31, 1_000, false, now)

	assessment, err = svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 20, assessment.Score)
	assert.Contains(t, assessment.Factors, "High transaction frequency (31 recent transactions)")

	// The window never grows past 50 transactions, however long the history.
	for seq := int64(32); seq <= 80; seq++ {
		seedTxn(t, store, "acc-1", seq, 1_000, false, now)
	}

	assessment, err = svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 50, assessment.TotalTransactions)
	assert.Contains(t, assessment.Factors, "High transaction frequency (50 recent transactions)")
}

// TestScoreAccountFrozen tests the flat frozen-account factor.
func TestScoreAccountFrozen(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusFrozen)

	assessment, err := NewService(store).ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)

	assert.Equal(t, 50, assessment.Score)
	assert.Equal(t, LevelHigh, assessment.Level)
	assert.Contains(t, assessment.Factors, "Account is frozen")
}

// TestScoreAccountClamped tests that stacked factors clamp to 100 and land
// in the critical bucket.
func TestScoreAccountClamped(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusFrozen)

	now := time.Now().UTC()
	seedTxn(t, store, "acc-1", 1, 2_000_000, true, now)
	seedTxn(t, store, "acc-1", 2, 2_000_000, true, now)
	seedTxn(t, store, "acc-1", 3, 2_000_000, true, now)
	seedTxn(t, store, "acc-1", 4, 2_000_000, false, now)

	assessment, err := NewService(store).ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)

	// 40 (flags) + 30 (large) + 50 (frozen) exceeds the scale.
	assert.Equal(t, 100, assessment.Score)
	assert.Equal(t, LevelCritical, assessment.Level)
	assert.Len(t, assessment.Factors, 3)
}

// TestScoreAccountDeterministic tests that identical state scores
// identically.
func TestScoreAccountDeterministic(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	seedTxn(t, store, "acc-1", 1, 2_000_000, true, now)

	svc := NewService(store)
	first, err := svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)
	second, err := svc.ScoreAccount(ctx, "acc-1")
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Level, second.Level)
	assert.Equal(t, first.Factors, second.Factors)
}

// TestScoreAccountErrors tests the rejected scoring paths.
func TestScoreAccountErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore())

	_, err := svc.ScoreAccount(ctx, "")
	require.Error(t, err)

	_, err = svc.ScoreAccount(ctx, "missing")
	require.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

// TestSuspiciousTransactions tests the flagged-transaction feed.
func TestSuspiciousTransactions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)

	now := time.Now().UTC()
	seedTxn(t, store, "acc-1", 1, 1_000, false, now)
	oldFlag := seedTxn(t, store, "acc-1", 2, 1_000, true, now)
	seedTxn(t, store, "acc-1", 3, 1_000, false, now)
	newFlag := seedTxn(t, store, "acc-1", 4, 1_000, true, now)

	svc := NewService(store)

	suspicious, err := svc.SuspiciousTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, suspicious, 2)
	assert.Equal(t, newFlag.ID, suspicious[0].ID)
	assert.Equal(t, oldFlag.ID, suspicious[1].ID)

	suspicious, err = svc.SuspiciousTransactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, suspicious, 1)
	assert.Equal(t, newFlag.ID, suspicious[0].ID)
}

// TestDashboardStats tests the fraud dashboard aggregates.
func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedAccount(t, store, "acc-1", ledger.StatusActive)
	seedAccount(t, store, "acc-2", ledger.StatusFrozen)
	seedAccount(t, store, "acc-3", ledger.StatusFrozen)

	now := time.Now().UTC()
	twoDaysAgo := now.Add(-48 * time.Hour)

	seedTxn(t, store, "acc-1", 1, 2_000_000, true, twoDaysAgo)
	seedTxn(t, store, "acc-1", 2, 500, true, now)
	seedTxn(t, store, "acc-1", 3, 1_500_000, false, now)
	seedTxn(t, store, "acc-2", 4, 400, false, now)

	stats, err := NewService(store).DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalFlagged)
	assert.Equal(t, 1, stats.RecentFlagged)
	assert.Equal(t, 2, stats.FrozenAccounts)
	assert.Equal(t, 2, stats.HighValueTransactions)
}
