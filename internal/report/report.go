// Package report computes financial KPIs, trends and custom reports over the
// transaction and account sets. All computations are stateless pulls from
// the store; monetary figures stay in integer minor units while they
// accumulate and are only rounded where a result is inherently a ratio.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
)

const (
	// reportCap bounds the transaction list in a custom report. It bounds
	// response size only; counts and totals always cover the full filtered
	// set, and callers needing every row paginate with narrower filters.
	reportCap = 100

	defaultTrendDays = 30
)

// KPISummary holds the headline financial indicators.
type KPISummary struct {
	TotalTransactions int   `json:"total_transactions"`
	TotalVolume       int64 `json:"total_volume"`
	TotalDeposits     int64 `json:"total_deposits"`
	TotalWithdrawals  int64 `json:"total_withdrawals"`
	TotalTransfers    int64 `json:"total_transfers"`
	ActiveAccounts    int   `json:"active_accounts"`
	TotalAccounts     int   `json:"total_accounts"`
	TotalUsers        int   `json:"total_users"`
	AverageBalance    int64 `json:"avg_balance"`
	NetFlow           int64 `json:"net_flow"`
}

// DayTrend is one calendar day's transaction activity, split by type.
type DayTrend struct {
	Date             string `json:"date"`
	DepositCount     int    `json:"deposit_count"`
	DepositVolume    int64  `json:"deposit_volume"`
	WithdrawalCount  int    `json:"withdrawal_count"`
	WithdrawalVolume int64  `json:"withdrawal_volume"`
	TransferCount    int    `json:"transfer_count"`
	TransferVolume   int64  `json:"transfer_volume"`
}

// Filters narrows a custom report. Nil amount bounds and zero times are
// ignored; both amount bounds are inclusive.
type Filters struct {
	From      time.Time              `json:"from,omitempty"`
	To        time.Time              `json:"to,omitempty"`
	Type      ledger.TransactionType `json:"type,omitempty"`
	MinAmount *int64                 `json:"min_amount,omitempty"`
	MaxAmount *int64                 `json:"max_amount,omitempty"`
}

// CustomReport is the result of a filtered transaction query. Transactions
// carries at most reportCap records while Count and TotalAmount cover every
// match.
type CustomReport struct {
	Count        int                   `json:"transaction_count"`
	TotalAmount  int64                 `json:"total_amount"`
	Filters      Filters               `json:"filters_applied"`
	Transactions []*ledger.Transaction `json:"transactions"`
}

// Service computes reports from the stores and emits threshold alerts to an
// optional notification sink.
type Service struct {
	store ledger.Store
	sink  notify.Sink
}

// NewService creates a reporting service. The sink may be nil; threshold
// alerts are then computed but not dispatched.
func NewService(store ledger.Store, sink notify.Sink) *Service {
	return &Service{store: store, sink: sink}
}

// KPISummary computes the headline indicators over the full data set. Volume
// counts completed transactions only; the per-type sums cover all recorded
// transactions; net flow is deposit volume minus withdrawal volume; the
// average balance covers active accounts and is rounded to the nearest minor
// unit.
func (s *Service) KPISummary(ctx context.Context) (*KPISummary, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.store.ListAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	userCount, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	kpi := &KPISummary{
		TotalTransactions: len(txns),
		TotalAccounts:     len(accounts),
		TotalUsers:        userCount,
	}

	for _, txn := range txns {
		if txn.Status == ledger.StatusCompleted {
			kpi.TotalVolume += txn.Amount
		}
		switch txn.Type {
		case ledger.TypeDeposit:
			kpi.TotalDeposits += txn.Amount
		case ledger.TypeWithdrawal:
			kpi.TotalWithdrawals += txn.Amount
		case ledger.TypeTransfer:
			kpi.TotalTransfers += txn.Amount
		}
	}
	kpi.NetFlow = kpi.TotalDeposits - kpi.TotalWithdrawals

	var activeSum int64
	for _, account := range accounts {
		if account.Status == ledger.StatusActive {
			kpi.ActiveAccounts++
			activeSum += account.Balance
		}
	}
	if kpi.ActiveAccounts > 0 {
		n := int64(kpi.ActiveAccounts)
		kpi.AverageBalance = (activeSum + n/2) / n
	}

	return kpi, nil
}

// TransactionTrends buckets the trailing windowDays of activity by calendar
// date. Bucketing is always in UTC so the grouping is deterministic
// regardless of where the process runs. Days without activity are omitted;
// buckets come back in ascending date order. A windowDays <= 0 selects the
// default 30-day window.
func (s *Service) TransactionTrends(ctx context.Context, windowDays int) ([]*DayTrend, error) {
	if windowDays <= 0 {
		windowDays = defaultTrendDays
	}

	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(windowDays - 1))
	days := make(map[string]*DayTrend)

	for _, txn := range txns {
		created := txn.CreatedAt.UTC()
		if created.Truncate(24 * time.Hour).Before(cutoff) {
			continue
		}
		date := created.Format("2006-01-02")
		day, ok := days[date]
		if !ok {
			day = &DayTrend{Date: date}
			days[date] = day
		}
		switch txn.Type {
		case ledger.TypeDeposit:
			day.DepositCount++
			day.DepositVolume += txn.Amount
		case ledger.TypeWithdrawal:
			day.WithdrawalCount++
			day.WithdrawalVolume += txn.Amount
		case ledger.TypeTransfer:
			day.TransferCount++
			day.TransferVolume += txn.Amount
		}
	}

	trends := make([]*DayTrend, 0, len(days))
	for _, day := range days {
		trends = append(trends, day)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })
	return trends, nil
}

// TopTransactions returns the largest transactions by amount, optionally
// restricted to one type. The sort is stable over the newest-first history
// order, so equal amounts come back in a deterministic order across runs.
func (s *Service) TopTransactions(ctx context.Context, limit int, typeFilter ledger.TransactionType) ([]*ledger.Transaction, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var filtered []*ledger.Transaction
	for _, txn := range txns {
		if typeFilter != "" && txn.Type != typeFilter {
			continue
		}
		filtered = append(filtered, txn)
	}

	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Amount > filtered[j].Amount })

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// GenerateReport applies the filters and summarizes the matching
// transactions. The returned list is capped; count and total are not.
func (s *Service) GenerateReport(ctx context.Context, filters Filters) (*CustomReport, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	report := &CustomReport{Filters: filters}
	for _, txn := range txns {
		if !matches(txn, filters) {
			continue
		}
		report.Count++
		report.TotalAmount += txn.Amount
		if len(report.Transactions) < reportCap {
			report.Transactions = append(report.Transactions, txn)
		}
	}
	return report, nil
}

func matches(txn *ledger.Transaction, f Filters) bool {
	if !f.From.IsZero() && txn.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && txn.CreatedAt.After(f.To) {
		return false
	}
	if f.Type != "" && txn.Type != f.Type {
		return false
	}
	if f.MinAmount != nil && txn.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && txn.Amount > *f.MaxAmount {
		return false
	}
	return true
}
