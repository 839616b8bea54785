package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultLockWait bounds how long an operation waits for an account's
// critical section before giving up with ErrConflict.
const DefaultLockWait = 5 * time.Second

// Service executes ledger operations against a Store. It owns the
// per-account critical sections: every balance read-validate-write runs under
// the account's lock, and a transfer holds both account locks at once, so
// concurrent operations can never observe or commit a half-applied change.
type Service struct {
	store   Store
	locks   *lockTable
	maxWait time.Duration

	seqMu    sync.Mutex
	seq      int64
	seqReady bool
}

// NewService creates a ledger service around the given store. A maxWait of
// zero or less selects DefaultLockWait.
func NewService(store Store, maxWait time.Duration) *Service {
	if maxWait <= 0 {
		maxWait = DefaultLockWait
	}
	return &Service{
		store:   store,
		locks:   newLockTable(),
		maxWait: maxWait,
	}
}

// CreateAccount opens an active account for the owner with the given initial
// balance in minor units.
func (s *Service) CreateAccount(ctx context.Context, ownerID string, initialBalance int64) (*Account, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if initialBalance < 0 {
		return nil, &AmountError{Op: "create account", Amount: initialBalance}
	}

	account := &Account{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Balance:   initialBalance,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// Deposit credits amount to an active account and records the transaction.
func (s *Service) Deposit(ctx context.Context, accountID string, amount int64, description string) (*Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	if amount <= 0 {
		return nil, &AmountError{Op: "deposit", Amount: amount}
	}

	release, err := s.locks.acquire(ctx, s.maxWait, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.activeAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txn := &Transaction{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Type:        TypeDeposit,
		Amount:      amount,
		Status:      StatusCompleted,
		Description: description,
	}

	return s.commit(ctx, txn, balanceWrite{
		accountID: accountID,
		prev:      account.Balance,
		next:      account.Balance + amount,
	})
}

// Withdraw debits amount from an active account with sufficient balance and
// records the transaction.
func (s *Service) Withdraw(ctx context.Context, accountID string, amount int64, description string) (*Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	if amount <= 0 {
		return nil, &AmountError{Op: "withdrawal", Amount: amount}
	}

	release, err := s.locks.acquire(ctx, s.maxWait, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.activeAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance < amount {
		return nil, &InsufficientBalanceError{AccountID: accountID, Balance: account.Balance, Amount: amount}
	}

	txn := &Transaction{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Type:        TypeWithdrawal,
		Amount:      amount,
		Status:      StatusCompleted,
		Description: description,
	}

	return s.commit(ctx, txn, balanceWrite{
		accountID: accountID,
		prev:      account.Balance,
		next:      account.Balance - amount,
	})
}

// Transfer atomically moves amount from the source account to the target
// account and records one transfer transaction from the source's
// perspective. The total balance across both accounts is conserved.
func (s *Service) Transfer(ctx context.Context, sourceID, targetID string, amount int64, description string) (*Transaction, error) {
	if sourceID == "" || targetID == "" {
		return nil, fmt.Errorf("source and target account IDs are required")
	}
	if sourceID == targetID {
		return nil, ErrSameAccountTransfer
	}
	if amount <= 0 {
		return nil, &AmountError{Op: "transfer", Amount: amount}
	}

	release, err := s.locks.acquire(ctx, s.maxWait, sourceID, targetID)
	if err != nil {
		return nil, err
	}
	defer release()

	source, err := s.activeAccount(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	target, err := s.activeAccount(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("target account: %w", err)
	}
	if source.Balance < amount {
		return nil, &InsufficientBalanceError{AccountID: sourceID, Balance: source.Balance, Amount: amount}
	}

	txn := &Transaction{
		ID:              uuid.New().String(),
		AccountID:       sourceID,
		Type:            TypeTransfer,
		Amount:          amount,
		TargetAccountID: targetID,
		Status:          StatusCompleted,
		Description:     description,
	}

	return s.commit(ctx, txn,
		balanceWrite{accountID: sourceID, prev: source.Balance, next: source.Balance - amount},
		balanceWrite{accountID: targetID, prev: target.Balance, next: target.Balance + amount},
	)
}

// FlagFraud marks a transaction as suspicious: fraud flag set, status
// flagged. Balances are never touched.
func (s *Service) FlagFraud(ctx context.Context, transactionID string) (*Transaction, error) {
	return s.setFraudFlag(ctx, transactionID, true)
}

// UnflagFraud clears a transaction's fraud flag and restores its status to
// completed.
func (s *Service) UnflagFraud(ctx context.Context, transactionID string) (*Transaction, error) {
	return s.setFraudFlag(ctx, transactionID, false)
}

func (s *Service) setFraudFlag(ctx context.Context, transactionID string, flagged bool) (*Transaction, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	txn, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	status := StatusCompleted
	if flagged {
		status = StatusFlagged
	}

	update := TransactionUpdate{Status: &status, FraudFlag: &flagged}
	if err := s.store.UpdateTransaction(ctx, transactionID, update); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	txn.Status = status
	txn.FraudFlag = flagged
	return txn, nil
}

// Freeze moves an account to frozen. A frozen account rejects every ledger
// operation, as source or as target, until reactivated.
func (s *Service) Freeze(ctx context.Context, accountID string) (*Account, error) {
	return s.setStatus(ctx, accountID, StatusFrozen)
}

// Activate moves a frozen account back to active.
func (s *Service) Activate(ctx context.Context, accountID string) (*Account, error) {
	return s.setStatus(ctx, accountID, StatusActive)
}

// CloseAccount moves an account to closed. Closed is terminal.
func (s *Service) CloseAccount(ctx context.Context, accountID string) (*Account, error) {
	return s.setStatus(ctx, accountID, StatusClosed)
}

func (s *Service) setStatus(ctx context.Context, accountID string, to AccountStatus) (*Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	release, err := s.locks.acquire(ctx, s.maxWait, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == to {
		return account, nil
	}
	if !ValidStatusTransition(account.Status, to) {
		return nil, &StatusTransitionError{AccountID: accountID, From: account.Status, To: to}
	}

	if err := s.store.SetStatus(ctx, accountID, to); err != nil {
		return nil, fmt.Errorf("failed to set status of account %s: %w", accountID, err)
	}

	account.Status = to
	return account, nil
}

// Account retrieves an account by id.
func (s *Service) Account(ctx context.Context, accountID string) (*Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	return s.store.GetAccount(ctx, accountID)
}

// AccountsByOwner retrieves all accounts belonging to a user.
func (s *Service) AccountsByOwner(ctx context.Context, ownerID string) ([]*Account, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	return s.store.ListAccountsByOwner(ctx, ownerID)
}

// Transaction retrieves a transaction by id.
func (s *Service) Transaction(ctx context.Context, transactionID string) (*Transaction, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}
	return s.store.GetTransaction(ctx, transactionID)
}

// History returns the account's merged transaction history, newest first:
// every transaction where the account is the source or the transfer target.
// A limit <= 0 returns the full history.
func (s *Service) History(ctx context.Context, accountID string, limit int) ([]*Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.store.ListTransactionsByAccount(ctx, accountID, limit)
}

// activeAccount loads an account and rejects it unless its status is active.
func (s *Service) activeAccount(ctx context.Context, accountID string) (*Account, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status != StatusActive {
		return nil, &InactiveAccountError{AccountID: account.ID, Status: account.Status}
	}
	return account, nil
}

// balanceWrite is one pending balance mutation inside a commit.
type balanceWrite struct {
	accountID  string
	prev, next int64
}

// commit applies the balance writes and then records the transaction, all
// under the locks the caller already holds. If the record insert fails the
// previous balances are restored before the locks are released, so exactly
// one of {both written} or {neither written} is ever observable.
func (s *Service) commit(ctx context.Context, txn *Transaction, writes ...balanceWrite) (*Transaction, error) {
	for i, w := range writes {
		if err := s.store.UpdateBalance(ctx, w.accountID, w.next); err != nil {
			err = fmt.Errorf("failed to update balance of account %s: %w", w.accountID, err)
			if rerr := s.revert(ctx, writes[:i]); rerr != nil {
				return nil, fmt.Errorf("%w; %v", err, rerr)
			}
			return nil, err
		}
	}

	seq, err := s.nextSeq(ctx)
	if err != nil {
		if rerr := s.revert(ctx, writes); rerr != nil {
			return nil, fmt.Errorf("%w; %v", err, rerr)
		}
		return nil, err
	}
	txn.Sequence = seq
	txn.CreatedAt = time.Now().UTC()

	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		err = fmt.Errorf("failed to record transaction: %w", err)
		if rerr := s.revert(ctx, writes); rerr != nil {
			return nil, fmt.Errorf("%w; %v", err, rerr)
		}
		return nil, err
	}

	return txn, nil
}

// revert writes the previous balances back, newest first.
func (s *Service) revert(ctx context.Context, writes []balanceWrite) error {
	for i := len(writes) - 1; i >= 0; i-- {
		w := writes[i]
		if err := s.store.UpdateBalance(ctx, w.accountID, w.prev); err != nil {
			return fmt.Errorf("failed to restore balance of account %s: %w", w.accountID, err)
		}
	}
	return nil
}

// nextSeq returns the next commit sequence number. The counter resumes from
// the store's highest recorded sequence the first time it is needed, so
// history order survives process restarts.
func (s *Service) nextSeq(ctx context.Context) (int64, error) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	if !s.seqReady {
		txns, err := s.store.ListAllTransactions(ctx, 0)
		if err != nil {
			return 0, fmt.Errorf("failed to restore commit sequence: %w", err)
		}
		for _, txn := range txns {
			if txn.Sequence > s.seq {
				s.seq = txn.Sequence
			}
		}
		s.seqReady = true
	}

	s.seq++
	return s.seq, nil
}
