package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore is an in-memory Store with per-method override hooks. Nil hooks
// fall through to the map-backed default behavior.
type mockStore struct {
	mu       sync.Mutex
	accounts map[string]*Account
	txns     map[string]*Transaction
	users    map[string]*User

	updateBalanceFunc     func(ctx context.Context, id string, newBalance int64) error
	createTransactionFunc func(ctx context.Context, txn *Transaction) error
}

func newMockStore() *mockStore {
	return &mockStore{
		accounts: make(map[string]*Account),
		txns:     make(map[string]*Transaction),
		users:    make(map[string]*User),
	}
}

func (m *mockStore) GetAccount(ctx context.Context, id string) (*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (m *mockStore) ListAccountsByOwner(ctx context.Context, ownerID string) ([]*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var accounts []*Account
	for _, account := range m.accounts {
		if account.OwnerID == ownerID {
			clone := *account
			accounts = append(accounts, &clone)
		}
	}
	return accounts, nil
}

func (m *mockStore) ListAllAccounts(ctx context.Context) ([]*Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var accounts []*Account
	for _, account := range m.accounts {
		clone := *account
		accounts = append(accounts, &clone)
	}
	return accounts, nil
}

func (m *mockStore) CreateAccount(ctx context.Context, account *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *account
	m.accounts[account.ID] = &clone
	return nil
}

func (m *mockStore) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	if m.updateBalanceFunc != nil {
		return m.updateBalanceFunc(ctx, id, newBalance)
	}
	return m.setBalance(id, newBalance)
}

func (m *mockStore) setBalance(id string, newBalance int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.Balance = newBalance
	return nil
}

func (m *mockStore) SetStatus(ctx context.Context, id string, status AccountStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.Status = status
	return nil
}

func (m *mockStore) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.txns[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	clone := *txn
	return &clone, nil
}

func (m *mockStore) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var txns []*Transaction
	for _, txn := range m.txns {
		if txn.AccountID == accountID || txn.TargetAccountID == accountID {
			clone := *txn
			txns = append(txns, &clone)
		}
	}
	return newestFirst(txns, limit), nil
}

func (m *mockStore) ListAllTransactions(ctx context.Context, limit int) ([]*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var txns []*Transaction
	for _, txn := range m.txns {
		clone := *txn
		txns = append(txns, &clone)
	}
	return newestFirst(txns, limit), nil
}

func (m *mockStore) CreateTransaction(ctx context.Context, txn *Transaction) error {
	if m.createTransactionFunc != nil {
		return m.createTransactionFunc(ctx, txn)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *txn
	m.txns[txn.ID] = &clone
	return nil
}

func (m *mockStore) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.txns[id]
	if !ok {
		return ErrTransactionNotFound
	}
	if update.Status != nil {
		txn.Status = *update.Status
	}
	if update.FraudFlag != nil {
		txn.FraudFlag = *update.FraudFlag
	}
	return nil
}

func (m *mockStore) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockStore) GetUser(ctx context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockStore) ListUsers(ctx context.Context) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []*User
	for _, user := range m.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (m *mockStore) CountUsers(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

func newestFirst(txns []*Transaction, limit int) []*Transaction {
	sort.Slice(txns, func(i, j int) bool { return txns[i].Sequence > txns[j].Sequence })
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}
	return txns
}

// TestAccountLifecycle tests account creation and the money flow of a small
// session: deposit, withdrawal, then a transfer to a second account.
func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	alpha, err := svc.CreateAccount(ctx, "user-1", 1000)
	require.NoError(t, err)
	assert.NotEmpty(t, alpha.ID)
	assert.Equal(t, "user-1", alpha.OwnerID)
	assert.Equal(t, int64(1000), alpha.Balance)
	assert.Equal(t, StatusActive, alpha.Status)

	beta, err := svc.CreateAccount(ctx, "user-2", 0)
	require.NoError(t, err)

	deposit, err := svc.Deposit(ctx, alpha.ID, 500, "payroll")
	require.NoError(t, err)
	assert.Equal(t, TypeDeposit, deposit.Type)
	assert.Equal(t, int64(500), deposit.Amount)
	assert.Equal(t, StatusCompleted, deposit.Status)
	assert.False(t, deposit.FraudFlag)
	assert.Equal(t, "payroll", deposit.Description)

	withdrawal, err := svc.Withdraw(ctx, alpha.ID, 200, "groceries")
	require.NoError(t, err)
	assert.Equal(t, TypeWithdrawal, withdrawal.Type)

	transfer, err := svc.Transfer(ctx, alpha.ID, beta.ID, 300, "rent share")
	require.NoError(t, err)
	assert.Equal(t, TypeTransfer, transfer.Type)
	assert.Equal(t, alpha.ID, transfer.AccountID)
	assert.Equal(t, beta.ID, transfer.TargetAccountID)

	alphaNow, err := svc.Account(ctx, alpha.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), alphaNow.Balance)

	betaNow, err := svc.Account(ctx, beta.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), betaNow.Balance)

	// Commit order is recoverable from the sequence numbers.
	assert.Equal(t, int64(1), deposit.Sequence)
	assert.Equal(t, int64(2), withdrawal.Sequence)
	assert.Equal(t, int64(3), transfer.Sequence)
}

// TestCreateAccountValidation tests rejection of malformed account requests.
func TestCreateAccountValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	_, err := svc.CreateAccount(ctx, "", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner ID is required")

	_, err = svc.CreateAccount(ctx, "user-1", -1)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

// TestDepositValidation tests the rejected deposit paths.
func TestDepositValidation(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	account, err := svc.CreateAccount(ctx, "user-1", 100)
	require.NoError(t, err)

	for _, amount := range []int64{0, -50} {
		_, err = svc.Deposit(ctx, account.ID, amount, "")
		require.ErrorIs(t, err, ErrInvalidAmount)

		var amountErr *AmountError
		require.ErrorAs(t, err, &amountErr)
		assert.Equal(t, amount, amountErr.Amount)
	}

	_, err = svc.Deposit(ctx, "", 100, "")
	require.Error(t, err)

	_, err = svc.Deposit(ctx, "missing", 100, "")
	require.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.Freeze(ctx, account.ID)
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, account.ID, 100, "")
	require.ErrorIs(t, err, ErrAccountInactive)

	var inactiveErr *InactiveAccountError
	require.ErrorAs(t, err, &inactiveErr)
	assert.Equal(t, StatusFrozen, inactiveErr.Status)

	// The rejected deposits must leave no trace.
	frozen, err := svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), frozen.Balance)

	txns, err := store.ListAllTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

// TestWithdrawInsufficientBalance tests that an overdraw is rejected without
// side effects.
func TestWithdrawInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	account, err := svc.CreateAccount(ctx, "user-1", 250)
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, account.ID, 300, "")
	require.ErrorIs(t, err, ErrInsufficientBalance)

	var balErr *InsufficientBalanceError
	require.ErrorAs(t, err, &balErr)
	assert.Equal(t, int64(250), balErr.Balance)
	assert.Equal(t, int64(300), balErr.Amount)

	current, err := svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), current.Balance)

	txns, err := store.ListAllTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, txns)

	// Withdrawing the exact balance is allowed and drains the account.
	_, err = svc.Withdraw(ctx, account.ID, 250, "")
	require.NoError(t, err)

	current, err = svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current.Balance)
}

// TestTransferValidation tests the rejected transfer paths.
func TestTransferValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	source, err := svc.CreateAccount(ctx, "user-1", 500)
	require.NoError(t, err)
	target, err := svc.CreateAccount(ctx, "user-2", 0)
	require.NoError(t, err)

	_, err = svc.Transfer(ctx, source.ID, source.ID, 100, "")
	require.ErrorIs(t, err, ErrSameAccountTransfer)

	_, err = svc.Transfer(ctx, source.ID, target.ID, 0, "")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Transfer(ctx, source.ID, "missing", 100, "")
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "target account")

	_, err = svc.Transfer(ctx, source.ID, target.ID, 600, "")
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// A frozen target blocks the transfer even when the source is fine.
	_, err = svc.Freeze(ctx, target.ID)
	require.NoError(t, err)

	_, err = svc.Transfer(ctx, source.ID, target.ID, 100, "")
	require.ErrorIs(t, err, ErrAccountInactive)
	assert.Contains(t, err.Error(), "target account")

	sourceNow, err := svc.Account(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), sourceNow.Balance)
	targetNow, err := svc.Account(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), targetNow.Balance)
}

// TestFraudFlagRoundTrip tests that flagging and unflagging a transaction
// touches review state only, never balances.
func TestFraudFlagRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	account, err := svc.CreateAccount(ctx, "user-1", 1000)
	require.NoError(t, err)

	deposit, err := svc.Deposit(ctx, account.ID, 400, "")
	require.NoError(t, err)

	flagged, err := svc.FlagFraud(ctx, deposit.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFlagged, flagged.Status)
	assert.True(t, flagged.FraudFlag)

	// Flagging is idempotent.
	flagged, err = svc.FlagFraud(ctx, deposit.ID)
	require.NoError(t, err)
	assert.True(t, flagged.FraudFlag)

	current, err := svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1400), current.Balance)

	cleared, err := svc.UnflagFraud(ctx, deposit.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, cleared.Status)
	assert.False(t, cleared.FraudFlag)

	current, err = svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1400), current.Balance)

	stored, err := svc.Transaction(ctx, deposit.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, stored.Status)

	_, err = svc.FlagFraud(ctx, "missing")
	require.ErrorIs(t, err, ErrTransactionNotFound)
}

// TestStatusTransitions tests freeze, reactivation and the terminal close.
func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	account, err := svc.CreateAccount(ctx, "user-1", 100)
	require.NoError(t, err)

	frozen, err := svc.Freeze(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFrozen, frozen.Status)

	// Freezing a frozen account is a no-op, not an error.
	frozen, err = svc.Freeze(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFrozen, frozen.Status)

	active, err := svc.Activate(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, active.Status)

	_, err = svc.Deposit(ctx, account.ID, 50, "")
	require.NoError(t, err)

	closed, err := svc.CloseAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusClosed, closed.Status)

	_, err = svc.Activate(ctx, account.ID)
	require.Error(t, err)

	var transErr *StatusTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, StatusClosed, transErr.From)
	assert.Equal(t, StatusActive, transErr.To)

	_, err = svc.Freeze(ctx, "missing")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// TestHistory tests the merged per-account history, newest first.
func TestHistory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	alpha, err := svc.CreateAccount(ctx, "user-1", 1000)
	require.NoError(t, err)
	beta, err := svc.CreateAccount(ctx, "user-2", 0)
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, beta.ID, 40, "")
	require.NoError(t, err)
	transfer, err := svc.Transfer(ctx, alpha.ID, beta.ID, 100, "")
	require.NoError(t, err)
	_, err = svc.Withdraw(ctx, alpha.ID, 50, "")
	require.NoError(t, err)

	// Beta sees its own deposit and the incoming transfer, newest first.
	history, err := svc.History(ctx, beta.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, transfer.ID, history[0].ID)
	assert.Equal(t, TypeDeposit, history[1].Type)

	history, err = svc.History(ctx, alpha.ID, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, TypeWithdrawal, history[0].Type)

	_, err = svc.History(ctx, "missing", 0)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

// TestCommitRevertsOnRecordFailure tests that a failed transaction insert
// rolls the balances back before the operation returns.
func TestCommitRevertsOnRecordFailure(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	source, err := svc.CreateAccount(ctx, "user-1", 800)
	require.NoError(t, err)
	target, err := svc.CreateAccount(ctx, "user-2", 200)
	require.NoError(t, err)

	store.createTransactionFunc = func(ctx context.Context, txn *Transaction) error {
		return errors.New("record store down")
	}

	_, err = svc.Transfer(ctx, source.ID, target.ID, 300, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record transaction")

	sourceNow, err := svc.Account(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(800), sourceNow.Balance)

	targetNow, err := svc.Account(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), targetNow.Balance)

	store.createTransactionFunc = nil

	_, err = svc.Deposit(ctx, source.ID, 100, "")
	require.NoError(t, err)
	sourceNow, err = svc.Account(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), sourceNow.Balance)
}

// TestCommitRevertsOnPartialBalanceFailure tests that a transfer whose second
// balance write fails restores the first one.
func TestCommitRevertsOnPartialBalanceFailure(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	source, err := svc.CreateAccount(ctx, "user-1", 800)
	require.NoError(t, err)
	target, err := svc.CreateAccount(ctx, "user-2", 200)
	require.NoError(t, err)

	var calls int
	store.updateBalanceFunc = func(ctx context.Context, id string, newBalance int64) error {
		calls++
		if calls == 2 {
			return errors.New("balance store down")
		}
		return store.setBalance(id, newBalance)
	}

	_, err = svc.Transfer(ctx, source.ID, target.ID, 300, "")
	require.Error(t, err)

	store.updateBalanceFunc = nil

	sourceNow, err := svc.Account(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(800), sourceNow.Balance)

	targetNow, err := svc.Account(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), targetNow.Balance)
}

// TestSequenceResumesAfterRestart tests that a fresh service over an existing
// store continues the commit sequence instead of restarting it.
func TestSequenceResumesAfterRestart(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	account, err := svc.CreateAccount(ctx, "user-1", 1000)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Deposit(ctx, account.ID, 10, "")
		require.NoError(t, err)
	}

	restarted := NewService(store, 0)
	txn, err := restarted.Deposit(ctx, account.ID, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), txn.Sequence)
}

// TestConcurrentWithdrawals tests that racing withdrawals drain an account
// exactly to its remainder: with balance b and amount w, precisely b/w
// succeed and every other attempt fails with ErrInsufficientBalance.
func TestConcurrentWithdrawals(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 0)

	account, err := svc.CreateAccount(ctx, "user-1", 1000)
	require.NoError(t, err)

	const attempts = 10
	const amount = 300

	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Withdraw(ctx, account.ID, amount, "drain")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successCount, insufficientCount int
	for err := range errs {
		switch {
		case err == nil:
			successCount++
		case errors.Is(err, ErrInsufficientBalance):
			insufficientCount++
		default:
			t.Fatalf("unexpected withdrawal error: %v", err)
		}
	}

	assert.Equal(t, 3, successCount)
	assert.Equal(t, attempts-3, insufficientCount)

	final, err := svc.Account(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), final.Balance)

	txns, err := store.ListAllTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, txns, 3)
}

// TestConcurrentOppositeTransfers tests that transfers racing in both
// directions between the same pair of accounts neither deadlock nor lose
// money.
func TestConcurrentOppositeTransfers(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	alpha, err := svc.CreateAccount(ctx, "user-1", 10_000)
	require.NoError(t, err)
	beta, err := svc.CreateAccount(ctx, "user-2", 10_000)
	require.NoError(t, err)

	const pairs = 25

	var wg sync.WaitGroup
	errs := make(chan error, pairs*2)
	for i := 0; i < pairs; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, alpha.ID, beta.ID, 10, "")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, beta.ID, alpha.ID, 10, "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	alphaNow, err := svc.Account(ctx, alpha.ID)
	require.NoError(t, err)
	betaNow, err := svc.Account(ctx, beta.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(10_000), alphaNow.Balance)
	assert.Equal(t, int64(10_000), betaNow.Balance)
	assert.Equal(t, int64(20_000), alphaNow.Balance+betaNow.Balance)
}

// TestLockWaitBound tests that an operation gives up with ErrConflict once
// the lock wait elapses, and that a canceled context interrupts the wait
// immediately.
func TestLockWaitBound(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewService(store, 50*time.Millisecond)

	account, err := svc.CreateAccount(ctx, "user-1", 100)
	require.NoError(t, err)

	release, err := svc.locks.acquire(ctx, time.Second, account.ID)
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, account.ID, 10, "")
	require.ErrorIs(t, err, ErrConflict)

	cancelCtx, cancel := context.WithCancel(ctx)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	slow := NewService(store, 0)
	releaseSlow, err := slow.locks.acquire(ctx, time.Second, account.ID)
	require.NoError(t, err)

	_, err = slow.Withdraw(cancelCtx, account.ID, 10, "")
	require.ErrorIs(t, err, context.Canceled)

	release()
	releaseSlow()

	// The lock is free again afterwards.
	_, err = svc.Deposit(ctx, account.ID, 10, "")
	require.NoError(t, err)
}

func BenchmarkDeposit(b *testing.B) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	account, err := svc.CreateAccount(ctx, "bench", 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Deposit(ctx, account.ID, 1, "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransfer(b *testing.B) {
	ctx := context.Background()
	svc := NewService(newMockStore(), 0)

	source, err := svc.CreateAccount(ctx, "bench", 1)
	if err != nil {
		b.Fatal(err)
	}
	target, err := svc.CreateAccount(ctx, "bench", 0)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from, to := source.ID, target.ID
		if i%2 == 1 {
			from, to = to, from
		}
		if _, err := svc.Transfer(ctx, from, to, 1, fmt.Sprintf("bench-%d", i)); err != nil {
			b.Fatal(err)
		}
	}
}
