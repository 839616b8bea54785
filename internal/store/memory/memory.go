package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
)

// Store is an in-memory storage engine, used for tests and single-process
// runs. All methods return copies, so callers can never mutate stored state
// behind the store's back.
type Store struct {
	mu            sync.RWMutex
	accounts      map[string]*ledger.Account
	transactions  map[string]*ledger.Transaction
	users         map[string]*ledger.User
	notifications map[string]*notify.Notification
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]*ledger.Account),
		transactions:  make(map[string]*ledger.Transaction),
		users:         make(map[string]*ledger.User),
		notifications: make(map[string]*notify.Notification),
	}
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

// ListAccountsByOwner retrieves all accounts belonging to a user, in stable
// id order.
func (s *Store) ListAccountsByOwner(ctx context.Context, ownerID string) ([]*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []*ledger.Account
	for _, account := range s.accounts {
		if account.OwnerID == ownerID {
			accounts = append(accounts, cloneAccount(account))
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// ListAllAccounts retrieves every account, in stable id order.
func (s *Store) ListAllAccounts(ctx context.Context) ([]*ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*ledger.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, cloneAccount(account))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// CreateAccount stores a new account record.
func (s *Store) CreateAccount(ctx context.Context, account *ledger.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}
	s.accounts[account.ID] = cloneAccount(account)
	return nil
}

// UpdateBalance sets an account's balance to the given absolute value.
func (s *Store) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	account.Balance = newBalance
	return nil
}

// SetStatus sets an account's status.
func (s *Store) SetStatus(ctx context.Context, id string, status ledger.AccountStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	account.Status = status
	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, ledger.ErrTransactionNotFound
	}
	return cloneTransaction(txn), nil
}

// ListTransactionsByAccount returns the merged history of an account, newest
// first: every transaction where the account is source or transfer target.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txns []*ledger.Transaction
	for _, txn := range s.transactions {
		if txn.AccountID == accountID || txn.TargetAccountID == accountID {
			txns = append(txns, cloneTransaction(txn))
		}
	}
	return newestFirst(txns, limit), nil
}

// ListAllTransactions returns every transaction, newest first.
func (s *Store) ListAllTransactions(ctx context.Context, limit int) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]*ledger.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		txns = append(txns, cloneTransaction(txn))
	}
	return newestFirst(txns, limit), nil
}

// CreateTransaction stores a new transaction record.
func (s *Store) CreateTransaction(ctx context.Context, txn *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.transactions[txn.ID]; exists {
		return fmt.Errorf("transaction %s already exists", txn.ID)
	}
	s.transactions[txn.ID] = cloneTransaction(txn)
	return nil
}

// UpdateTransaction applies a partial update to an existing transaction.
func (s *Store) UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[id]
	if !ok {
		return ledger.ErrTransactionNotFound
	}
	if update.Status != nil {
		txn.Status = *update.Status
	}
	if update.FraudFlag != nil {
		txn.FraudFlag = *update.FraudFlag
	}
	return nil
}

// CreateUser stores a new user record.
func (s *Store) CreateUser(ctx context.Context, user *ledger.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	cloned := *user
	s.users[user.ID] = &cloned
	return nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*ledger.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ledger.ErrUserNotFound
	}
	cloned := *user
	return &cloned, nil
}

// ListUsers retrieves every user, in stable id order.
func (s *Store) ListUsers(ctx context.Context) ([]*ledger.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*ledger.User, 0, len(s.users))
	for _, user := range s.users {
		cloned := *user
		users = append(users, &cloned)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users), nil
}

// CreateNotification stores a new notification record.
func (s *Store) CreateNotification(ctx context.Context, n *notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[n.ID]; exists {
		return fmt.Errorf("notification %s already exists", n.ID)
	}
	cloned := *n
	s.notifications[n.ID] = &cloned
	return nil
}

// ListNotificationsByUser returns a user's notifications, broadcasts
// included, newest first. With unreadOnly set, read notifications are
// skipped. A limit <= 0 means no limit.
func (s *Store) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*notify.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ns []*notify.Notification
	for _, n := range s.notifications {
		if n.UserID != userID && n.UserID != "" {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		cloned := *n
		ns = append(ns, &cloned)
	}
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.After(ns[j].CreatedAt)
		}
		return ns[i].ID < ns[j].ID
	})
	if limit > 0 && len(ns) > limit {
		ns = ns[:limit]
	}
	return ns, nil
}

// MarkNotificationRead marks a notification as read.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return notify.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

// UnreadNotificationCount returns how many unread notifications a user has,
// broadcasts included.
func (s *Store) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if (n.UserID == userID || n.UserID == "") && !n.Read {
			count++
		}
	}
	return count, nil
}

func cloneAccount(account *ledger.Account) *ledger.Account {
	cloned := *account
	return &cloned
}

func cloneTransaction(txn *ledger.Transaction) *ledger.Transaction {
	cloned := *txn
	return &cloned
}

// newestFirst orders transactions by descending commit sequence and applies
// the limit.
func newestFirst(txns []*ledger.Transaction, limit int) []*ledger.Transaction {
	sort.Slice(txns, func(i, j int) bool { return txns[i].Sequence > txns[j].Sequence })
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}
	return txns
}
