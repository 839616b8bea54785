package ledger

import "context"

// TransactionUpdate is a partial update applied to an existing transaction.
// Nil fields are left unchanged.
type TransactionUpdate struct {
	Status    *TransactionStatus
	FraudFlag *bool
}

// AccountStore persists account records. Implementations return
// ErrAccountNotFound for absent ids, including from UpdateBalance and
// SetStatus, so a write against a missing row never passes silently.
type AccountStore interface {
	GetAccount(ctx context.Context, id string) (*Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]*Account, error)
	ListAllAccounts(ctx context.Context) ([]*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
	UpdateBalance(ctx context.Context, id string, newBalance int64) error
	SetStatus(ctx context.Context, id string, status AccountStatus) error
}

// TransactionStore persists transaction records. List methods return newest
// first (descending commit sequence); a limit <= 0 means no limit.
// ListTransactionsByAccount returns the merged history: every transaction
// where the account appears as source or as transfer target.
type TransactionStore interface {
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*Transaction, error)
	ListAllTransactions(ctx context.Context, limit int) ([]*Transaction, error)
	CreateTransaction(ctx context.Context, txn *Transaction) error
	UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) error
}

// UserStore persists user records.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	CountUsers(ctx context.Context) (int, error)
}

// Store is the full persistence surface a storage engine provides. One
// implementation is selected at startup and injected into the services that
// need it.
type Store interface {
	AccountStore
	TransactionStore
	UserStore
}
