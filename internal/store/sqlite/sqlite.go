// Package sqlite implements the ledger store on SQLite through database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
)

// Store persists accounts, transactions, users and notifications in a SQLite
// database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY and keeps :memory: databases coherent across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// runMigrations creates the ledger tables.
func runMigrations(db *sql.DB) error {
	migrationSQL := `
	BEGIN TRANSACTION;

	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		balance INTEGER NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_owner_id ON accounts(owner_id);

	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount INTEGER NOT NULL,
		target_account_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		fraud_flag BOOLEAN NOT NULL DEFAULT 0,
		seq INTEGER UNIQUE NOT NULL,
		created_at TIMESTAMP NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_target_account_id ON transactions(target_account_id);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id);

	COMMIT;
	`

	_, err := db.Exec(migrationSQL)
	return err
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	query := `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		WHERE id = ?
	`

	var account ledger.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.OwnerID, &account.Balance, &account.Status, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	return &account, nil
}

// ListAccountsByOwner retrieves every account owned by the given user.
func (s *Store) ListAccountsByOwner(ctx context.Context, ownerID string) ([]*ledger.Account, error) {
	query := `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		WHERE owner_id = ?
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// ListAllAccounts retrieves every account.
func (s *Store) ListAllAccounts(ctx context.Context) ([]*ledger.Account, error) {
	query := `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, account *ledger.Account) error {
	query := `
		INSERT INTO accounts (id, owner_id, balance, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID, account.OwnerID, account.Balance, string(account.Status), account.CreatedAt)
	if err != nil {
		return fmt.Errorf("database insert failed: %w", err)
	}

	return nil
}

// UpdateBalance writes an absolute balance for an account.
func (s *Store) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	query := `UPDATE accounts SET balance = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, newBalance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ledger.ErrAccountNotFound
	}

	return nil
}

// SetStatus writes the lifecycle status of an account.
func (s *Store) SetStatus(ctx context.Context, id string, status ledger.AccountStatus) error {
	query := `UPDATE accounts SET status = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ledger.ErrAccountNotFound
	}

	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		WHERE id = ?
	`

	var txn ledger.Transaction
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&txn.ID, &txn.AccountID, &txn.Type, &txn.Amount, &txn.TargetAccountID,
		&txn.Status, &txn.FraudFlag, &txn.Sequence, &txn.CreatedAt, &txn.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	return &txn, nil
}

// ListTransactionsByAccount retrieves the merged history of an account,
// newest first: every transaction where it appears as source or as transfer
// target. A limit <= 0 means no limit.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*ledger.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		WHERE account_id = ? OR target_account_id = ?
		ORDER BY seq DESC
	`
	args := []any{accountID, accountID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListAllTransactions retrieves transactions across all accounts, newest
// first. A limit <= 0 means no limit.
func (s *Store) ListAllTransactions(ctx context.Context, limit int) ([]*ledger.Transaction, error) {
	query := `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		ORDER BY seq DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CreateTransaction inserts a committed transaction record.
func (s *Store) CreateTransaction(ctx context.Context, txn *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		txn.ID, txn.AccountID, string(txn.Type), txn.Amount, txn.TargetAccountID,
		string(txn.Status), txn.FraudFlag, txn.Sequence, txn.CreatedAt, txn.Description)
	if err != nil {
		return fmt.Errorf("database insert failed: %w", err)
	}

	return nil
}

// UpdateTransaction applies a partial update to a transaction record.
func (s *Store) UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) error {
	var sets []string
	var args []any
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.FraudFlag != nil {
		sets = append(sets, "fraud_flag = ?")
		args = append(args, *update.FraudFlag)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE transactions SET %s WHERE id = ?", strings.Join(sets, ", "))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ledger.ErrTransactionNotFound
	}

	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *ledger.User) error {
	query := `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, string(user.Role), user.CreatedAt)
	if err != nil {
		return fmt.Errorf("database insert failed: %w", err)
	}

	return nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*ledger.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = ?
	`

	var user ledger.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	return &user, nil
}

// ListUsers retrieves every user.
func (s *Store) ListUsers(ctx context.Context) ([]*ledger.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*ledger.User
	for rows.Next() {
		var user ledger.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// CreateNotification inserts a new notification row.
func (s *Store) CreateNotification(ctx context.Context, n *notify.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, category, priority, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, string(n.Category), string(n.Priority), n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("database insert failed: %w", err)
	}

	return nil
}

// ListNotificationsByUser returns a user's notifications, broadcasts
// included, newest first. With unreadOnly set, read notifications are
// skipped. A limit <= 0 means no limit.
func (s *Store) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*notify.Notification, error) {
	query := `
		SELECT id, user_id, title, message, category, priority, is_read, created_at
		FROM notifications
		WHERE (user_id = ? OR user_id = '')
	`
	args := []any{userID}
	if unreadOnly {
		query += " AND is_read = 0"
	}
	query += " ORDER BY created_at DESC, id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var ns []*notify.Notification
	for rows.Next() {
		var n notify.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category, &n.Priority, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		ns = append(ns, &n)
	}

	return ns, rows.Err()
}

// MarkNotificationRead marks a notification as read.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notify.ErrNotificationNotFound
	}

	return nil
}

// UnreadNotificationCount returns how many unread notifications a user has,
// broadcasts included.
func (s *Store) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE (user_id = ? OR user_id = '') AND is_read = 0
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanAccounts(rows *sql.Rows) ([]*ledger.Account, error) {
	var accounts []*ledger.Account
	for rows.Next() {
		var account ledger.Account
		err := rows.Scan(&account.ID, &account.OwnerID, &account.Balance, &account.Status, &account.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

func scanTransactions(rows *sql.Rows) ([]*ledger.Transaction, error) {
	var txns []*ledger.Transaction
	for rows.Next() {
		var txn ledger.Transaction
		err := rows.Scan(
			&txn.ID, &txn.AccountID, &txn.Type, &txn.Amount, &txn.TargetAccountID,
			&txn.Status, &txn.FraudFlag, &txn.Sequence, &txn.CreatedAt, &txn.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, rows.Err()
}
