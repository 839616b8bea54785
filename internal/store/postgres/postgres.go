// Package postgres implements the ledger store on PostgreSQL using pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
)

// Store persists accounts, transactions, users and notifications in
// PostgreSQL.
type Store struct {
	Pool *pgxpool.Pool
}

// NewStore creates a store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// Migrate creates the ledger tables if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	migrationSQL := `
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		balance BIGINT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_owner_id ON accounts(owner_id);

	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount BIGINT NOT NULL,
		target_account_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		fraud_flag BOOLEAN NOT NULL DEFAULT FALSE,
		seq BIGINT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_target_account_id ON transactions(target_account_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_seq ON transactions(seq);

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		category TEXT NOT NULL,
		priority TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id);
	`

	if _, err := s.Pool.Exec(queryCtx, migrationSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by id.
func (s *Store) GetAccount(ctx context.Context, id string) (*ledger.Account, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var account ledger.Account
	err := s.Pool.QueryRow(queryCtx, `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		WHERE id = $1
	`, id).Scan(
		&account.ID,
		&account.OwnerID,
		&account.Balance,
		&account.Status,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// ListAccountsByOwner retrieves every account owned by the given user.
func (s *Store) ListAccountsByOwner(ctx context.Context, ownerID string) ([]*ledger.Account, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.Pool.Query(queryCtx, `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// ListAllAccounts retrieves every account.
func (s *Store) ListAllAccounts(ctx context.Context) ([]*ledger.Account, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := s.Pool.Query(queryCtx, `
		SELECT id, owner_id, balance, status, created_at
		FROM accounts
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, account *ledger.Account) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Pool.Exec(queryCtx, `
		INSERT INTO accounts (id, owner_id, balance, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, account.ID, account.OwnerID, account.Balance, string(account.Status), account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// UpdateBalance writes an absolute balance for an account. The row is locked
// inside a SERIALIZABLE transaction and the write retries on serialization
// failure.
func (s *Store) UpdateBalance(ctx context.Context, id string, newBalance int64) error {
	const maxRetries = 3

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.updateBalanceTx(ctx, id, newBalance)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "40001" {
				// Serialization failure, retry
				if attempt == maxRetries-1 {
					return fmt.Errorf("failed to update balance after %d retries due to serialization failure: %w", maxRetries, err)
				}
				time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
				continue
			}
			return err
		}
		break
	}

	return nil
}

func (s *Store) updateBalanceTx(ctx context.Context, id string, newBalance int64) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := s.Pool.Acquire(queryCtx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(queryCtx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(queryCtx)

	// Lock the account row for the duration of the write.
	var current int64
	err = tx.QueryRow(queryCtx, `
		SELECT balance
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.ErrAccountNotFound
		}
		return fmt.Errorf("failed to lock account: %w", err)
	}

	_, err = tx.Exec(queryCtx, `
		UPDATE accounts SET balance = $1 WHERE id = $2
	`, newBalance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(queryCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetStatus writes the lifecycle status of an account.
func (s *Store) SetStatus(ctx context.Context, id string, status ledger.AccountStatus) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := s.Pool.Exec(queryCtx, `
		UPDATE accounts SET status = $1 WHERE id = $2
	`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrAccountNotFound
	}

	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var txn ledger.Transaction
	err := s.Pool.QueryRow(queryCtx, `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		WHERE id = $1
	`, id).Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.Type,
		&txn.Amount,
		&txn.TargetAccountID,
		&txn.Status,
		&txn.FraudFlag,
		&txn.Sequence,
		&txn.CreatedAt,
		&txn.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactionsByAccount retrieves the merged history of an account,
// newest first: every transaction where it appears as source or as transfer
// target. A limit <= 0 means no limit.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*ledger.Transaction, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		WHERE account_id = $1 OR target_account_id = $1
		ORDER BY seq DESC
	`
	args := []any{accountID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.Pool.Query(queryCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListAllTransactions retrieves transactions across all accounts, newest
// first. A limit <= 0 means no limit.
func (s *Store) ListAllTransactions(ctx context.Context, limit int) ([]*ledger.Transaction, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := `
		SELECT id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description
		FROM transactions
		ORDER BY seq DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.Pool.Query(queryCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CreateTransaction inserts a committed transaction record. The source
// account row is locked inside a SERIALIZABLE transaction and the insert
// retries on serialization failure.
func (s *Store) CreateTransaction(ctx context.Context, txn *ledger.Transaction) error {
	const maxRetries = 3

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.insertTransactionTx(ctx, txn)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "40001" {
				// Serialization failure, retry
				if attempt == maxRetries-1 {
					return fmt.Errorf("failed to insert transaction after %d retries due to serialization failure: %w", maxRetries, err)
				}
				time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
				continue
			}
			return err
		}
		break
	}

	return nil
}

func (s *Store) insertTransactionTx(ctx context.Context, txn *ledger.Transaction) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := s.Pool.Acquire(queryCtx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.BeginTx(queryCtx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(queryCtx)

	// Lock the source account row so the record lands against a live row.
	var status string
	err = tx.QueryRow(queryCtx, `
		SELECT status
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, txn.AccountID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.ErrAccountNotFound
		}
		return fmt.Errorf("failed to lock account: %w", err)
	}

	_, err = tx.Exec(queryCtx, `
		INSERT INTO transactions (id, account_id, type, amount, target_account_id, status, fraud_flag, seq, created_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, txn.ID, txn.AccountID, string(txn.Type), txn.Amount, txn.TargetAccountID,
		string(txn.Status), txn.FraudFlag, txn.Sequence, txn.CreatedAt, txn.Description)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := tx.Commit(queryCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateTransaction applies a partial update to a transaction record.
func (s *Store) UpdateTransaction(ctx context.Context, id string, update ledger.TransactionUpdate) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sets []string
	var args []any
	if update.Status != nil {
		args = append(args, string(*update.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if update.FraudFlag != nil {
		args = append(args, *update.FraudFlag)
		sets = append(sets, fmt.Sprintf("fraud_flag = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE transactions SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := s.Pool.Exec(queryCtx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrTransactionNotFound
	}

	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *ledger.User) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Pool.Exec(queryCtx, `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, string(user.Role), user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (*ledger.User, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user ledger.User
	err := s.Pool.QueryRow(queryCtx, `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListUsers retrieves every user.
func (s *Store) ListUsers(ctx context.Context) ([]*ledger.User, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := s.Pool.Query(queryCtx, `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*ledger.User
	for rows.Next() {
		var user ledger.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var count int
	err := s.Pool.QueryRow(queryCtx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// CreateNotification inserts a new notification row.
func (s *Store) CreateNotification(ctx context.Context, n *notify.Notification) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Pool.Exec(queryCtx, `
		INSERT INTO notifications (id, user_id, title, message, category, priority, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, n.ID, n.UserID, n.Title, n.Message, string(n.Category), string(n.Priority), n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ListNotificationsByUser returns a user's notifications, broadcasts
// included, newest first. With unreadOnly set, read notifications are
// skipped. A limit <= 0 means no limit.
func (s *Store) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*notify.Notification, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := `
		SELECT id, user_id, title, message, category, priority, is_read, created_at
		FROM notifications
		WHERE (user_id = $1 OR user_id = '')
	`
	args := []any{userID}
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC, id"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.Pool.Query(queryCtx, query, args...)
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
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := s.Pool.Exec(queryCtx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notify.ErrNotificationNotFound
	}

	return nil
}

// UnreadNotificationCount returns how many unread notifications a user has,
// broadcasts included.
func (s *Store) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var count int
	err := s.Pool.QueryRow(queryCtx, `
		SELECT COUNT(*)
		FROM notifications
		WHERE (user_id = $1 OR user_id = '') AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return count, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.Pool.Close()
}

func scanAccounts(rows pgx.Rows) ([]*ledger.Account, error) {
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

func scanTransactions(rows pgx.Rows) ([]*ledger.Transaction, error) {
	var txns []*ledger.Transaction
	for rows.Next() {
		var txn ledger.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.AccountID,
			&txn.Type,
			&txn.Amount,
			&txn.TargetAccountID,
			&txn.Status,
			&txn.FraudFlag,
			&txn.Sequence,
			&txn.CreatedAt,
			&txn.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, rows.Err()
}
