// Command seed populates the configured store with demo data: one user per
// review role plus regular users, accounts with starting balances, and a mix
// of deposits, withdrawals and transfers including a few large flagged ones.
// Everything is written through the ledger engine so balances, sequences and
// account states come out exactly as live traffic would produce them. The
// random source is fixed, so reseeding an empty store is reproducible.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/KenKaneki23-ux/AWS-project/internal/config"
	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/memory"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/postgres"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/sqlite"
)

const (
	depositCount    = 15
	withdrawalCount = 12
	transferCount   = 10

	// largeMinor mirrors the $10,000 reporting threshold.
	largeMinor = 10_000 * 100

	maxFlagged = 3
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding store", "driver", cfg.Store.Driver)

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := seed(ctx, store, cfg.Ledger.LockWait); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, store ledger.Store, lockWait time.Duration) error {
	engine := ledger.NewService(store, lockWait)
	rng := rand.New(rand.NewSource(42))

	users, err := seedUsers(ctx, store, rng)
	if err != nil {
		return err
	}
	slog.Info("users created", "count", len(users))

	accounts, err := seedAccounts(ctx, engine, rng, users)
	if err != nil {
		return err
	}
	slog.Info("accounts created", "count", len(accounts))

	deposits := seedDeposits(ctx, engine, rng, accounts)
	withdrawals := seedWithdrawals(ctx, engine, rng, accounts)
	transfers := seedTransfers(ctx, engine, rng, accounts)
	slog.Info("transactions created",
		"deposits", deposits,
		"withdrawals", withdrawals,
		"transfers", transfers,
	)

	flagged, err := flagLargeTransactions(ctx, engine, store)
	if err != nil {
		return err
	}
	slog.Info("suspicious transactions flagged", "count", flagged)

	slog.Info("seeding complete",
		"users", len(users),
		"accounts", len(accounts),
		"transactions", deposits+withdrawals+transfers,
		"flagged", flagged,
	)
	return nil
}

func seedUsers(ctx context.Context, store ledger.Store, rng *rand.Rand) ([]*ledger.User, error) {
	type profile struct {
		name  string
		email string
		role  ledger.Role
	}

	profiles := []profile{
		{"Sarah Johnson", "fraud@test.com", ledger.RoleFraudAnalyst},
		{"John Martinez", "finance@test.com", ledger.RoleFinancialManager},
		{"Lisa Chen", "compliance@test.com", ledger.RoleComplianceOfficer},
	}

	roles := []ledger.Role{
		ledger.RoleFraudAnalyst,
		ledger.RoleFinancialManager,
		ledger.RoleComplianceOfficer,
	}
	for i := 1; i <= 7; i++ {
		profiles = append(profiles, profile{
			name:  fmt.Sprintf("Test User %d", i),
			email: fmt.Sprintf("user%d@test.com", i),
			role:  roles[rng.Intn(len(roles))],
		})
	}

	users := make([]*ledger.User, 0, len(profiles))
	for _, p := range profiles {
		user := &ledger.User{
			ID:        uuid.New().String(),
			Name:      p.name,
			Email:     p.email,
			Role:      p.role,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", p.email, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedAccounts(ctx context.Context, engine *ledger.Service, rng *rand.Rand, users []*ledger.User) ([]*ledger.Account, error) {
	var accounts []*ledger.Account
	for _, user := range users {
		for i := 0; i < 1+rng.Intn(2); i++ {
			balance := randAmount(rng, 1_000_00, 50_000_00)
			account, err := engine.CreateAccount(ctx, user.ID, balance)
			if err != nil {
				return nil, fmt.Errorf("failed to create account for %s: %w", user.Email, err)
			}
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func seedDeposits(ctx context.Context, engine *ledger.Service, rng *rand.Rand, accounts []*ledger.Account) int {
	reasons := []string{"Salary", "Bonus", "Refund", "Payment received"}

	count := 0
	for i := 0; i < depositCount; i++ {
		account := accounts[rng.Intn(len(accounts))]
		amount := randAmount(rng, 100_00, 5_000_00)
		desc := "Deposit - " + reasons[rng.Intn(len(reasons))]
		if _, err := engine.Deposit(ctx, account.ID, amount, desc); err != nil {
			slog.Warn("deposit failed", "account", account.ID, "error", err)
			continue
		}
		count++
	}

	// Two deposits over the reporting threshold so the fraud and compliance
	// views have large transactions to show.
	for _, amount := range []int64{12_500_00, 18_000_00} {
		account := accounts[rng.Intn(len(accounts))]
		if _, err := engine.Deposit(ctx, account.ID, amount, "Deposit - Invoice settlement"); err != nil {
			slog.Warn("deposit failed", "account", account.ID, "error", err)
			continue
		}
		count++
	}
	return count
}

func seedWithdrawals(ctx context.Context, engine *ledger.Service, rng *rand.Rand, accounts []*ledger.Account) int {
	reasons := []string{"ATM", "Bill payment", "Cash withdrawal", "Purchase"}

	count := 0
	for i := 0; i < withdrawalCount; i++ {
		account := accounts[rng.Intn(len(accounts))]
		current, err := engine.Account(ctx, account.ID)
		if err != nil {
			slog.Warn("balance lookup failed", "account", account.ID, "error", err)
			continue
		}

		// Cap at 30% of the current balance so the account stays usable.
		max := current.Balance * 30 / 100
		if max <= 50_00 {
			continue
		}
		amount := randAmount(rng, 50_00, max)
		desc := "Withdrawal - " + reasons[rng.Intn(len(reasons))]
		if _, err := engine.Withdraw(ctx, account.ID, amount, desc); err != nil {
			slog.Warn("withdrawal failed", "account", account.ID, "error", err)
			continue
		}
		count++
	}
	return count
}

func seedTransfers(ctx context.Context, engine *ledger.Service, rng *rand.Rand, accounts []*ledger.Account) int {
	reasons := []string{"Payment", "Gift", "Loan repayment", "Shared expense"}

	count := 0
	for i := 0; i < transferCount && len(accounts) > 1; i++ {
		source := accounts[rng.Intn(len(accounts))]
		target := accounts[rng.Intn(len(accounts))]
		if target.ID == source.ID {
			continue
		}

		current, err := engine.Account(ctx, source.ID)
		if err != nil {
			slog.Warn("balance lookup failed", "account", source.ID, "error", err)
			continue
		}

		// Cap at 20% of the current balance.
		max := current.Balance * 20 / 100
		if max <= 100_00 {
			continue
		}
		amount := randAmount(rng, 100_00, max)
		desc := "Transfer - " + reasons[rng.Intn(len(reasons))]
		if _, err := engine.Transfer(ctx, source.ID, target.ID, amount, desc); err != nil {
			slog.Warn("transfer failed", "source", source.ID, "target", target.ID, "error", err)
			continue
		}
		count++
	}
	return count
}

// flagLargeTransactions marks the first few transactions over the reporting
// threshold as suspicious so the fraud dashboard has data.
func flagLargeTransactions(ctx context.Context, engine *ledger.Service, store ledger.Store) (int, error) {
	txns, err := store.ListAllTransactions(ctx, 50)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	flagged := 0
	for _, txn := range txns {
		if flagged >= maxFlagged {
			break
		}
		if txn.Amount <= largeMinor {
			continue
		}
		if _, err := engine.FlagFraud(ctx, txn.ID); err != nil {
			return flagged, fmt.Errorf("failed to flag transaction %s: %w", txn.ID, err)
		}
		flagged++
	}
	return flagged, nil
}

func randAmount(rng *rand.Rand, min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + rng.Int63n(max-min+1)
}

// openStore selects and initializes the storage engine named in the
// configuration. The returned func releases the store's resources.
func openStore(ctx context.Context, cfg *config.Config) (ledger.Store, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		return memory.NewStore(), func() {}, nil

	case "sqlite":
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("failed to close sqlite store", "error", err)
			}
		}, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		store := postgres.NewStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
