package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	ledgerpb "github.com/KenKaneki23-ux/AWS-project/api/gen/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/config"
	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
	"github.com/KenKaneki23-ux/AWS-project/internal/security"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/memory"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/postgres"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/sqlite"
	"github.com/KenKaneki23-ux/AWS-project/pkg/audit"
)

// ledgerServer exposes the ledger engine over gRPC. Every mutating RPC is
// recorded in the hash-chained audit log before and after it runs.
type ledgerServer struct {
	ledgerpb.UnimplementedLedgerServiceServer

	engine *ledger.Service
	store  ledger.Store
	audit  *audit.ChainLogger
	sink   notify.Sink
}

// auditf appends a request entry to the audit chain and surfaces its hash in
// the server log so operators can spot-check the chain later.
func (s *ledgerServer) auditf(format string, args ...any) {
	entry := s.audit.Appendf(format, args...)
	slog.Info("audit", "seq", entry.Seq, "hash", entry.Hash)
}

func (s *ledgerServer) CreateAccount(ctx context.Context, req *ledgerpb.CreateAccountRequest) (*ledgerpb.CreateAccountResponse, error) {
	s.auditf("CreateAccount request: owner=%s initial_balance=%d", req.OwnerId, req.InitialBalance)

	if req.OwnerId == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	account, err := s.engine.CreateAccount(ctx, req.OwnerId, req.InitialBalance)
	if err != nil {
		s.audit.Appendf("CreateAccount failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Account created: %s", account.ID)
	return &ledgerpb.CreateAccountResponse{Account: pbAccount(account)}, nil
}

func (s *ledgerServer) GetAccount(ctx context.Context, req *ledgerpb.GetAccountRequest) (*ledgerpb.GetAccountResponse, error) {
	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	account, err := s.engine.Account(ctx, req.AccountId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &ledgerpb.GetAccountResponse{Account: pbAccount(account)}, nil
}

func (s *ledgerServer) ListAccounts(ctx context.Context, req *ledgerpb.ListAccountsRequest) (*ledgerpb.ListAccountsResponse, error) {
	var accounts []*ledger.Account
	var err error

	if req.OwnerId != "" {
		accounts, err = s.engine.AccountsByOwner(ctx, req.OwnerId)
	} else {
		accounts, err = s.store.ListAllAccounts(ctx)
	}
	if err != nil {
		return nil, toStatus(err)
	}

	pbAccounts := make([]*ledgerpb.Account, 0, len(accounts))
	for _, account := range accounts {
		pbAccounts = append(pbAccounts, pbAccount(account))
	}

	return &ledgerpb.ListAccountsResponse{
		Accounts: pbAccounts,
		Total:    int32(len(pbAccounts)),
	}, nil
}

func (s *ledgerServer) Deposit(ctx context.Context, req *ledgerpb.DepositRequest) (*ledgerpb.DepositResponse, error) {
	s.auditf("Deposit request: account=%s amount=%d", req.AccountId, req.Amount)

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	txn, err := s.engine.Deposit(ctx, req.AccountId, req.Amount, req.Description)
	if err != nil {
		s.audit.Appendf("Deposit failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Deposit committed: transaction=%s seq=%d", txn.ID, txn.Sequence)
	return &ledgerpb.DepositResponse{Transaction: pbTransaction(txn)}, nil
}

func (s *ledgerServer) Withdraw(ctx context.Context, req *ledgerpb.WithdrawRequest) (*ledgerpb.WithdrawResponse, error) {
	s.auditf("Withdraw request: account=%s amount=%d", req.AccountId, req.Amount)

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	txn, err := s.engine.Withdraw(ctx, req.AccountId, req.Amount, req.Description)
	if err != nil {
		s.audit.Appendf("Withdraw failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Withdrawal committed: transaction=%s seq=%d", txn.ID, txn.Sequence)
	return &ledgerpb.WithdrawResponse{Transaction: pbTransaction(txn)}, nil
}

func (s *ledgerServer) Transfer(ctx context.Context, req *ledgerpb.TransferRequest) (*ledgerpb.TransferResponse, error) {
	s.auditf("Transfer request: source=%s target=%s amount=%d", req.SourceAccountId, req.TargetAccountId, req.Amount)

	if req.SourceAccountId == "" || req.TargetAccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "source_account_id and target_account_id are required")
	}

	txn, err := s.engine.Transfer(ctx, req.SourceAccountId, req.TargetAccountId, req.Amount, req.Description)
	if err != nil {
		s.audit.Appendf("Transfer failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Transfer committed: transaction=%s seq=%d", txn.ID, txn.Sequence)
	return &ledgerpb.TransferResponse{Transaction: pbTransaction(txn)}, nil
}

func (s *ledgerServer) FlagFraud(ctx context.Context, req *ledgerpb.FlagFraudRequest) (*ledgerpb.FlagFraudResponse, error) {
	s.auditf("FlagFraud request: transaction=%s reason=%s", req.TransactionId, req.Reason)

	if req.TransactionId == "" {
		return nil, status.Error(codes.InvalidArgument, "transaction_id is required")
	}

	txn, err := s.engine.FlagFraud(ctx, req.TransactionId)
	if err != nil {
		s.audit.Appendf("FlagFraud failed: %v", err)
		return nil, toStatus(err)
	}
	s.audit.Appendf("Transaction flagged: %s", txn.ID)

	s.dispatchFraudAlert(ctx, txn, req.Reason)

	return &ledgerpb.FlagFraudResponse{Transaction: pbTransaction(txn)}, nil
}

// dispatchFraudAlert notifies the owner of the flagged transaction's account.
// Delivery problems are logged and do not fail the RPC.
func (s *ledgerServer) dispatchFraudAlert(ctx context.Context, txn *ledger.Transaction, reason string) {
	if reason == "" {
		reason = "manual review"
	}

	account, err := s.store.GetAccount(ctx, txn.AccountID)
	if err != nil {
		slog.Warn("fraud alert owner lookup failed", "account", txn.AccountID, "error", err)
		return
	}

	notify.Dispatch(ctx, s.sink, notify.FraudAlert(account.OwnerID, txn.ID, reason))
}

func (s *ledgerServer) UnflagFraud(ctx context.Context, req *ledgerpb.UnflagFraudRequest) (*ledgerpb.UnflagFraudResponse, error) {
	s.auditf("UnflagFraud request: transaction=%s", req.TransactionId)

	if req.TransactionId == "" {
		return nil, status.Error(codes.InvalidArgument, "transaction_id is required")
	}

	txn, err := s.engine.UnflagFraud(ctx, req.TransactionId)
	if err != nil {
		s.audit.Appendf("UnflagFraud failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Transaction unflagged: %s", txn.ID)
	return &ledgerpb.UnflagFraudResponse{Transaction: pbTransaction(txn)}, nil
}

func (s *ledgerServer) FreezeAccount(ctx context.Context, req *ledgerpb.FreezeAccountRequest) (*ledgerpb.FreezeAccountResponse, error) {
	s.auditf("FreezeAccount request: account=%s", req.AccountId)

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	account, err := s.engine.Freeze(ctx, req.AccountId)
	if err != nil {
		s.audit.Appendf("FreezeAccount failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Account frozen: %s", account.ID)
	return &ledgerpb.FreezeAccountResponse{Account: pbAccount(account)}, nil
}

func (s *ledgerServer) ActivateAccount(ctx context.Context, req *ledgerpb.ActivateAccountRequest) (*ledgerpb.ActivateAccountResponse, error) {
	s.auditf("ActivateAccount request: account=%s", req.AccountId)

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	account, err := s.engine.Activate(ctx, req.AccountId)
	if err != nil {
		s.audit.Appendf("ActivateAccount failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Account activated: %s", account.ID)
	return &ledgerpb.ActivateAccountResponse{Account: pbAccount(account)}, nil
}

func (s *ledgerServer) CloseAccount(ctx context.Context, req *ledgerpb.CloseAccountRequest) (*ledgerpb.CloseAccountResponse, error) {
	s.auditf("CloseAccount request: account=%s", req.AccountId)

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	account, err := s.engine.CloseAccount(ctx, req.AccountId)
	if err != nil {
		s.audit.Appendf("CloseAccount failed: %v", err)
		return nil, toStatus(err)
	}

	s.audit.Appendf("Account closed: %s", account.ID)
	return &ledgerpb.CloseAccountResponse{Account: pbAccount(account)}, nil
}

func (s *ledgerServer) GetTransaction(ctx context.Context, req *ledgerpb.GetTransactionRequest) (*ledgerpb.GetTransactionResponse, error) {
	if req.TransactionId == "" {
		return nil, status.Error(codes.InvalidArgument, "transaction_id is required")
	}

	txn, err := s.engine.Transaction(ctx, req.TransactionId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &ledgerpb.GetTransactionResponse{Transaction: pbTransaction(txn)}, nil
}

func (s *ledgerServer) GetHistory(ctx context.Context, req *ledgerpb.GetHistoryRequest) (*ledgerpb.GetHistoryResponse, error) {
	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	txns, err := s.engine.History(ctx, req.AccountId, int(req.Limit))
	if err != nil {
		return nil, toStatus(err)
	}

	pbTxns := make([]*ledgerpb.Transaction, 0, len(txns))
	for _, txn := range txns {
		pbTxns = append(pbTxns, pbTransaction(txn))
	}

	return &ledgerpb.GetHistoryResponse{
		Transactions: pbTxns,
		Total:        int32(len(pbTxns)),
	}, nil
}

// toStatus maps ledger errors onto gRPC status codes.
func toStatus(err error) error {
	var transition *ledger.StatusTransitionError

	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameAccountTransfer):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ledger.ErrAccountInactive),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.As(err, &transition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ledger.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func pbAccount(a *ledger.Account) *ledgerpb.Account {
	return &ledgerpb.Account{
		Id:        a.ID,
		OwnerId:   a.OwnerID,
		Balance:   a.Balance,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func pbTransaction(t *ledger.Transaction) *ledgerpb.Transaction {
	return &ledgerpb.Transaction{
		Id:              t.ID,
		AccountId:       t.AccountID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		TargetAccountId: t.TargetAccountID,
		Status:          string(t.Status),
		FraudFlag:       t.FraudFlag,
		Sequence:        t.Sequence,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		Description:     t.Description,
	}
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

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("starting ledgerd", "environment", cfg.Environment, "store", cfg.Store.Driver)

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	engine := ledger.NewService(store, cfg.Ledger.LockWait)
	chain := audit.NewChainLogger()

	sinks := notify.MultiSink{notify.NewConsoleSink(nil)}
	if notifyStore, ok := store.(notify.Store); ok {
		sinks = append(sinks, notify.NewStoreSink(notifyStore))
	}
	if cfg.Notify.WebhookURL != "" {
		sinks = append(sinks, notify.NewWebhookSink(cfg.Notify.WebhookURL))
	}

	server := &ledgerServer{
		engine: engine,
		store:  store,
		audit:  chain,
		sink:   sinks,
	}

	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(1024 * 1024),
		grpc.MaxSendMsgSize(1024 * 1024),
	}
	if cfg.TLSEnabled() {
		tlsConfig := security.TLSConfig{
			CertFile:          cfg.TLS.CertFile,
			KeyFile:           cfg.TLS.KeyFile,
			CAFile:            cfg.TLS.CAFile,
			RequireClientAuth: cfg.TLS.CAFile != "",
		}
		if err := security.VerifyTLSFiles(tlsConfig.CertFile, tlsConfig.KeyFile, tlsConfig.CAFile); err != nil {
			slog.Error("TLS verification failed", "error", err)
			os.Exit(1)
		}
		serverTLS, err := security.LoadServerTLSConfig(tlsConfig)
		if err != nil {
			slog.Error("failed to load TLS configuration", "error", err)
			os.Exit(1)
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(serverTLS)))
	}

	lis, err := net.Listen("tcp", cfg.Ledger.ListenAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", cfg.Ledger.ListenAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(opts...)
	ledgerpb.RegisterLedgerServiceServer(grpcServer, server)
	reflection.Register(grpcServer)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	slog.Info("ledger service listening", "addr", lis.Addr().String(), "tls", cfg.TLSEnabled())
	if err := grpcServer.Serve(lis); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}

	if chain.Verify() {
		slog.Info("audit chain verified", "entries", chain.Len())
	} else {
		slog.Error("audit chain verification failed")
	}
}
