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
	reportpb "github.com/KenKaneki23-ux/AWS-project/api/gen/report"
	"github.com/KenKaneki23-ux/AWS-project/internal/config"
	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
	"github.com/KenKaneki23-ux/AWS-project/internal/report"
	"github.com/KenKaneki23-ux/AWS-project/internal/risk"
	"github.com/KenKaneki23-ux/AWS-project/internal/security"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/memory"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/postgres"
	"github.com/KenKaneki23-ux/AWS-project/internal/store/sqlite"
)

// reportServer exposes the risk scoring and aggregation engines over gRPC.
// All RPCs are reads against committed ledger state; the only side effect is
// the notification dispatch performed by CheckThresholds.
type reportServer struct {
	reportpb.UnimplementedReportServiceServer

	risk   *risk.Service
	report *report.Service
}

func (s *reportServer) ScoreAccount(ctx context.Context, req *reportpb.ScoreAccountRequest) (*reportpb.ScoreAccountResponse, error) {
	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	assessment, err := s.risk.ScoreAccount(ctx, req.AccountId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.ScoreAccountResponse{
		AccountId:         assessment.AccountID,
		RiskScore:         int32(assessment.Score),
		RiskLevel:         string(assessment.Level),
		Factors:           assessment.Factors,
		FlaggedCount:      int32(assessment.FlaggedCount),
		TotalTransactions: int32(assessment.TotalTransactions),
		GeneratedAt:       assessment.GeneratedAt.Format(time.RFC3339),
	}, nil
}

func (s *reportServer) GetSuspiciousTransactions(ctx context.Context, req *reportpb.GetSuspiciousTransactionsRequest) (*reportpb.GetSuspiciousTransactionsResponse, error) {
	txns, err := s.risk.SuspiciousTransactions(ctx, int(req.Limit))
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetSuspiciousTransactionsResponse{Transactions: pbTransactions(txns)}, nil
}

func (s *reportServer) GetDashboardStats(ctx context.Context, req *reportpb.GetDashboardStatsRequest) (*reportpb.GetDashboardStatsResponse, error) {
	stats, err := s.risk.DashboardStats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetDashboardStatsResponse{
		TotalFlagged:          int32(stats.TotalFlagged),
		RecentFlagged:         int32(stats.RecentFlagged),
		FrozenAccounts:        int32(stats.FrozenAccounts),
		HighValueTransactions: int32(stats.HighValueTransactions),
	}, nil
}

func (s *reportServer) GetKPISummary(ctx context.Context, req *reportpb.GetKPISummaryRequest) (*reportpb.GetKPISummaryResponse, error) {
	kpi, err := s.report.KPISummary(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetKPISummaryResponse{
		TotalTransactions: int32(kpi.TotalTransactions),
		TotalVolume:       kpi.TotalVolume,
		TotalDeposits:     kpi.TotalDeposits,
		TotalWithdrawals:  kpi.TotalWithdrawals,
		TotalTransfers:    kpi.TotalTransfers,
		ActiveAccounts:    int32(kpi.ActiveAccounts),
		TotalAccounts:     int32(kpi.TotalAccounts),
		TotalUsers:        int32(kpi.TotalUsers),
		AverageBalance:    kpi.AverageBalance,
		NetFlow:           kpi.NetFlow,
	}, nil
}

func (s *reportServer) GetTransactionTrends(ctx context.Context, req *reportpb.GetTransactionTrendsRequest) (*reportpb.GetTransactionTrendsResponse, error) {
	trends, err := s.report.TransactionTrends(ctx, int(req.WindowDays))
	if err != nil {
		return nil, toStatus(err)
	}

	pbTrends := make([]*reportpb.DayTrend, 0, len(trends))
	for _, trend := range trends {
		pbTrends = append(pbTrends, &reportpb.DayTrend{
			Date:             trend.Date,
			DepositCount:     int32(trend.DepositCount),
			DepositVolume:    trend.DepositVolume,
			WithdrawalCount:  int32(trend.WithdrawalCount),
			WithdrawalVolume: trend.WithdrawalVolume,
			TransferCount:    int32(trend.TransferCount),
			TransferVolume:   trend.TransferVolume,
		})
	}

	return &reportpb.GetTransactionTrendsResponse{Trends: pbTrends}, nil
}

func (s *reportServer) GetTopTransactions(ctx context.Context, req *reportpb.GetTopTransactionsRequest) (*reportpb.GetTopTransactionsResponse, error) {
	txns, err := s.report.TopTransactions(ctx, int(req.Limit), ledger.TransactionType(req.Type))
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetTopTransactionsResponse{Transactions: pbTransactions(txns)}, nil
}

func (s *reportServer) GenerateReport(ctx context.Context, req *reportpb.GenerateReportRequest) (*reportpb.GenerateReportResponse, error) {
	filters := report.Filters{
		Type:      ledger.TransactionType(req.Type),
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
	}

	if req.From != "" {
		from, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid from timestamp format")
		}
		filters.From = from
	}
	if req.To != "" {
		to, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid to timestamp format")
		}
		filters.To = to
	}

	result, err := s.report.GenerateReport(ctx, filters)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GenerateReportResponse{
		Count:        int32(result.Count),
		TotalAmount:  result.TotalAmount,
		Transactions: pbTransactions(result.Transactions),
	}, nil
}

func (s *reportServer) GetComplianceMetrics(ctx context.Context, req *reportpb.GetComplianceMetricsRequest) (*reportpb.GetComplianceMetricsResponse, error) {
	metrics, err := s.report.ComplianceMetrics(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetComplianceMetricsResponse{Metrics: pbComplianceMetrics(metrics)}, nil
}

func (s *reportServer) CheckThresholds(ctx context.Context, req *reportpb.CheckThresholdsRequest) (*reportpb.CheckThresholdsResponse, error) {
	alerts, err := s.report.ThresholdAlerts(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.CheckThresholdsResponse{Alerts: pbAlerts(alerts)}, nil
}

func (s *reportServer) GetComplianceScore(ctx context.Context, req *reportpb.GetComplianceScoreRequest) (*reportpb.GetComplianceScoreResponse, error) {
	score, err := s.report.ComplianceScore(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetComplianceScoreResponse{Score: score}, nil
}

func (s *reportServer) GetComplianceDashboard(ctx context.Context, req *reportpb.GetComplianceDashboardRequest) (*reportpb.GetComplianceDashboardResponse, error) {
	dashboard, err := s.report.ComplianceDashboard(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &reportpb.GetComplianceDashboardResponse{
		Metrics:        pbComplianceMetrics(dashboard.Metrics),
		Alerts:         pbAlerts(dashboard.Alerts),
		AlertCount:     int32(dashboard.AlertCount),
		CriticalAlerts: int32(dashboard.CriticalAlerts),
		Score:          dashboard.Score,
	}, nil
}

// toStatus maps ledger errors onto gRPC status codes. The reporting RPCs are
// reads, so only not-found and validation failures surface here.
func toStatus(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func pbTransactions(txns []*ledger.Transaction) []*ledgerpb.Transaction {
	out := make([]*ledgerpb.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, &ledgerpb.Transaction{
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
		})
	}
	return out
}

func pbComplianceMetrics(m *report.ComplianceMetrics) *reportpb.ComplianceMetrics {
	return &reportpb.ComplianceMetrics{
		LargeTransactions:    int32(m.LargeTransactions),
		SuspiciousActivities: int32(m.SuspiciousActivities),
		VerificationRate:     m.VerificationRate,
		VerifiedAccounts:     int32(m.VerifiedAccounts),
		TotalAccounts:        int32(m.TotalAccounts),
		FrozenAccounts:       int32(m.FrozenAccounts),
	}
}

func pbAlerts(alerts []*report.Alert) []*reportpb.ComplianceAlert {
	out := make([]*reportpb.ComplianceAlert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, &reportpb.ComplianceAlert{
			Severity:  string(a.Severity),
			Category:  a.Category,
			Message:   a.Message,
			Value:     a.Value,
			Threshold: a.Threshold,
			Timestamp: a.Timestamp.Format(time.RFC3339),
		})
	}
	return out
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
	slog.Info("starting reportd", "environment", cfg.Environment, "store", cfg.Store.Driver)

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	sinks := notify.MultiSink{notify.NewConsoleSink(nil)}
	if notifyStore, ok := store.(notify.Store); ok {
		sinks = append(sinks, notify.NewStoreSink(notifyStore))
	}
	if cfg.Notify.WebhookURL != "" {
		sinks = append(sinks, notify.NewWebhookSink(cfg.Notify.WebhookURL))
	}

	server := &reportServer{
		risk:   risk.NewService(store),
		report: report.NewService(store, sinks),
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

	lis, err := net.Listen("tcp", cfg.Report.ListenAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", cfg.Report.ListenAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(opts...)
	reportpb.RegisterReportServiceServer(grpcServer, server)
	reflection.Register(grpcServer)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	slog.Info("report service listening", "addr", lis.Addr().String(), "tls", cfg.TLSEnabled())
	if err := grpcServer.Serve(lis); err != nil {
		slog.Error("failed to serve", "error", err)
		os.Exit(1)
	}
}
