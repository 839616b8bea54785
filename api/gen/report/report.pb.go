package report

import (
	ledger "github.com/KenKaneki23-ux/AWS-project/api/gen/ledger"
)

type ScoreAccountRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id"`
}

type ScoreAccountResponse struct {
	AccountId         string   `protobuf:"bytes,1,opt,name=account_id"`
	RiskScore         int32    `protobuf:"varint,2,opt,name=risk_score"`
	RiskLevel         string   `protobuf:"bytes,3,opt,name=risk_level"`
	Factors           []string `protobuf:"bytes,4,rep,name=factors"`
	FlaggedCount      int32    `protobuf:"varint,5,opt,name=flagged_count"`
	TotalTransactions int32    `protobuf:"varint,6,opt,name=total_transactions"`
	GeneratedAt       string   `protobuf:"bytes,7,opt,name=generated_at"`
}

type GetSuspiciousTransactionsRequest struct {
	Limit int32 `protobuf:"varint,1,opt,name=limit"`
}

type GetSuspiciousTransactionsResponse struct {
	Transactions []*ledger.Transaction `protobuf:"bytes,1,rep,name=transactions"`
}

type GetDashboardStatsRequest struct{}

type GetDashboardStatsResponse struct {
	TotalFlagged          int32 `protobuf:"varint,1,opt,name=total_flagged"`
	RecentFlagged         int32 `protobuf:"varint,2,opt,name=recent_flagged"`
	FrozenAccounts        int32 `protobuf:"varint,3,opt,name=frozen_accounts"`
	HighValueTransactions int32 `protobuf:"varint,4,opt,name=high_value_transactions"`
}

type GetKPISummaryRequest struct{}

type GetKPISummaryResponse struct {
	TotalTransactions int32 `protobuf:"varint,1,opt,name=total_transactions"`
	TotalVolume       int64 `protobuf:"varint,2,opt,name=total_volume"`
	TotalDeposits     int64 `protobuf:"varint,3,opt,name=total_deposits"`
	TotalWithdrawals  int64 `protobuf:"varint,4,opt,name=total_withdrawals"`
	TotalTransfers    int64 `protobuf:"varint,5,opt,name=total_transfers"`
	ActiveAccounts    int32 `protobuf:"varint,6,opt,name=active_accounts"`
	TotalAccounts     int32 `protobuf:"varint,7,opt,name=total_accounts"`
	TotalUsers        int32 `protobuf:"varint,8,opt,name=total_users"`
	AverageBalance    int64 `protobuf:"varint,9,opt,name=avg_balance"`
	NetFlow           int64 `protobuf:"varint,10,opt,name=net_flow"`
}

type DayTrend struct {
	Date             string `protobuf:"bytes,1,opt,name=date"`
	DepositCount     int32  `protobuf:"varint,2,opt,name=deposit_count"`
	DepositVolume    int64  `protobuf:"varint,3,opt,name=deposit_volume"`
	WithdrawalCount  int32  `protobuf:"varint,4,opt,name=withdrawal_count"`
	WithdrawalVolume int64  `protobuf:"varint,5,opt,name=withdrawal_volume"`
	TransferCount    int32  `protobuf:"varint,6,opt,name=transfer_count"`
	TransferVolume   int64  `protobuf:"varint,7,opt,name=transfer_volume"`
}

type GetTransactionTrendsRequest struct {
	WindowDays int32 `protobuf:"varint,1,opt,name=window_days"`
}

type GetTransactionTrendsResponse struct {
	Trends []*DayTrend `protobuf:"bytes,1,rep,name=trends"`
}

type GetTopTransactionsRequest struct {
	Limit int32  `protobuf:"varint,1,opt,name=limit"`
	Type  string `protobuf:"bytes,2,opt,name=type"`
}

type GetTopTransactionsResponse struct {
	Transactions []*ledger.Transaction `protobuf:"bytes,1,rep,name=transactions"`
}

type GenerateReportRequest struct {
	From      string `protobuf:"bytes,1,opt,name=from"`
	To        string `protobuf:"bytes,2,opt,name=to"`
	Type      string `protobuf:"bytes,3,opt,name=type"`
	MinAmount *int64 `protobuf:"varint,4,opt,name=min_amount"`
	MaxAmount *int64 `protobuf:"varint,5,opt,name=max_amount"`
}

type GenerateReportResponse struct {
	Count        int32                 `protobuf:"varint,1,opt,name=transaction_count"`
	TotalAmount  int64                 `protobuf:"varint,2,opt,name=total_amount"`
	Transactions []*ledger.Transaction `protobuf:"bytes,3,rep,name=transactions"`
}

type ComplianceMetrics struct {
	LargeTransactions    int32   `protobuf:"varint,1,opt,name=large_transactions"`
	SuspiciousActivities int32   `protobuf:"varint,2,opt,name=suspicious_activities"`
	VerificationRate     float64 `protobuf:"fixed64,3,opt,name=verification_rate"`
	VerifiedAccounts     int32   `protobuf:"varint,4,opt,name=verified_accounts"`
	TotalAccounts        int32   `protobuf:"varint,5,opt,name=total_accounts"`
	FrozenAccounts       int32   `protobuf:"varint,6,opt,name=frozen_accounts"`
}

type ComplianceAlert struct {
	Severity  string  `protobuf:"bytes,1,opt,name=severity"`
	Category  string  `protobuf:"bytes,2,opt,name=category"`
	Message   string  `protobuf:"bytes,3,opt,name=message"`
	Value     float64 `protobuf:"fixed64,4,opt,name=value"`
	Threshold float64 `protobuf:"fixed64,5,opt,name=threshold"`
	Timestamp string  `protobuf:"bytes,6,opt,name=timestamp"`
}

type GetComplianceMetricsRequest struct{}

type GetComplianceMetricsResponse struct {
	Metrics *ComplianceMetrics `protobuf:"bytes,1,opt,name=metrics"`
}

type CheckThresholdsRequest struct{}

type CheckThresholdsResponse struct {
	Alerts []*ComplianceAlert `protobuf:"bytes,1,rep,name=alerts"`
}

type GetComplianceScoreRequest struct{}

type GetComplianceScoreResponse struct {
	Score float64 `protobuf:"fixed64,1,opt,name=score"`
}

type GetComplianceDashboardRequest struct{}

type GetComplianceDashboardResponse struct {
	Metrics        *ComplianceMetrics `protobuf:"bytes,1,opt,name=metrics"`
	Alerts         []*ComplianceAlert `protobuf:"bytes,2,rep,name=alerts"`
	AlertCount     int32              `protobuf:"varint,3,opt,name=alert_count"`
	CriticalAlerts int32              `protobuf:"varint,4,opt,name=critical_alerts"`
	Score          float64            `protobuf:"fixed64,5,opt,name=compliance_score"`
}
