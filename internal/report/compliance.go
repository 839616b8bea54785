package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/KenKaneki23-ux/AWS-project/internal/ledger"
	"github.com/KenKaneki23-ux/AWS-project/internal/notify"
)

// Severity ranks a compliance alert.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	// largeAmountMinor is the regulatory reporting threshold, $10,000 in
	// minor units.
	largeAmountMinor = 10_000 * 100

	verificationThreshold = 90
	frozenRateThreshold   = 10
	suspiciousThreshold   = 5
)

// ComplianceMetrics holds the regulatory figures the compliance dashboard
// tracks.
type ComplianceMetrics struct {
	LargeTransactions    int     `json:"large_transactions"`
	SuspiciousActivities int     `json:"suspicious_activities"`
	VerificationRate     float64 `json:"verification_rate"`
	VerifiedAccounts     int     `json:"verified_accounts"`
	TotalAccounts        int     `json:"total_accounts"`
	FrozenAccounts       int     `json:"frozen_accounts"`
}

// Alert flags a compliance metric that crossed its regulatory threshold.
type Alert struct {
	Severity  Severity  `json:"severity"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	Timestamp time.Time `json:"timestamp"`
}

// ComplianceDashboard bundles everything the compliance officer view needs.
type ComplianceDashboard struct {
	Metrics        *ComplianceMetrics `json:"metrics"`
	Alerts         []*Alert           `json:"alerts"`
	AlertCount     int                `json:"alert_count"`
	CriticalAlerts int                `json:"critical_alerts"`
	Score          float64            `json:"compliance_score"`
}

// ComplianceMetrics computes the regulatory figures: large completed
// transactions over $10,000, flagged transactions, the account verification
// rate (active over total), and frozen account count.
func (s *Service) ComplianceMetrics(ctx context.Context) (*ComplianceMetrics, error) {
	metrics, _, err := s.complianceState(ctx)
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// ThresholdAlerts evaluates the compliance thresholds and returns the alerts
// they raise: verification rate below 90% (warning), frozen account rate
// over 10% (high), suspicious activity rate over 5% (critical). When the
// service has a sink, each alert is also dispatched as a broadcast
// compliance warning; this is the only method that dispatches, so dashboard
// reads never duplicate notifications.
func (s *Service) ThresholdAlerts(ctx context.Context) ([]*Alert, error) {
	_, alerts, err := s.complianceState(ctx)
	if err != nil {
		return nil, err
	}

	for _, alert := range alerts {
		notify.Dispatch(ctx, s.sink, notify.ComplianceWarning("", alert.Category, alert.Value, alert.Threshold))
	}
	return alerts, nil
}

// ComplianceScore grades overall compliance on [0,100]: each alert costs 20
// (critical), 10 (high) or 5 (warning) points, and a verification rate under
// 95% costs the shortfall.
func (s *Service) ComplianceScore(ctx context.Context) (float64, error) {
	metrics, alerts, err := s.complianceState(ctx)
	if err != nil {
		return 0, err
	}
	return complianceScore(metrics, alerts), nil
}

// ComplianceDashboard assembles metrics, alerts and the compliance score in
// one read.
func (s *Service) ComplianceDashboard(ctx context.Context) (*ComplianceDashboard, error) {
	metrics, alerts, err := s.complianceState(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &ComplianceDashboard{
		Metrics:    metrics,
		Alerts:     alerts,
		AlertCount: len(alerts),
		Score:      complianceScore(metrics, alerts),
	}
	for _, alert := range alerts {
		if alert.Severity == SeverityCritical {
			dashboard.CriticalAlerts++
		}
	}
	return dashboard, nil
}

func (s *Service) complianceState(ctx context.Context) (*ComplianceMetrics, []*Alert, error) {
	txns, err := s.store.ListAllTransactions(ctx, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.store.ListAllAccounts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	metrics := &ComplianceMetrics{TotalAccounts: len(accounts)}
	for _, txn := range txns {
		if txn.Amount > largeAmountMinor && txn.Status == ledger.StatusCompleted {
			metrics.LargeTransactions++
		}
		if txn.FraudFlag {
			metrics.SuspiciousActivities++
		}
	}
	for _, account := range accounts {
		switch account.Status {
		case ledger.StatusActive:
			metrics.VerifiedAccounts++
		case ledger.StatusFrozen:
			metrics.FrozenAccounts++
		}
	}
	if metrics.TotalAccounts > 0 {
		rate := float64(metrics.VerifiedAccounts) / float64(metrics.TotalAccounts) * 100
		metrics.VerificationRate = math.Round(rate*100) / 100
	}

	return metrics, computeAlerts(metrics, len(txns)), nil
}

func computeAlerts(metrics *ComplianceMetrics, totalTxns int) []*Alert {
	var alerts []*Alert
	now := time.Now().UTC()

	if metrics.VerificationRate < verificationThreshold {
		alerts = append(alerts, &Alert{
			Severity:  SeverityWarning,
			Category:  "Account Verification",
			Message:   fmt.Sprintf("Account verification rate (%.2f%%) is below 90%% threshold", metrics.VerificationRate),
			Value:     metrics.VerificationRate,
			Threshold: verificationThreshold,
			Timestamp: now,
		})
	}

	var frozenRate float64
	if metrics.TotalAccounts > 0 {
		frozenRate = float64(metrics.FrozenAccounts) / float64(metrics.TotalAccounts) * 100
	}
	if frozenRate > frozenRateThreshold {
		alerts = append(alerts, &Alert{
			Severity:  SeverityHigh,
			Category:  "Frozen Accounts",
			Message:   fmt.Sprintf("Frozen account rate (%.1f%%) exceeds 10%% threshold", frozenRate),
			Value:     frozenRate,
			Threshold: frozenRateThreshold,
			Timestamp: now,
		})
	}

	var suspiciousRate float64
	if totalTxns > 0 {
		suspiciousRate = float64(metrics.SuspiciousActivities) / float64(totalTxns) * 100
	}
	if suspiciousRate > suspiciousThreshold {
		alerts = append(alerts, &Alert{
			Severity:  SeverityCritical,
			Category:  "Suspicious Activity",
			Message:   fmt.Sprintf("Suspicious activity rate (%.1f%%) exceeds 5%% threshold", suspiciousRate),
			Value:     suspiciousRate,
			Threshold: suspiciousThreshold,
			Timestamp: now,
		})
	}

	return alerts
}

func complianceScore(metrics *ComplianceMetrics, alerts []*Alert) float64 {
	score := 100.0
	for _, alert := range alerts {
		switch alert.Severity {
		case SeverityCritical:
			score -= 20
		case SeverityHigh:
			score -= 10
		case SeverityWarning:
			score -= 5
		}
	}
	if metrics.VerificationRate < 95 {
		score -= 95 - metrics.VerificationRate
	}
	return math.Max(0, math.Min(100, score))
}
