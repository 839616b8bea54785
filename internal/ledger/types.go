package ledger

import "time"

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	StatusActive AccountStatus = "active"
	StatusFrozen AccountStatus = "frozen"
	StatusClosed AccountStatus = "closed"
)

// TransactionType identifies the kind of balance mutation a transaction records.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTransfer   TransactionType = "transfer"
)

// TransactionStatus represents the review state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusFlagged   TransactionStatus = "flagged"
)

// Role classifies a user for review workflows. Roles are plain data here;
// authorization happens outside this core.
type Role string

const (
	RoleFraudAnalyst      Role = "FRAUD_ANALYST"
	RoleFinancialManager  Role = "FINANCIAL_MANAGER"
	RoleComplianceOfficer Role = "COMPLIANCE_OFFICER"
)

// Account holds a balance in integer minor units (cents).
type Account struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Balance   int64         `json:"balance"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Transaction records a single balance mutation. A transfer is stored once,
// from the source account's perspective, with TargetAccountID set.
type Transaction struct {
	ID              string            `json:"id"`
	AccountID       string            `json:"account_id"`
	Type            TransactionType   `json:"type"`
	Amount          int64             `json:"amount"`
	TargetAccountID string            `json:"target_account_id,omitempty"`
	Status          TransactionStatus `json:"status"`
	FraudFlag       bool              `json:"fraud_flag"`
	Sequence        int64             `json:"sequence"`
	CreatedAt       time.Time         `json:"created_at"`
	Description     string            `json:"description,omitempty"`
}

// User owns accounts and receives notifications.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
