package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountInactive     = errors.New("account is not active")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSameAccountTransfer = errors.New("source and target accounts must be different")
	ErrConflict            = errors.New("account busy")
)

// AmountError reports a rejected monetary amount.
type AmountError struct {
	Op     string
	Amount int64
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %d for %s", e.Amount, e.Op)
}

func (e *AmountError) Unwrap() error { return ErrInvalidAmount }

// InactiveAccountError reports an operation against a frozen or closed account.
type InactiveAccountError struct {
	AccountID string
	Status    AccountStatus
}

func (e *InactiveAccountError) Error() string {
	return fmt.Sprintf("account %s is %s", e.AccountID, e.Status)
}

func (e *InactiveAccountError) Unwrap() error { return ErrAccountInactive }

// InsufficientBalanceError reports a debit exceeding the available balance.
type InsufficientBalanceError struct {
	AccountID string
	Balance   int64
	Amount    int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in account %s: have %d, need %d", e.AccountID, e.Balance, e.Amount)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// StatusTransitionError reports a disallowed account status change.
type StatusTransitionError struct {
	AccountID string
	From      AccountStatus
	To        AccountStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s for account %s", e.From, e.To, e.AccountID)
}
