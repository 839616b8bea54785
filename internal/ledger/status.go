package ledger

// AllowedStatusTransitions defines the valid account status changes.
func AllowedStatusTransitions() map[AccountStatus][]AccountStatus {
	return map[AccountStatus][]AccountStatus{
		StatusActive: {StatusFrozen, StatusClosed},
		StatusFrozen: {StatusActive, StatusClosed},
		StatusClosed: {}, // Terminal state
	}
}

// ValidStatusTransition checks if a status change is allowed.
func ValidStatusTransition(from, to AccountStatus) bool {
	for _, allowed := range AllowedStatusTransitions()[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// StatusDescription provides human-readable descriptions of account statuses.
func StatusDescription(status AccountStatus) string {
	switch status {
	case StatusActive:
		return "Account accepts deposits, withdrawals and transfers"
	case StatusFrozen:
		return "Account rejects all ledger operations until reactivated"
	case StatusClosed:
		return "Account is permanently closed"
	default:
		return "Unknown status"
	}
}
