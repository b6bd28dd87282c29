package enums

import "fmt"

// MatchStatus tracks a vendor's decision on a matched buyer.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

var validMatchStatuses = []MatchStatus{
	MatchStatusPending,
	MatchStatusAccepted,
	MatchStatusRejected,
}

// String implements fmt.Stringer.
func (s MatchStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known MatchStatus.
func (s MatchStatus) IsValid() bool {
	for _, candidate := range validMatchStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseMatchStatus converts raw input into a MatchStatus.
func ParseMatchStatus(value string) (MatchStatus, error) {
	for _, candidate := range validMatchStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid match status %q", value)
}

// IsDecision reports whether the status is a terminal vendor decision.
func (s MatchStatus) IsDecision() bool {
	return s == MatchStatusAccepted || s == MatchStatusRejected
}
