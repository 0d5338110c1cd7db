package models

// CircuitBreakerState is the state of an outbound call guard.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	}
	return "unknown"
}
