package domain

// Severity classifies a user-facing notification.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

// String returns a human-readable representation of the severity
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier receives user-facing success/failure intents. The stores
// never render UI; every notification goes through this sink. Not all
// failures are notified: watch recording and busy-guard short-circuits
// stay silent.
type Notifier interface {
	Notify(severity Severity, message string)
}
