package doc

// Severity classifies how serious a finding is. It is informational
// only: nothing in the engine branches on it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid reports whether s is a known severity value.
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}
