package waveedit

import "fmt"

type (
	// Alert is a message for the user that the model cannot show by itself,
	// e.g. why a paste did nothing.
	Alert struct {
		Priority AlertPriority
		Message  string
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

func (m *Model) alert(priority AlertPriority, format string, args ...any) {
	m.alerts = append(m.alerts, Alert{Priority: priority, Message: fmt.Sprintf(format, args...)})
}

// TakeAlerts returns the alerts raised since the previous call and clears
// them.
func (m *Model) TakeAlerts() []Alert {
	ret := m.alerts
	m.alerts = nil
	return ret
}
