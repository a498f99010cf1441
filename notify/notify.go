// Package notify is the toast-style notification contract shared by the
// page scripts and native tools.
package notify

import (
	"log"
	"time"
)

// Kind selects the toast styling.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

// DefaultDuration is how long a toast stays up when no duration is given.
const DefaultDuration = 4 * time.Second

var kindNames = [...]string{
	Info:    "info",
	Success: "success",
	Warning: "warning",
	Error:   "error",
}

// String returns the lower-case name the page's Toast API expects.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "info"
	}
	return kindNames[k]
}

// ParseKind maps a toast type name back to a Kind, defaulting to Info.
func ParseKind(s string) Kind {
	for i, name := range kindNames {
		if name == s {
			return Kind(i)
		}
	}
	return Info
}

// Notifier shows a transient message to the user. A zero duration means
// DefaultDuration.
type Notifier interface {
	Show(message string, kind Kind, duration time.Duration)
}

// LogNotifier writes notifications through the log package.
type LogNotifier struct {
	Logger *log.Logger // nil uses the standard logger
}

func (n LogNotifier) Show(message string, kind Kind, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if n.Logger != nil {
		n.Logger.Printf("[%s] %s (%s)", kind, message, duration)
		return
	}
	log.Printf("[%s] %s (%s)", kind, message, duration)
}

// Warn shows a warning with the default duration.
func Warn(n Notifier, message string) {
	n.Show(message, Warning, DefaultDuration)
}

// Fail shows an error with the default duration.
func Fail(n Notifier, message string) {
	n.Show(message, Error, DefaultDuration)
}
