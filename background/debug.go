package background

import (
	"fmt"
	"log"
)

var EnableDebug = false

// Sink receives debug output at a level of "log", "warn" or "error". The
// browser host points it at the console; natively it goes to the log package.
var Sink = func(level string, args ...interface{}) {
	log.Println(append([]interface{}{"[background]", level + ":"}, args...)...)
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		Sink("log", args...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		Sink("log", fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		Sink("warn", args...)
	}
}

// DebugError logs an error if debug mode is enabled.
func DebugError(args ...interface{}) {
	if EnableDebug {
		Sink("error", args...)
	}
}
