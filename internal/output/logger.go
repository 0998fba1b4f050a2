package output

// Logger receives one progress message at a time.
type Logger interface {
	Emit(msg string)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(msg string)

// Emit calls f(msg).
func (f LoggerFunc) Emit(msg string) {
	f(msg)
}

type discardLogger struct{}

func (discardLogger) Emit(string) {}

// Discard is a Logger that drops every message.
var Discard Logger = discardLogger{}

// SelectLogger returns p when verbose is set and Discard otherwise.
func SelectLogger(p *Printer, verbose bool) Logger {
	if !verbose || p == nil {
		return Discard
	}
	return p
}
