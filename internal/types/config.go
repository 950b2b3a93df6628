package types

type RunMode string

const (
	// ModeLocal is for local development with console logging
	ModeLocal RunMode = "local"
	// ModeAPI runs the HTTP API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
