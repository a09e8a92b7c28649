package logging

// environment variables configuring library logging

const (
	EnvLogLevel     = "MB_LOG_LEVEL"
	EnvProfile      = "MB_PROFILE"
	defaultLogLevel = "WARN"
)
