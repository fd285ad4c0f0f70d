package utils

const (
	// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
	LoggerInitializationFailedMessageFormat = "unable to initialize logger: %w"

	// ApplicationExecutionFailedMessage prefixes fatal execution errors reported by main.
	ApplicationExecutionFailedMessage = "outline execution failed"
)
