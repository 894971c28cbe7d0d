package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes the diagnostic printed when a run fails.
const ApplicationExecutionFailedMessage = "tree failed"

// PathSeparator is the single hierarchical separator used in rendered labels.
const PathSeparator = "/"

// HiddenEntryPrefix marks entries that are never rendered.
const HiddenEntryPrefix = "."
