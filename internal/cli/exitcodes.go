package cli

import "errors"

// Exit codes for mdlconf.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates the configuration document failed to
	// parse or validate.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrConfigInvalid signals that validation found problems; the details have
// already been rendered. Used to select the exit code without re-logging.
var ErrConfigInvalid = errors.New("configuration invalid")
