package cli

import (
	"github.com/arthur-debert/gitig/pkg/errors"
)

// hintDetail is the error detail key holding a command-specific hint
const hintDetail = "hint"

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Hint returns the corrective line printed after an error, or ""
func Hint(err error) string {
	if hint, ok := errors.GetErrorDetails(err)[hintDetail].(string); ok {
		return hint
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrTemplateNotFound:
		return MsgHintList
	case errors.ErrNothingDetected:
		return MsgHintAdd + "\n" + MsgHintList
	case errors.ErrUnknownCmd, errors.ErrInvalidInput:
		return MsgHintHelp
	case errors.ErrAlreadyExists:
		return MsgHintForce
	default:
		return ""
	}
}

// usageError builds an INVALID_INPUT error carrying its own hint
func usageError(msg, hint string) error {
	return errors.New(errors.ErrInvalidInput, msg).WithDetail(hintDetail, hint)
}
