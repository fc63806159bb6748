// Package errors renders errors for the terminal: fatal command errors on
// stderr and short notices for the TUI footer.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/storage"
)

// Format renders err with an "Error: " prefix and, for errors the user can
// fix with a command, a hint on the next line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := "Error: " + err.Error()
	if stderrors.Is(err, storage.ErrNotInitialized) {
		msg += fmt.Sprintf("\nRun '%s init' to create the store.", constants.AppName)
	}
	return msg
}

// Notice turns a non-fatal widget error into a one-line message for the
// presentation layer. Returns "" for nil.
func Notice(err error) string {
	if err == nil {
		return ""
	}
	var perr *storage.PersistError
	if stderrors.As(err, &perr) {
		return fmt.Sprintf("⚠ could not save %q, changes are kept for this session only", perr.Key)
	}
	return "⚠ " + err.Error()
}

// Fatal logs err, prints it and exits with status 1. A nil err is ignored.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
