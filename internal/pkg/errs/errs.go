// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly. Usecases create sentinels with New and attach them to
// infra errors with Mark; handlers match them with errors.Is.
package errs

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// New creates a sentinel error. Intended for package-level declarations.
func New(msg string) error {
	return crdb.New(msg)
}

// Wrap annotates err with msg, keeping the original cause and stack.
// Returns nil for a nil err so callers can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Wrap(err, msg)
}

// Mark makes err match markErr under errors.Is without losing err's
// message or stack. A nil err degenerates to the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return crdb.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines
// lines of it, for structured logging of 5xx causes.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
