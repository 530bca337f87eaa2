// Copyright (c) 2026, The Forkskinny128 Authors.
// See LICENSE for licensing information.

package forkskinny128

import "fmt"

// ArgError reports API misuse: an unknown variant tag, a tweakey count
// that does not match the requested variant, or a nil *Schedules passed
// to Encrypt or DecryptFromRight. It is the only error kind
// this package returns — the cipher itself is total (spec §7) once a
// Schedules value has been constructed successfully.
type ArgError struct {
	Op  string
	Msg string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("forkskinny128: %s: %s", e.Op, e.Msg)
}

func argErrorf(op, format string, args ...any) error {
	return &ArgError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
