package styled

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is wrapped by the FilesystemError returned when the scan
// root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FilesystemError reports a failure to list or read the scanned tree.
// Any FilesystemError aborts the run.
type FilesystemError struct {
	Op   string // "stat", "readdir", "read"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
