package testhelper

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// caller returns "(file.go:line)" of the stack frame skip levels up, so that
// a failing assertion made inside a helper points at the test line.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("(%s:%d)", filepath.Base(file), line)
}
