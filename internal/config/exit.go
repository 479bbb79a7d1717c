package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exitf prints "<program>: <message>" to stderr and exits with status 1.
// Only cmd entry points call it; library code returns errors instead.
func Exitf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, exitMessage(os.Args[0], format, args...))
	os.Exit(1)
}

func exitMessage(prog, format string, args ...any) string {
	return filepath.Base(prog) + ": " + fmt.Sprintf(format, args...)
}
