package testutil

import (
	"os"
	"path/filepath"
)

// TempDir creates a unique temporary directory and returns its path, with
// symlinks resolved. The directory is removed when the test finishes.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}
