package histutil

import (
	"bufio"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Name of the backing file, relative to the user cache directory. Other lace
// sessions append to the same file, so history carries over between runs.
const fileName = "lace-debugger-history"

// openFile resolves and opens the backing file for reading and appending,
// creating it if absent. It returns nil after a warning if any step fails.
func openFile() *os.File {
	dir, err := os.UserCacheDir()
	if err != nil {
		complainf("cannot resolve user cache directory: %v", err)
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		complainf("cache directory is not a directory: %v", dir)
		return nil
	}
	return openFileAt(filepath.Join(dir, fileName))
}

func openFileAt(path string) *os.File {
	// The file is created below if missing, but an existing special file is
	// never used.
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		complainf("file exists but is not a regular file: %v", path)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0600)
	if err != nil {
		complainf("failed to open file: %v", err)
		return nil
	}
	return file
}

// loadCmds reads entries from the backing file, oldest first. A malformed
// line stops loading with a warning, keeping the entries read so far.
// Consecutive duplicates are kept as stored.
func loadCmds(file *os.File) []string {
	if file == nil {
		return nil
	}
	var cmds []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			complainf("failed to read from file: invalid UTF-8 in entry %d", len(cmds))
			return cmds
		}
		cmds = append(cmds, line)
	}
	if err := scanner.Err(); err != nil {
		complainf("failed to read from file: %v", err)
	}
	return cmds
}
