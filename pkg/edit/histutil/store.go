// Package histutil keeps the command history of the debugger: an ordered,
// in-memory list of previously submitted commands, optionally backed by an
// append-only file shared across sessions.
package histutil

import (
	"errors"
	"os"

	"src.lace.dev/pkg/diag"
	"src.lace.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[edit/histutil] ")

// ErrEndOfHistory is returned by Cursor.Get when the cursor is past the
// newest entry, i.e. when the user is composing a new command.
var ErrEndOfHistory = errors.New("end of history")

// Store holds command history entries.
type Store struct {
	cmds []string
	file *os.File
}

// NewStore returns a Store backed by the shared history file, pre-populated
// with the entries already in it. Problems with the backing file are warned
// about exactly once and degrade the store to session-only history; they are
// never errors.
func NewStore() *Store {
	return newStore(openFile())
}

func newStore(file *os.File) *Store {
	return &Store{cmds: loadCmds(file), file: file}
}

// NewMemStore returns a session-only Store containing the given entries. It
// is mainly useful in tests.
func NewMemStore(cmds ...string) *Store {
	return &Store{cmds: cmds}
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.cmds) }

// Cmd returns the i-th entry, 0 being the oldest.
func (s *Store) Cmd(i int) string { return s.cmds[i] }

// AddCmd appends cmd to the history, unless it equals the newest entry
// already there. The entry is also appended to the backing file if one is
// open; a failed write warns and keeps the in-memory entry.
func (s *Store) AddCmd(cmd string) {
	if len(s.cmds) > 0 && s.cmds[len(s.cmds)-1] == cmd {
		return
	}
	if s.file != nil {
		if _, err := s.file.WriteString(cmd + "\n"); err != nil {
			complainf("failed to write to file: %v", err)
		}
	}
	s.cmds = append(s.cmds, cmd)
}

// Close releases the backing file, if any.
func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Cursor returns a cursor over the store, initially past the newest entry.
func (s *Store) Cursor() Cursor {
	return Cursor{s, len(s.cmds)}
}

// Cursor is a position within the history: either at an entry, or past the
// newest entry, meaning that the user is composing a new command. The latter
// is the only state a Cursor starts in or can be Reset to, and is surfaced
// solely by Get returning ErrEndOfHistory, so callers cannot get hold of an
// out-of-range index.
type Cursor struct {
	store *Store
	index int
}

// Prev moves the cursor to the previous (older) entry, reporting whether it
// moved. It does not move when already at the oldest entry.
func (c *Cursor) Prev() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

// Next moves the cursor to the next (newer) entry or past the newest entry,
// reporting whether it moved.
func (c *Cursor) Next() bool {
	if c.index >= c.store.Len() {
		return false
	}
	c.index++
	return true
}

// Get returns the entry under the cursor, or ErrEndOfHistory if the cursor
// is past the newest entry.
func (c *Cursor) Get() (string, error) {
	if c.index >= c.store.Len() {
		return "", ErrEndOfHistory
	}
	return c.store.Cmd(c.index), nil
}

// Reset moves the cursor past the newest entry.
func (c *Cursor) Reset() {
	c.index = c.store.Len()
}

func complainf(format string, args ...any) {
	diag.Complainf("Error with debugger history file: "+format, args...)
	logger.Printf(format, args...)
}
