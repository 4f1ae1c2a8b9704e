package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrLocked is returned when another scan holds the lock.
var ErrLocked = errors.New("another scan is in progress")

// staleLockAge is how old a lock file must be before it is considered
// abandoned (crashed holder) and taken over.
const staleLockAge = 10 * time.Minute

// Lock is an advisory file lock serializing writers against one cache
// directory. It makes the single-active-scan invariant explicit instead of
// relying on infrequent external scheduling.
type Lock struct {
	path string
}

// NewLock creates a lock rooted at the given lock file path.
func NewLock(path string) *Lock {
	return &Lock{path: path}
}

// Acquire takes the lock. Returns ErrLocked if a live holder exists.
// Lock files older than staleLockAge are treated as abandoned.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err == nil {
		fmt.Fprintf(f, "%d %s\n", os.Getpid(), time.Now().UTC().Format(time.RFC3339))
		f.Close()
		return nil
	}
	if !os.IsExist(err) {
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	info, statErr := os.Stat(l.path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			// Holder released between OpenFile and Stat; retry once.
			return l.Acquire()
		}
		return fmt.Errorf("failed to stat lock file: %w", statErr)
	}

	if time.Since(info.ModTime()) < staleLockAge {
		return ErrLocked
	}

	// Stale lock: take it over.
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock: %w", err)
	}
	return l.Acquire()
}

// Release drops the lock. Releasing an unheld lock is a no-op.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
