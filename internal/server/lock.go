package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// DataLock is a PID lock file next to a data file, so two stores never
// write the same collection.
type DataLock struct {
	path string
}

// NewDataLock returns the lock guarding dataFile.
func NewDataLock(dataFile string) *DataLock {
	return &DataLock{path: dataFile + ".lock"}
}

// Path returns the lock file location.
func (l *DataLock) Path() string {
	return l.path
}

// Acquire takes the lock. A lock left by a dead process, or one whose content
// is not a PID, is replaced once.
func (l *DataLock) Acquire() error {
	err := l.create()
	if err == nil || !errors.Is(err, os.ErrExist) {
		return err
	}

	holder, err := l.holder()
	if err != nil {
		return err
	}
	if holder > 0 && processAlive(holder) {
		return fmt.Errorf("data file is in use by another store (PID %d)", holder)
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	if err := l.create(); err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.New("data file was locked by another store while retrying")
		}
		return err
	}
	return nil
}

// Release removes the lock file. Releasing twice is fine.
func (l *DataLock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

func (l *DataLock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return err
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// holder returns the PID recorded in the lock file, or 0 when it is unreadable
// as a PID.
func (l *DataLock) holder() (int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read lock file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, nil
	}
	return pid, nil
}

// processAlive reports whether pid accepts signal 0.
func processAlive(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return p.Signal(syscall.Signal(0)) == nil
}
