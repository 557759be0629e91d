// Package shared provides common utilities used across the codebase.
//
//nolint:revive // "shared" is an intentional package name for cross-cutting helpers.
package shared

import (
	"strings"
	"time"
)

// IsSQLiteConflict reports whether err is a SQLite concurrency failure,
// either SQLITE_BUSY or "database is locked". Both mean another
// connection holds the lock and a retry may succeed.
func IsSQLiteConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// RetrySQLite runs fn up to attempts times, doubling the delay between
// attempts starting from baseDelay. Only SQLite conflict errors are
// retried; any other error is returned immediately, as is the last
// conflict once attempts are exhausted.
func RetrySQLite(attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !IsSQLiteConflict(err) {
			return err
		}
		if i < attempts-1 {
			time.Sleep(baseDelay * time.Duration(1<<i))
		}
	}
	return err
}
