package shared

import (
	"errors"
	"testing"
	"time"
)

func TestIsSQLiteConflict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "busy", err: errors.New("SQLITE_BUSY: database is busy"), want: true},
		{name: "locked", err: errors.New("database is locked (5)"), want: true},
		{name: "other", err: errors.New("no such table: history"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSQLiteConflict(tt.err); got != tt.want {
				t.Errorf("IsSQLiteConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetrySQLiteRetriesOnlyConflicts(t *testing.T) {
	t.Parallel()

	// Conflicts are retried until fn succeeds.
	calls := 0
	err := RetrySQLite(3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("SQLITE_BUSY")
		}
		return nil
	})
	if err != nil {
		t.Errorf("RetrySQLite failed after recovery: %v", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}

	// Non-conflict errors fail fast.
	calls = 0
	fatal := errors.New("disk I/O error")
	err = RetrySQLite(3, time.Millisecond, func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Errorf("err = %v, want the original error", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times for a non-retryable error, want 1", calls)
	}
}

func TestRetrySQLiteExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := RetrySQLite(3, time.Millisecond, func() error {
		calls++
		return errors.New("database is locked")
	})
	if err == nil {
		t.Fatal("RetrySQLite reported success after persistent conflicts")
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}
