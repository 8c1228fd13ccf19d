package repository

import (
	"errors"
	"testing"

	"cogscreen_backend/internal/util"
)

func TestWithSequenceRetryRecoversFromConflicts(t *testing.T) {
	calls := 0
	err := withSequenceRetry(func() error {
		calls++
		if calls < 3 {
			return util.ErrSequenceConflict
		}
		return nil
	})
	if err != nil {
		t.Fatalf("err = %v, want nil after retries", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithSequenceRetryGivesUp(t *testing.T) {
	calls := 0
	err := withSequenceRetry(func() error {
		calls++
		return util.ErrSequenceConflict
	})
	if !errors.Is(err, util.ErrSequenceConflict) {
		t.Fatalf("err = %v, want ErrSequenceConflict", err)
	}
	if calls != sequenceRetries {
		t.Errorf("calls = %d, want %d", calls, sequenceRetries)
	}
}

func TestWithSequenceRetryPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection lost")
	calls := 0
	err := withSequenceRetry(func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the original error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on non-conflict errors)", calls)
	}
}

func TestWithSequenceRetryStopsOnFirstSuccess(t *testing.T) {
	calls := 0
	if err := withSequenceRetry(func() error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
